package spreadsheet

import (
	"context"
	"fmt"

	"distance-annotator/internal/domain"
	"distance-annotator/internal/platform/obs"
	"distance-annotator/internal/ports"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelWriter persists an annotated table as a new .xlsx workbook.
type ExcelWriter struct {
	path string
	log  *zap.Logger
}

var _ ports.TableSink = (*ExcelWriter)(nil)

func NewExcelWriter(path string, log *zap.Logger) *ExcelWriter {
	return &ExcelWriter{path: path, log: log}
}

// WriteTable builds a fresh workbook: the original header plus the two output
// columns, every data row passed through with its cell shapes intact, and one
// annotation per row filling both output cells. The file is written once, at
// the end.
func (w *ExcelWriter) WriteTable(ctx context.Context, table *domain.Table, annotations []domain.Annotation) (err error) {
	defer obs.Time(ctx, w.log, "spreadsheet.write")(&err)

	if len(annotations) != len(table.Rows) {
		return fmt.Errorf("annotation count %d does not match row count %d", len(annotations), len(table.Rows))
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if table.SheetName != "" && table.SheetName != sheet {
		if err := f.SetSheetName(sheet, table.SheetName); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		sheet = table.SheetName
	}

	headers := make([]string, 0, len(table.Headers)+2)
	headers = append(headers, table.Headers...)
	headers = append(headers, domain.DistanceColumn, domain.DurationColumn)
	for col, name := range headers {
		if err := setCell(f, sheet, 1, col, name); err != nil {
			return err
		}
	}

	distanceCol := len(table.Headers)
	durationCol := distanceCol + 1

	for i, row := range table.Rows {
		sheetRow := i + 2
		for col, cell := range row {
			switch cell.Kind {
			case domain.CellText:
				if err := setCell(f, sheet, sheetRow, col, cell.Text); err != nil {
					return err
				}
			case domain.CellNumber:
				if err := setCell(f, sheet, sheetRow, col, cell.Number); err != nil {
					return err
				}
			}
		}

		a := annotations[i]
		if err := setCell(f, sheet, sheetRow, distanceCol, a.DistanceValue()); err != nil {
			return err
		}
		if err := setCell(f, sheet, sheetRow, durationCol, a.DurationValue()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %q: %w", w.path, err)
	}

	w.log.Info("wrote annotated workbook",
		zap.String("path", w.path),
		zap.Int("rows", len(table.Rows)),
	)
	return nil
}

func setCell(f *excelize.File, sheet string, row, col int, value any) error {
	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Errorf("map cell (%d, %d): %w", row, col, err)
	}
	if err := f.SetCellValue(sheet, axis, value); err != nil {
		return fmt.Errorf("set cell %s: %w", axis, err)
	}
	return nil
}
