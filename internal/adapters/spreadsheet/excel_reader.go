package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"distance-annotator/internal/domain"
	"distance-annotator/internal/platform/obs"
	"distance-annotator/internal/ports"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Columns names the three required address columns in the header row.
type Columns struct {
	Address    string
	PostalCode string
	City       string
}

// ExcelReader loads the first sheet of an .xlsx workbook into a domain.Table.
type ExcelReader struct {
	path      string
	headerRow int
	columns   Columns
	log       *zap.Logger
}

var _ ports.TableSource = (*ExcelReader)(nil)

// NewExcelReader reads from path with a 0-based header row index; rows above
// the header are ignored entirely.
func NewExcelReader(path string, headerRow int, columns Columns, log *zap.Logger) *ExcelReader {
	return &ExcelReader{path: path, headerRow: headerRow, columns: columns, log: log}
}

// LoadTable reads the sheet. Data rows keep their order, sized to the header
// row's width. Loading fails before any remote call is made when the file is
// absent or a required column is missing.
func (r *ExcelReader) LoadTable(ctx context.Context) (_ *domain.Table, err error) {
	defer obs.Time(ctx, r.log, "spreadsheet.load")(&err)

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", r.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %q has no sheets", r.path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from %q: %w", sheet, err)
	}

	if r.headerRow >= len(rows) {
		return nil, fmt.Errorf("header row %d is beyond the sheet's %d row(s)", r.headerRow, len(rows))
	}

	headers := make([]string, len(rows[r.headerRow]))
	for i, h := range rows[r.headerRow] {
		headers[i] = strings.TrimSpace(h)
	}

	addressCol, postalCol, cityCol, err := resolveColumns(headers, r.columns)
	if err != nil {
		return nil, err
	}

	data := rows[r.headerRow+1:]
	cells := make([][]domain.Cell, 0, len(data))
	for i, raw := range data {
		sheetRow := r.headerRow + 2 + i
		row := make([]domain.Cell, len(headers))
		for col := range headers {
			value := ""
			if col < len(raw) {
				value = raw[col]
			}
			row[col] = resolveCell(f, sheet, sheetRow, col, value)
		}
		cells = append(cells, row)
	}

	r.log.Info("loaded workbook",
		zap.String("path", r.path),
		zap.String("sheet", sheet),
		zap.Int("rows", len(cells)),
	)

	return &domain.Table{
		SheetName:  sheet,
		Headers:    headers,
		Rows:       cells,
		AddressCol: addressCol,
		PostalCol:  postalCol,
		CityCol:    cityCol,
	}, nil
}

func resolveColumns(headers []string, columns Columns) (addressCol, postalCol, cityCol int, err error) {
	find := func(name string) int {
		for i, h := range headers {
			if h == name {
				return i
			}
		}
		return -1
	}

	addressCol = find(columns.Address)
	postalCol = find(columns.PostalCode)
	cityCol = find(columns.City)

	missing := make([]string, 0, 3)
	for _, c := range []struct {
		name string
		idx  int
	}{
		{columns.Address, addressCol},
		{columns.PostalCode, postalCol},
		{columns.City, cityCol},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}

	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf(
			"missing required columns: %s (available: %s)",
			strings.Join(missing, ", "),
			strings.Join(headers, ", "),
		)
	}

	return addressCol, postalCol, cityCol, nil
}

// resolveCell fixes each cell's shape once: numeric cells become numbers,
// absent or empty cells are missing, everything else stays text.
func resolveCell(f *excelize.File, sheet string, row, col int, value string) domain.Cell {
	if value == "" {
		return domain.MissingCell()
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return domain.TextCell(value)
	}

	ctype, err := f.GetCellType(sheet, axis)
	if err == nil && (ctype == excelize.CellTypeNumber || ctype == excelize.CellTypeUnset) {
		if n, perr := strconv.ParseFloat(value, 64); perr == nil {
			return domain.NumberCell(n)
		}
	}

	return domain.TextCell(value)
}
