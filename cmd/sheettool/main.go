package main

import (
	"fmt"
	"log"
	"os"

	"distance-annotator/internal/config"
	"distance-annotator/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	zl.Info("writing template workbook",
		zap.String("path", cfg.InputFile),
		zap.Int("header_row", cfg.HeaderRow),
	)

	columns := []string{cfg.AddressColumn, cfg.PostalCodeColumn, cfg.CityColumn}
	if err := writeTemplate(cfg.InputFile, cfg.HeaderRow, columns); err != nil {
		zl.Fatal("template generation failed", zap.Error(err))
	}

	zl.Info("template workbook ready", zap.String("path", cfg.InputFile))
}

// writeTemplate creates a fresh input workbook with the configured header row
// and one example data row. It refuses to touch a file that already exists.
func writeTemplate(path string, headerRow int, columns []string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing workbook %q", path)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, name := range columns {
		axis, err := excelize.CoordinatesToCellName(col+1, headerRow+1)
		if err != nil {
			return fmt.Errorf("map header cell %d: %w", col, err)
		}
		if err := f.SetCellValue(sheet, axis, name); err != nil {
			return fmt.Errorf("set header cell %s: %w", axis, err)
		}
	}

	example := []any{"Bahnhofstrasse 1", 8001, "Zürich"}
	for col, value := range example {
		axis, err := excelize.CoordinatesToCellName(col+1, headerRow+2)
		if err != nil {
			return fmt.Errorf("map example cell %d: %w", col, err)
		}
		if err := f.SetCellValue(sheet, axis, value); err != nil {
			return fmt.Errorf("set example cell %s: %w", axis, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}

	return nil
}
