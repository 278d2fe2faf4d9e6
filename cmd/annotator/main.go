package main

import (
	"context"
	"log"

	"distance-annotator/internal/adapters/routing"
	"distance-annotator/internal/adapters/spreadsheet"
	"distance-annotator/internal/config"
	"distance-annotator/internal/platform/logger"
	"distance-annotator/internal/platform/obs"
	"distance-annotator/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// main is the batch composition root.
// It wires the spreadsheet reader/writer and the ORS client behind ports and
// runs one annotation pass. Any failure is reported on the console; the
// process itself always finishes normally.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Println("logger setup failed:", err)
		return
	}
	defer zl.Sync()

	if err := cfg.Validate(); err != nil {
		zl.Error("invalid configuration", zap.Error(err))
		return
	}

	runID := uuid.NewString()
	ctx := obs.WithRunID(context.Background(), runID)

	zl.Info("starting annotation run",
		zap.String("run_id", runID),
		zap.String("input", cfg.InputFile),
		zap.String("output", cfg.OutputFile),
		zap.String("origin", cfg.OriginAddress),
	)

	provider, err := routing.NewORSClient(routing.Options{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.ORSBaseURL,
		Profile:           cfg.ORSProfile,
		BoundaryCountry:   cfg.BoundaryCountry,
		GeocodeTimeout:    cfg.GeocodeTimeout,
		DirectionsTimeout: cfg.DirectionsTimeout,
	}, zl)
	if err != nil {
		zl.Error("routing client setup failed", zap.Error(err))
		return
	}

	reader := spreadsheet.NewExcelReader(cfg.InputFile, cfg.HeaderRow, spreadsheet.Columns{
		Address:    cfg.AddressColumn,
		PostalCode: cfg.PostalCodeColumn,
		City:       cfg.CityColumn,
	}, zl)
	writer := spreadsheet.NewExcelWriter(cfg.OutputFile, zl)

	// One request at a time, spaced by the configured interval.
	limiter := rate.NewLimiter(rate.Every(cfg.RequestInterval), 1)

	req := services.AnnotateWorkbookRequest{
		Origin:      cfg.OriginAddress,
		CountryHint: cfg.CountryHint,
	}
	if err := services.AnnotateWorkbook(ctx, req, reader, writer, provider, limiter, zl); err != nil {
		zl.Error("annotation run failed", zap.Error(err))
		return
	}

	zl.Info("saved annotated workbook", zap.String("output", cfg.OutputFile))
}
