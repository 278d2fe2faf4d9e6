package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"distance-annotator/internal/domain"
	"distance-annotator/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// progressInterval is the number of processed rows between progress log lines.
const progressInterval = 10

type AnnotateWorkbookRequest struct {
	Origin      string
	CountryHint string
}

// AnnotateWorkbook loads the input table, resolves route metrics for every
// row, and writes the annotated result once at the end. Row-level failures
// become sentinel annotations; only loading, writing, and an empty origin
// abort the run.
func AnnotateWorkbook(
	ctx context.Context,
	req AnnotateWorkbookRequest,
	source ports.TableSource,
	sink ports.TableSink,
	provider ports.RouteProvider,
	limiter *rate.Limiter,
	log *zap.Logger,
) error {
	if strings.TrimSpace(req.Origin) == "" {
		return errors.New("annotate workbook: origin address must be non-empty")
	}

	table, err := source.LoadTable(ctx)
	if err != nil {
		return fmt.Errorf("annotate workbook: load table: %w", err)
	}

	annotations := AnnotateTable(ctx, table, req.Origin, req.CountryHint, provider, limiter, log)

	if err := sink.WriteTable(ctx, table, annotations); err != nil {
		return fmt.Errorf("annotate workbook: write table: %w", err)
	}

	return nil
}

// AnnotateTable produces one annotation per table row, in row order. Rows
// without a usable street address are skipped without any remote call; all
// other rows go through the rate limiter before the provider is asked.
func AnnotateTable(
	ctx context.Context,
	table *domain.Table,
	origin string,
	countryHint string,
	provider ports.RouteProvider,
	limiter *rate.Limiter,
	log *zap.Logger,
) []domain.Annotation {
	annotations := make([]domain.Annotation, len(table.Rows))

	var okCount, noAddress, apiErrors int
	for i := range table.Rows {
		annotations[i] = annotateRow(ctx, table, i, origin, countryHint, provider, limiter, log)

		switch annotations[i].Status {
		case domain.StatusOK:
			okCount++
		case domain.StatusNoAddress:
			noAddress++
		case domain.StatusAPIError:
			apiErrors++
		}

		if done := i + 1; done%progressInterval == 0 {
			log.Info("annotation progress",
				zap.Int("processed", done),
				zap.Int("total", len(table.Rows)),
			)
		}
	}

	log.Info("annotation finished",
		zap.Int("rows", len(table.Rows)),
		zap.Int("ok", okCount),
		zap.Int("no_address", noAddress),
		zap.Int("api_errors", apiErrors),
	)

	return annotations
}

func annotateRow(
	ctx context.Context,
	table *domain.Table,
	row int,
	origin string,
	countryHint string,
	provider ports.RouteProvider,
	limiter *rate.Limiter,
	log *zap.Logger,
) domain.Annotation {
	street := table.Cell(row, table.AddressCol)
	if street.Normalize() == "" {
		return domain.Annotation{Status: domain.StatusNoAddress}
	}

	destination := domain.BuildFullAddress(
		street,
		table.Cell(row, table.PostalCol),
		table.Cell(row, table.CityCol),
		countryHint,
	)

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			log.Warn("rate limiter interrupted", zap.Int("row", row), zap.Error(err))
			return domain.Annotation{Status: domain.StatusAPIError}
		}
	}

	metrics, ok := provider.GetRouteMetrics(ctx, origin, destination)
	if !ok {
		log.Warn("row annotation failed",
			zap.Int("row", row),
			zap.String("destination", destination),
		)
		return domain.Annotation{Status: domain.StatusAPIError}
	}

	return domain.Annotation{Status: domain.StatusOK, Metrics: metrics}
}
