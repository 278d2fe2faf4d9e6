package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"distance-annotator/internal/adapters/routing"
	"distance-annotator/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const testOrigin = "Origin 1, 8000 Zürich, Switzerland"

func testTable() *domain.Table {
	return &domain.Table{
		SheetName: "Sheet1",
		Headers:   []string{"Address", "PostalCode", "City"},
		Rows: [][]domain.Cell{
			{domain.TextCell("Main St 1"), domain.NumberCell(8001), domain.TextCell("Zürich")},
			{domain.MissingCell(), domain.NumberCell(8002), domain.TextCell("Zürich")},
			{domain.TextCell("Nowhere 9"), domain.MissingCell(), domain.MissingCell()},
			{domain.TextCell("   "), domain.MissingCell(), domain.TextCell("Bern")},
		},
		AddressCol: 0,
		PostalCol:  1,
		CityCol:    2,
	}
}

func TestAnnotateTable(t *testing.T) {
	routes := []routing.MockRoute{
		{
			Origin:      testOrigin,
			Destination: "Main St 1, 8001 Zürich, Switzerland",
			Metrics:     domain.RouteMetrics{DistanceKm: 12.35, DurationMinutes: 16.5},
		},
	}
	provider := routing.NewMockRouteProvider(routes)

	table := testTable()
	annotations := AnnotateTable(context.Background(), table, testOrigin, "Switzerland", provider, nil, zap.NewNop())

	if len(annotations) != len(table.Rows) {
		t.Fatalf("expected %d annotations, got %d", len(table.Rows), len(annotations))
	}

	if annotations[0].Status != domain.StatusOK {
		t.Fatalf("row 0 status = %v, want ok", annotations[0].Status)
	}
	if annotations[0].Metrics.DistanceKm != 12.35 || annotations[0].Metrics.DurationMinutes != 16.5 {
		t.Fatalf("row 0 metrics = %+v", annotations[0].Metrics)
	}

	// Missing and whitespace-only street cells are skipped without a call.
	if annotations[1].Status != domain.StatusNoAddress {
		t.Fatalf("row 1 status = %v, want no address", annotations[1].Status)
	}
	if annotations[3].Status != domain.StatusNoAddress {
		t.Fatalf("row 3 status = %v, want no address", annotations[3].Status)
	}

	// The unknown destination fails but does not stop the batch.
	if annotations[2].Status != domain.StatusAPIError {
		t.Fatalf("row 2 status = %v, want api error", annotations[2].Status)
	}

	if len(provider.Calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d: %v", len(provider.Calls), provider.Calls)
	}
	if provider.Calls[0] != "Main St 1, 8001 Zürich, Switzerland" {
		t.Fatalf("first call destination = %q", provider.Calls[0])
	}
	if provider.Calls[1] != "Nowhere 9, Switzerland" {
		t.Fatalf("second call destination = %q", provider.Calls[1])
	}
}

func TestAnnotateTableWithLimiter(t *testing.T) {
	routes := []routing.MockRoute{
		{
			Origin:      testOrigin,
			Destination: "Main St 1, 8001 Zürich, Switzerland",
			Metrics:     domain.RouteMetrics{DistanceKm: 1.2, DurationMinutes: 3.4},
		},
	}
	provider := routing.NewMockRouteProvider(routes)
	limiter := rate.NewLimiter(rate.Every(time.Millisecond), 1)

	table := testTable()
	annotations := AnnotateTable(context.Background(), table, testOrigin, "Switzerland", provider, limiter, zap.NewNop())

	if annotations[0].Status != domain.StatusOK {
		t.Fatalf("row 0 status = %v, want ok", annotations[0].Status)
	}
	if len(provider.Calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(provider.Calls))
	}
}

type stubSource struct {
	table *domain.Table
	err   error
}

func (s *stubSource) LoadTable(ctx context.Context) (*domain.Table, error) {
	return s.table, s.err
}

type stubSink struct {
	table       *domain.Table
	annotations []domain.Annotation
	err         error
}

func (s *stubSink) WriteTable(ctx context.Context, table *domain.Table, annotations []domain.Annotation) error {
	s.table = table
	s.annotations = annotations
	return s.err
}

func TestAnnotateWorkbook(t *testing.T) {
	routes := []routing.MockRoute{
		{
			Origin:      testOrigin,
			Destination: "Main St 1, 8001 Zürich, Switzerland",
			Metrics:     domain.RouteMetrics{DistanceKm: 12.35, DurationMinutes: 16.5},
		},
	}
	provider := routing.NewMockRouteProvider(routes)
	source := &stubSource{table: testTable()}
	sink := &stubSink{}

	req := AnnotateWorkbookRequest{Origin: testOrigin, CountryHint: "Switzerland"}
	err := AnnotateWorkbook(context.Background(), req, source, sink, provider, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sink.table == nil {
		t.Fatal("expected the table to be written")
	}
	if len(sink.annotations) != 4 {
		t.Fatalf("expected 4 annotations written, got %d", len(sink.annotations))
	}
	if sink.annotations[0].Status != domain.StatusOK {
		t.Fatalf("row 0 status = %v, want ok", sink.annotations[0].Status)
	}
}

func TestAnnotateWorkbookEmptyOrigin(t *testing.T) {
	req := AnnotateWorkbookRequest{Origin: "   "}
	err := AnnotateWorkbook(context.Background(), req, &stubSource{}, &stubSink{}, routing.NewMockRouteProvider(nil), nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected an error for an empty origin")
	}
	if !strings.Contains(err.Error(), "origin address") {
		t.Fatalf("error = %q", err)
	}
}

func TestAnnotateWorkbookLoadFailure(t *testing.T) {
	source := &stubSource{err: errors.New("no such file")}

	req := AnnotateWorkbookRequest{Origin: testOrigin}
	err := AnnotateWorkbook(context.Background(), req, source, &stubSink{}, routing.NewMockRouteProvider(nil), nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected a load error")
	}
	if !strings.Contains(err.Error(), "load table") {
		t.Fatalf("error = %q", err)
	}
}

func TestAnnotateWorkbookWriteFailure(t *testing.T) {
	source := &stubSource{table: testTable()}
	sink := &stubSink{err: errors.New("disk full")}

	req := AnnotateWorkbookRequest{Origin: testOrigin, CountryHint: "Switzerland"}
	err := AnnotateWorkbook(context.Background(), req, source, sink, routing.NewMockRouteProvider(nil), nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected a write error")
	}
	if !strings.Contains(err.Error(), "write table") {
		t.Fatalf("error = %q", err)
	}
}
