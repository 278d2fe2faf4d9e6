package domain

// Sentinel strings written into both output cells of a row that produced no
// metrics.
const (
	SentinelNoAddress = "NO_ADDRESS"
	SentinelAPIError  = "API_ERROR"
)

// Headers of the two columns appended to the annotated workbook.
const (
	DistanceColumn = "Distance_km"
	DurationColumn = "Duration_minutes"
)

// Status is the exhaustive outcome of annotating one row.
type Status int

const (
	StatusOK Status = iota
	StatusNoAddress
	StatusAPIError
)

// Annotation holds one row's outcome. Every row receives exactly one
// Annotation, and both output cells are always filled from it.
type Annotation struct {
	Status  Status
	Metrics RouteMetrics
}

// Sentinel returns the marker text for failed statuses, "" for StatusOK.
func (s Status) Sentinel() string {
	switch s {
	case StatusNoAddress:
		return SentinelNoAddress
	case StatusAPIError:
		return SentinelAPIError
	default:
		return ""
	}
}

// DistanceValue is the cell content for the distance column.
func (a Annotation) DistanceValue() any {
	if a.Status == StatusOK {
		return a.Metrics.DistanceKm
	}
	return a.Status.Sentinel()
}

// DurationValue is the cell content for the duration column.
func (a Annotation) DurationValue() any {
	if a.Status == StatusOK {
		return a.Metrics.DurationMinutes
	}
	return a.Status.Sentinel()
}
