package domain

import (
	"math"
	"strconv"
	"strings"
)

// CellKind discriminates the shapes a spreadsheet cell can take.
type CellKind int

const (
	CellMissing CellKind = iota
	CellText
	CellNumber
)

// Cell is a spreadsheet value resolved to a closed set of shapes at load
// time, so later stages never re-inspect raw input.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func MissingCell() Cell         { return Cell{Kind: CellMissing} }
func TextCell(s string) Cell    { return Cell{Kind: CellText, Text: s} }
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }

// Normalize renders the cell as address text. Text is trimmed; missing and
// NaN values become ""; numbers keep their shortest decimal form, so a whole
// number renders as integer text, never "8001.0".
func (c Cell) Normalize() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		if math.IsNaN(c.Number) {
			return ""
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}
