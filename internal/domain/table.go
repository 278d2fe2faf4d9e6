package domain

// Table is the in-memory form of the input sheet: original header and data
// rows passed through untouched, plus the resolved positions of the three
// address columns. Rows keep their original order.
type Table struct {
	SheetName  string
	Headers    []string
	Rows       [][]Cell
	AddressCol int
	PostalCol  int
	CityCol    int
}

// Cell returns the cell at (row, col), or a missing cell when the row is
// shorter than the header.
func (t *Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return MissingCell()
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return MissingCell()
	}
	return r[col]
}
