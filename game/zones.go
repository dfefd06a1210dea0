package game

// FocusZones splits a horizontal span into one zone per column.
// Zone i covers [Origin+i*Pitch, Origin+i*Pitch+Width). Width must not exceed Pitch,
// which keeps the zones from overlapping; any remainder is a gap that maps to no column.
type FocusZones struct {
	Origin int
	Pitch  int
	Width  int
}

// ColumnAt returns the column whose zone contains x.
func (z FocusZones) ColumnAt(x int) (int, bool) {
	if z.Pitch <= 0 || z.Width <= 0 || x < z.Origin {
		return -1, false
	}
	offset := x - z.Origin
	column := offset / z.Pitch
	if column >= Columns || offset%z.Pitch >= z.Width {
		return -1, false
	}
	return column, true
}

// Left returns the first x of a column's zone.
func (z FocusZones) Left(column int) int {
	return z.Origin + column*z.Pitch
}

// ColumnForKey maps the digit keys 1 to 7 onto columns 0 to 6.
func ColumnForKey(r rune) (int, bool) {
	if r < '1' || r > '0'+Columns {
		return -1, false
	}
	return int(r - '1'), true
}
