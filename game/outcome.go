package game

// OutcomeKind tags the result of a drop attempt.
type OutcomeKind int

const (
	Placed OutcomeKind = iota
	ColumnFull
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case Placed:
		return "placed"
	case ColumnFull:
		return "column_full"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Outcome is the result of a single drop attempt.
// Column and Row locate the new stone; for ColumnFull Row is -1.
type Outcome struct {
	Kind   OutcomeKind
	Player Stone
	Column int
	Row    int
}

// RoundEnded returns true for Win and Draw.
func (o Outcome) RoundEnded() bool {
	return o.Kind == Win || o.Kind == Draw
}
