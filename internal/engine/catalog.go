// Package engine implements the falling-block state machine: grid, pieces,
// rotation, collision, locking, line clears, hold/next bookkeeping and
// level progression. It has no timers and never touches a display or an
// input device; drivers feed it Commands and Tick calls and read Snapshots.
package engine

// Kind identifies a piece. It doubles as the grid occupant token, so a
// renderer can color settled cells by the piece that produced them.
type Kind uint8

// Empty marks an unoccupied grid cell or an empty hold slot.
const Empty Kind = 0

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of pieces in the catalog.
const KindCount = 7

// String returns the single-letter name of the piece.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether k names a catalog piece.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Piece pairs a kind with a shape. Held and queued pieces are Pieces.
type Piece struct {
	Kind  Kind
	Shape Shape
}

// templates holds the spawn orientation of each piece, indexed by Kind.
// Never hand these out directly; Template returns a copy.
var templates = [KindCount + 1]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
}

// Template returns a fresh copy of the spawn shape for k.
// Returns nil for Empty or unknown kinds.
func Template(k Kind) Shape {
	if !k.Valid() {
		return nil
	}
	return templates[k].Clone()
}

// NewPiece returns the catalog piece for k in spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: Template(k)}
}

// Kinds returns every catalog kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}
