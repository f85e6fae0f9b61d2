package board

import "fmt"

// Square identifies one of the 64 board cells. Index 0 is a8, index 7 is
// h8, index 56 is a1, index 63 is h1: rank r and file f (both 1-indexed)
// map to index (8-r)*8 + (f-1). This is the indexing the engine's data
// model fixes throughout; it is not a bitboard-style numbering, since the
// board here is a plain 64-cell array, not a set of bitboards.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// NewSquare builds the Square for the given 1-indexed file and rank.
func NewSquare(f File, r Rank) Square {
	return Square((8-int(r))*8 + (int(f) - 1))
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %v", str)
	}
	return ParseSquare(runes[0], runes[1])
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

// Rank returns the square's 1-indexed rank.
func (s Square) Rank() Rank {
	return Rank(8 - int(s)/8)
}

// File returns the square's 1-indexed file.
func (s Square) File() File {
	return File(int(s)%8 + 1)
}

func (s Square) String() string {
	if !s.IsValid() {
		return "?"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank is a chess board rank, 1-indexed: Rank1=1, .., Rank8=8.
type Rank uint8

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '0'), true
}

func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return fmt.Sprintf("%d", int(r))
}

// File is a chess board file, 1-indexed: FileA=1, .., FileH=8.
type File uint8

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	switch f {
	case FileA:
		return "a"
	case FileB:
		return "b"
	case FileC:
		return "c"
	case FileD:
		return "d"
	case FileE:
		return "e"
	case FileF:
		return "f"
	case FileG:
		return "g"
	case FileH:
		return "h"
	default:
		return "?"
	}
}
