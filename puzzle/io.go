package puzzle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

/*

Text form of puzzles

Puzzles travel as plain text: digits 1-9 for filled cells and a
period for empty ones.  Frame characters ('-' and '|') and all
whitespace are decoration and get stripped, so the pretty-printed
form below parses back to the same board.

    -------------------------
    | 8 . . | . . . | . . . |
    | . . 3 | 6 . . | . . . |
    | . 7 . | . 9 . | 2 . . |
    -------------------------
    | . 5 . | . . 7 | . . . |
    | . . . | . 4 5 | 7 . . |
    | . . . | 1 . . | . 3 . |
    -------------------------
    | . . 1 | . . . | . 6 8 |
    | . . 8 | 5 . . | . 1 . |
    | . 9 . | . . . | 4 . . |
    -------------------------

*/

// EmptyRune marks an empty cell in puzzle text.
const EmptyRune = '.'

// Parse reads a board from puzzle text.  After stripping frame
// characters and whitespace, exactly 81 cell characters must
// remain, each a digit 1-9 or a period; they fill the board in
// reading order.
func Parse(text string) (*Grid, error) {
	clean := strings.Map(func(r rune) rune {
		if r == '-' || r == '|' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if len(clean) != SideLen*SideLen {
		return nil, fmt.Errorf("puzzle text has %d cells, need %d", len(clean), SideLen*SideLen)
	}
	values := make([]int, 0, SideLen*SideLen)
	for i, r := range clean {
		switch {
		case r == EmptyRune:
			values = append(values, 0)
		case r >= '1' && r <= '9':
			values = append(values, int(r-'0'))
		default:
			return nil, fmt.Errorf("invalid character %q at cell %d", r, i)
		}
	}
	return New(values)
}

// hrule separates the block rows of a pretty-printed board.
var hrule = strings.Repeat("-", 25)

// String gives the pretty-printed form of the board.  Unresolved
// cells print as periods regardless of their candidate sets.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString(hrule)
	b.WriteByte('\n')
	for i := 0; i < SideLen; i++ {
		b.WriteString("| ")
		for j := 0; j < SideLen; j++ {
			if s := &g.cells[i][j]; s.fixed() {
				b.WriteString(strconv.Itoa(s.val))
			} else {
				b.WriteRune(EmptyRune)
			}
			b.WriteByte(' ')
			if (j-2)%TileLen == 0 {
				b.WriteString("| ")
			}
		}
		b.WriteByte('\n')
		if (i-2)%TileLen == 0 {
			b.WriteString(hrule)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Write writes the pretty-printed form of the board.
func (g *Grid) Write(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// Signature returns a stable hex digest of the board's fixed
// values, used to key stored solve results.  Boards with the same
// fixed values share a signature no matter how their candidate
// sets differ.
func (g *Grid) Signature() string {
	var raw [SideLen * SideLen]byte
	for i, v := range g.Values() {
		raw[i] = byte(v)
	}
	sum := sha256.Sum256(raw[:])
	return hex.EncodeToString(sum[:])
}
