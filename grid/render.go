package grid

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// String renders the grid one row per line, glyphs separated by a space.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (2*g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.kinds.Glyph(g.cells[g.Index(r, c)]))
		}
	}

	return sb.String()
}

// Render writes String() followed by a newline to w.
func (g *Grid) Render(w io.Writer) error {
	_, err := io.WriteString(w, g.String()+"\n")
	return err
}

// Parse builds a grid from glyph rows such as "T . P". Whitespace inside a
// row is ignored and EmptyGlyph denotes Empty. Every row must hold the
// same number of glyphs.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownGlyph.
// Complexity: O(R×C).
func Parse(rows []string, kinds *Kinds) (*Grid, error) {
	if kinds == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrBadKinds)
	}
	values := make([][]CellType, 0, len(rows))
	for r, line := range rows {
		row := make([]CellType, 0, len(line))
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}
			t, ok := kinds.ByGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q in row %d", ErrUnknownGlyph, ch, r)
			}
			row = append(row, t)
		}
		values = append(values, row)
	}

	return FromTypes(values, kinds)
}
