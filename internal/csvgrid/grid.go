// Package csvgrid parses the loosely structured CSV text that the
// spreadsheet export endpoint returns. The sheets are human-maintained, so
// the parser is deliberately forgiving: rows may be ragged, blank rows are
// dropped, and fields are trimmed and unquoted once.
package csvgrid

import "strings"

// Grid is the rectangular-ish result of one parse: ordered rows of string
// cells. No fixed column count is guaranteed; index through Cell for
// defensive access.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when either index is out of
// range for this grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns the row at the given index, or nil when out of range.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row]
}

// Parse splits text into newline-separated records of comma-separated
// fields. A double quote toggles quoted mode, inside which commas are
// literal. Quoting does not protect newlines: a field with an embedded
// newline will incorrectly split the record. That matches the upstream
// exporter's consumers and is kept as a known limitation.
//
// Each field is whitespace-trimmed and has a single matching pair of
// wrapping quotes stripped. Rows whose fields are all blank after trimming
// are dropped; rows with at least one non-blank field are kept even when
// structurally short.
func Parse(text string) Grid {
	grid := Grid{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := parseLine(line)
		if !blankRow(cells) {
			grid = append(grid, cells)
		}
	}
	return grid
}

func parseLine(line string) []string {
	cells := []string{}
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == ',' && !inQuotes:
			cells = append(cells, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	cells = append(cells, cleanField(current.String()))
	return cells
}

// cleanField trims surrounding whitespace and strips one matching pair of
// wrapping quotes. The strip happens once, not recursively.
func cleanField(raw string) string {
	value := strings.TrimSpace(raw)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return value
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Encode renders the grid back to delimited text, quoting fields that
// contain the delimiter. It is the inverse of Parse for content free of
// embedded quotes and newlines.
func Encode(g Grid) string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			if strings.Contains(cell, ",") {
				b.WriteByte('"')
				b.WriteString(cell)
				b.WriteByte('"')
			} else {
				b.WriteString(cell)
			}
		}
	}
	return b.String()
}
