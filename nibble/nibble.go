/*
Package nibble encodes bounded integers as fixed-width hexadecimal digit
rows, the atomic storage unit of the cartridge text format. Values are
written one nibble per digit; rows are fixed-width runs of digits padded
on the right with '0' and trimmed only in whole-row units.
*/
package nibble

import (
	"fmt"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Encode renders each value as width hexadecimal digits, zero padded on
// the left. Negative values are replaced by def (itself clamped to zero)
// before encoding. Values beyond the representable range wrap silently,
// reproducing the textual truncation the cartridge format performs.
func Encode(values []int, width, def int) string {
	if def < 0 {
		def = 0
	}
	mask := 1<<(uint(width)*4) - 1
	var b strings.Builder
	b.Grow(len(values) * width)
	for _, v := range values {
		if v < 0 {
			v = def
		}
		v &= mask
		for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
			b.WriteByte(hexDigits[v>>uint(shift)&0xf])
		}
	}
	return b.String()
}

// Decode chunks s into width-digit groups and parses each as hex. A
// trailing group shorter than width digits is ignored.
func Decode(s string, width int) ([]int, error) {
	out := make([]int, 0, len(s)/width)
	for i := 0; i+width <= len(s); i += width {
		v, err := strconv.ParseUint(s[i:i+width], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad hex group %q at offset %d", s[i:i+width], i)
		}
		out = append(out, int(v))
	}
	return out, nil
}

// Split chunks data into rows of exactly charsPerRow characters, padding
// a short final row on the right with '0'. A partial trailing row is
// never dropped.
func Split(data string, charsPerRow int) []string {
	if data == "" {
		return nil
	}
	rows := make([]string, 0, (len(data)+charsPerRow-1)/charsPerRow)
	for i := 0; i < len(data); i += charsPerRow {
		end := i + charsPerRow
		if end > len(data) {
			rows = append(rows, data[i:]+strings.Repeat("0", end-len(data)))
		} else {
			rows = append(rows, data[i:end])
		}
	}
	return rows
}

// Join concatenates rows in order.
func Join(rows []string) string {
	return strings.Join(rows, "")
}

// Trim strips trailing whole runs of charsPerRow '0' digits from joined
// data. A trailing run shorter than one row is kept, as is everything
// before the last non-default row.
func Trim(data string, charsPerRow int) string {
	zero := strings.Repeat("0", charsPerRow)
	for len(data) >= charsPerRow && data[len(data)-charsPerRow:] == zero {
		data = data[:len(data)-charsPerRow]
	}
	return data
}

// TrimRows joins rows, trims trailing default rows and re-splits.
func TrimRows(rows []string, charsPerRow int) []string {
	return Split(Trim(Join(rows), charsPerRow), charsPerRow)
}
