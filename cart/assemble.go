package cart

import (
	"bufio"
	"io"
	"strings"
)

// Cart is the assembled cartridge document. Empty sections are omitted
// from the output.
type Cart struct {
	Script string // lua source, written verbatim
	Gfx    []string
	Flags  []string
	Map    []string
}

// Write emits the cartridge to w: the fixed preamble, then the script,
// graphics, flags and map sections in that order.
func Write(w io.Writer, c Cart) error {
	bw := bufio.NewWriter(w)

	lines := []string{Header, Version}
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}

	if c.Script != "" {
		if err := writeSection(bw, MarkerScript, scriptLines(c.Script)); err != nil {
			return err
		}
	}
	for _, s := range []struct {
		marker string
		rows   []string
	}{
		{MarkerGfx, c.Gfx},
		{MarkerFlags, c.Flags},
		{MarkerMap, c.Map},
	} {
		if len(s.rows) == 0 {
			continue
		}
		if err := writeSection(bw, s.marker, s.rows); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeSection(bw *bufio.Writer, marker string, rows []string) error {
	if _, err := bw.WriteString(marker + "\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func scriptLines(src string) []string {
	return strings.Split(strings.TrimSuffix(src, "\n"), "\n")
}
