package cart

import (
	"strings"

	"github.com/picocart/picocart/fault"
	"github.com/picocart/picocart/nibble"
)

// Policy selects how graphics and map data sharing the same storage are
// reconciled. There is no implicit default; callers must choose.
type Policy int

const (
	// PolicyError refuses a cart where both sides claim the shared
	// region.
	PolicyError Policy = iota

	// PolicyMapWins overwrites shared graphics rows with the map data.
	PolicyMapWins

	// PolicySpriteWins keeps existing graphics rows and fills only the
	// gap beyond them.
	PolicySpriteWins
)

// ParsePolicy maps the command-line spelling to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "error":
		return PolicyError, nil
	case "map":
		return PolicyMapWins, nil
	case "sprite":
		return PolicySpriteWins, nil
	}
	return 0, fault.Configurationf("unknown overlap policy %q (want error, map or sprite)", s)
}

func (p Policy) String() string {
	switch p {
	case PolicyMapWins:
		return "map"
	case PolicySpriteWins:
		return "sprite"
	default:
		return "error"
	}
}

// SwapPairs exchanges each adjacent digit pair. A map cell stores its two
// digits in the opposite order to the same byte read as two graphics
// pixels, so reinterpreting one as the other swaps every pair. A trailing
// unpaired digit is left in place.
func SwapPairs(s string) string {
	b := []byte(s)
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
	return string(b)
}

// Merge reconciles graphics rows (pixel granularity) with map rows (cell
// granularity) over the shared storage region under policy. Inputs are
// expected already trimmed; with no map rows past the shared boundary
// they are returned unchanged. Map rows past the boundary are
// reinterpreted as graphics storage and spliced in at SharedGfxRow
// according to the policy; the surviving map head and the merged graphics
// are each trimmed independently.
func Merge(gfx, mapRows []string, policy Policy) (gfxOut, mapOut []string, err error) {
	if len(mapRows) <= SharedMapRow {
		return gfx, mapRows, nil
	}

	shared := mapRows[SharedMapRow:]
	mapOut = nibble.TrimRows(mapRows[:SharedMapRow], MapRowChars)

	gfx = nibble.TrimRows(gfx, GfxRowChars)
	if policy == PolicyError && len(gfx) > SharedGfxRow {
		return nil, nil, &fault.OverlapConflict{GfxRows: len(gfx) - SharedGfxRow, MapRows: len(shared)}
	}

	derived := nibble.Split(SwapPairs(nibble.Join(shared)), GfxRowChars)

	gfx = padRows(gfx, SharedGfxRow, GfxRowChars)
	switch policy {
	case PolicySpriteWins:
		if have := len(gfx) - SharedGfxRow; have < len(derived) {
			gfx = append(gfx, derived[have:]...)
		}
	default:
		// Map wins. The error policy lands here only when the
		// graphics side left the shared region empty, where both
		// winners agree.
		merged := append([]string(nil), gfx[:SharedGfxRow]...)
		merged = append(merged, derived...)
		if rest := SharedGfxRow + len(derived); rest < len(gfx) {
			merged = append(merged, gfx[rest:]...)
		}
		gfx = merged
	}

	return nibble.TrimRows(gfx, GfxRowChars), mapOut, nil
}

func padRows(rows []string, n, charsPerRow int) []string {
	if len(rows) >= n {
		return rows
	}
	zero := strings.Repeat("0", charsPerRow)
	out := append(make([]string, 0, n), rows...)
	for len(out) < n {
		out = append(out, zero)
	}
	return out
}
