package nibble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "00010a0f", Encode([]int{0, 1, 10, 15}, 2, 0))
	assert.Equal(t, "01af", Encode([]int{0, 1, 10, 15}, 1, 0))
}

func TestEncodeNegativeUsesDefault(t *testing.T) {
	assert.Equal(t, "0703", Encode([]int{-1, 3}, 2, 7))
	// The default itself is clamped to non-negative.
	assert.Equal(t, "00", Encode([]int{-5}, 2, -9))
}

func TestEncodeWrapsOverflow(t *testing.T) {
	// 0x1ff in a single nibble keeps only the low digit.
	assert.Equal(t, "f", Encode([]int{0x1ff}, 1, 0))
	assert.Equal(t, "ff", Encode([]int{0x1ff}, 2, 0))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, width := range []int{1, 2} {
		max := 1<<(uint(width)*4) - 1
		values := []int{0, 1, max / 2, max}
		got, err := Decode(Encode(values, width, 0), width)
		require.NoError(t, err)
		assert.Equal(t, values, got, "width %d", width)
	}
}

func TestDecodeRejectsBadDigits(t *testing.T) {
	_, err := Decode("0g", 1)
	assert.Error(t, err)
}

func TestSplitPadsFinalRow(t *testing.T) {
	rows := Split("123", 2)
	assert.Equal(t, []string{"12", "30"}, rows)
}

func TestSplitEmpty(t *testing.T) {
	assert.Nil(t, Split("", 4))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	rows := []string{"0123", "4567", "89ab"}
	assert.Equal(t, rows, Split(Join(rows), 4))
}

func TestTrimWholeRowsOnly(t *testing.T) {
	assert.Equal(t, "1234", Trim("123400000000", 4))
	// A trailing run shorter than one row stays put.
	assert.Equal(t, "123400", Trim("1234000000", 4))
	assert.Equal(t, "00", Trim("00", 4))
	assert.Equal(t, "", Trim("00000000", 4))
}

func TestTrimIdempotent(t *testing.T) {
	once := Trim("abcd0000", 4)
	assert.Equal(t, once, Trim(once, 4))
}

func TestTrimRows(t *testing.T) {
	zero := strings.Repeat("0", 4)
	assert.Equal(t, []string{"ab00"}, TrimRows([]string{"ab00", zero, zero}, 4))
	assert.Nil(t, TrimRows([]string{zero, zero}, 4))
}

func TestTrimRowsKeepsInteriorZeros(t *testing.T) {
	rows := []string{"0000", "1111", "0000"}
	assert.Equal(t, []string{"0000", "1111"}, TrimRows(rows, 4))
}
