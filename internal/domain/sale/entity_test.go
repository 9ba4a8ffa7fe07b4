// internal/domain/sale/entity_test.go
package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	cases := map[string]Method{
		"cash":       MethodCash,
		"CARD":       MethodCard,
		" transfer ": MethodTransfer,
	}
	for in, want := range cases {
		got, err := ParseMethod(in)
		require.NoError(t, err, "in=%q", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "check", "credito"} {
		_, err := ParseMethod(in)
		assert.ErrorIs(t, err, ErrInvalidMethod, "in=%q", in)
	}
}

func TestNewLine(t *testing.T) {
	ln, err := NewLine(" p1 ", 2, 2500)
	require.NoError(t, err)
	assert.Equal(t, "p1", ln.ProductID)

	_, err = NewLine("", 1, 100)
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = NewLine("p1", 0, 100)
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = NewLine("p1", 1, -1)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestLinesSubtotal(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Qty: 2, UnitPrice: 2500},
		{ProductID: "p2", Qty: 1, UnitPrice: 1500},
	}
	assert.Equal(t, 6500, LinesSubtotal(lines))
	assert.Equal(t, 0, LinesSubtotal(nil))
}

func TestValidateCommit(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Qty: 2, UnitPrice: 2500},
		{ProductID: "p2", Qty: 1, UnitPrice: 1500},
	}

	// 6500 + 1235 VAT
	assert.NoError(t, ValidateCommit(7735, MethodCash, 1235, lines))

	assert.ErrorIs(t, ValidateCommit(7735, Method("iou"), 1235, lines), ErrInvalidMethod)
	assert.ErrorIs(t, ValidateCommit(0, MethodCash, 0, nil), ErrNoLines)
	assert.ErrorIs(t, ValidateCommit(7735, MethodCash, 1235, []Line{{ProductID: "", Qty: 1, UnitPrice: 1}}), ErrInvalidLine)
	assert.ErrorIs(t, ValidateCommit(-1, MethodCash, 0, lines), ErrInvalidTotal)
	assert.ErrorIs(t, ValidateCommit(6500, MethodCash, 1235, lines), ErrTotalMismatch)
}
