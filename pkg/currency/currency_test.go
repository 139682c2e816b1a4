package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	t.Run("should map known currency codes", func(t *testing.T) {
		assert.Equal(t, "$", Symbol("USD"))
		assert.Equal(t, "€", Symbol("EUR"))
		assert.Equal(t, "£", Symbol("GBP"))
		assert.Equal(t, "¥", Symbol("JPY"))
		assert.Equal(t, "C$", Symbol("CAD"))
	})

	t.Run("should fall back to the dollar sign for unknown codes", func(t *testing.T) {
		assert.Equal(t, "$", Symbol("XYZ"))
		assert.Equal(t, "$", Symbol(""))
	})
}
