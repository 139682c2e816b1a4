package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Run("should list the six categories in catalog order", func(t *testing.T) {
		catalog := Defaults()

		require.Len(t, catalog, 6)
		assert.Equal(t, "accommodation", catalog[0].ID)
		assert.Equal(t, "other", catalog[5].ID)
	})
}

func TestBudgetTemplate(t *testing.T) {
	t.Run("should allocate zero for every category", func(t *testing.T) {
		template := BudgetTemplate(Defaults())

		require.Len(t, template, 6)
		for _, allocation := range template {
			assert.Equal(t, 0.0, allocation)
		}
	})
}

func TestResolver(t *testing.T) {
	resolver := NewResolver(Defaults())

	t.Run("should resolve known ids", func(t *testing.T) {
		assert.True(t, resolver.Known("food"))
		assert.Equal(t, "Food & Drinks", resolver.Name("food"))
		assert.Equal(t, "#10b981", resolver.Color("food"))
	})

	t.Run("should fall back to the Unknown placeholder", func(t *testing.T) {
		assert.False(t, resolver.Known("souvenirs"))
		assert.Equal(t, UnknownName, resolver.Name("souvenirs"))
		assert.Equal(t, NeutralColor, resolver.Color("souvenirs"))
	})
}

func TestTips(t *testing.T) {
	t.Run("should return category tips for known ids", func(t *testing.T) {
		assert.NotEmpty(t, TipsFor("food"))
	})

	t.Run("should fall back to the other tips for unknown ids", func(t *testing.T) {
		assert.Equal(t, TipsFor("other"), TipsFor("souvenirs"))
	})

	t.Run("should have general tips for trips without expenses", func(t *testing.T) {
		assert.NotEmpty(t, GeneralTips())
	})
}
