package pricing

import (
	"testing"

	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		extras   []model.Extra
		quantity int
		expected decimal.Decimal
	}{
		{
			name:     "food only",
			price:    d("10.00"),
			quantity: 1,
			expected: d("10"),
		},
		{
			name:     "extras and quantity",
			price:    d("10.00"),
			extras:   []model.Extra{{ID: 1, Value: d("2.00"), Quantity: 3}},
			quantity: 2,
			expected: d("32"),
		},
		{
			name:  "zero quantity extras contribute nothing",
			price: d("8.0"),
			extras: []model.Extra{
				{ID: 1, Value: d("1.5"), Quantity: 2},
				{ID: 2, Value: d("0"), Quantity: 0},
			},
			quantity: 1,
			expected: d("11"),
		},
		{
			name:  "decimal values stay exact",
			price: d("0.1"),
			extras: []model.Extra{
				{ID: 1, Value: d("0.2"), Quantity: 1},
			},
			quantity: 3,
			expected: d("0.9"),
		},
		{
			name:     "unselected extras",
			price:    d("19.90"),
			extras:   []model.Extra{{ID: 1, Value: d("5"), Quantity: 0}},
			quantity: 2,
			expected: d("39.8"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.price, tt.extras, tt.quantity)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestUnitTotal(t *testing.T) {
	got := UnitTotal(d("10"), []model.Extra{{Value: d("2"), Quantity: 3}, {Value: d("1"), Quantity: 1}})
	assert.True(t, d("17").Equal(got))
}

func TestNewFormatter(t *testing.T) {
	t.Run("valid locale and currency", func(t *testing.T) {
		f, err := NewFormatter("pt-BR", "BRL")
		require.NoError(t, err)
		assert.Equal(t, "BRL", f.Currency())
	})

	t.Run("invalid locale", func(t *testing.T) {
		_, err := NewFormatter("not a locale!", "BRL")
		assert.Error(t, err)
	})

	t.Run("invalid currency", func(t *testing.T) {
		_, err := NewFormatter("pt-BR", "XYZW")
		assert.Error(t, err)
	})

	t.Run("must formatter panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { MustFormatter("pt-BR", "nope") })
	})
}

func TestFormatter_Format(t *testing.T) {
	t.Run("brazilian real", func(t *testing.T) {
		f := MustFormatter("pt-BR", "BRL")
		out := f.Format(d("32"))
		assert.Contains(t, out, "R$")
		assert.Contains(t, out, "32,00")
	})

	t.Run("us dollar", func(t *testing.T) {
		f := MustFormatter("en-US", "USD")
		out := f.Format(d("11.5"))
		assert.Contains(t, out, "$")
		assert.Contains(t, out, "11.50")
	})

	t.Run("rounds to currency scale", func(t *testing.T) {
		f := MustFormatter("en-US", "USD")
		assert.Contains(t, f.Format(d("0.129")), "0.13")
	})

	t.Run("keeps every digit of large totals", func(t *testing.T) {
		f := MustFormatter("en-US", "USD")
		assert.Contains(t, f.Format(d("123456789012345678.99")), "123,456,789,012,345,678.99")

		br := MustFormatter("pt-BR", "BRL")
		assert.Contains(t, br.Format(d("90071992547409.93")), "90.071.992.547.409,93")
	})

	t.Run("currency without minor units", func(t *testing.T) {
		f := MustFormatter("ja-JP", "JPY")
		out := f.Format(d("1500.4"))
		assert.Contains(t, out, "1,500")
		assert.NotContains(t, out, ".")
	})
}
