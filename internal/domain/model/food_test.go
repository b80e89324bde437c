package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtra_Subtotal(t *testing.T) {
	tests := []struct {
		name     string
		extra    Extra
		expected string
	}{
		{name: "zero quantity", extra: Extra{Value: decimal.RequireFromString("2.00")}, expected: "0"},
		{name: "several units", extra: Extra{Value: decimal.RequireFromString("1.5"), Quantity: 3}, expected: "4.5"},
		{name: "free extra", extra: Extra{Value: decimal.Zero, Quantity: 4}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(tt.extra.Subtotal()))
		})
	}
}

func TestFood_ExtrasReset(t *testing.T) {
	food := Food{
		ID: 1,
		Extras: []Extra{
			{ID: 1, Name: "Bacon", Value: decimal.NewFromInt(2), Quantity: 7},
			{ID: 2, Name: "Cheese", Value: decimal.NewFromInt(1), Quantity: 0},
		},
	}

	extras := food.ExtrasReset()

	require.Len(t, extras, 2)
	for _, e := range extras {
		assert.Zero(t, e.Quantity)
	}
	assert.Equal(t, 7, food.Extras[0].Quantity, "source food must not be mutated")
	assert.Equal(t, "Bacon", extras[0].Name)
}

func TestFood_UnmarshalFromAPI(t *testing.T) {
	payload := `{
		"id": 5,
		"name": "Ao molho",
		"description": "Macarrão ao molho branco",
		"price": 19.9,
		"category": 1,
		"image_url": "https://cdn.example.com/food.png",
		"extras": [{"id": 1, "name": "Bacon", "value": 1.5}]
	}`

	var food Food
	require.NoError(t, json.Unmarshal([]byte(payload), &food))

	assert.Equal(t, int64(5), food.ID)
	assert.True(t, decimal.RequireFromString("19.9").Equal(food.Price))
	require.Len(t, food.Extras, 1)
	assert.True(t, decimal.RequireFromString("1.5").Equal(food.Extras[0].Value))
}

func TestOrder_MarshalUsesNumbers(t *testing.T) {
	order := Order{
		ProductID:    5,
		ThumbnailURL: "x.png",
		Price:        decimal.RequireFromString("11"),
		Extras:       []Extra{{ID: 1, Value: decimal.RequireFromString("1.5"), Quantity: 2}},
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"price":11`)
	assert.Contains(t, string(data), `"thumbnail_url":"x.png"`)
	assert.Contains(t, string(data), `"value":1.5`)
}

func TestFavoriteFromFood(t *testing.T) {
	food := Food{ID: 3, Name: "n", Description: "d", Price: decimal.NewFromInt(4), ImageURL: "u", Category: 2,
		Extras: []Extra{{ID: 1}}}

	fav := FavoriteFromFood(food)

	assert.Equal(t, Favorite{ID: 3, Name: "n", Description: "d", Price: decimal.NewFromInt(4), ImageURL: "u", Category: 2}, fav)
}

func TestContainsFood(t *testing.T) {
	favorites := []Food{{ID: 1}, {ID: 5}}

	assert.True(t, ContainsFood(favorites, 5))
	assert.False(t, ContainsFood(favorites, 2))
	assert.False(t, ContainsFood(nil, 5))
}
