// Package model defines the core domain entities for the food details service.
package model

import "github.com/shopspring/decimal"

func init() {
	// The food API exchanges monetary values as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Extra is an optional add-on attached to a food, with its own unit value and a
// user-chosen quantity.
//
// @Description Optional add-on of a food
// @Example {"id": 1, "name": "Bacon", "value": 1.5, "quantity": 2}
type Extra struct {
	ID       int64           `json:"id" example:"1"`
	Name     string          `json:"name" example:"Bacon"`
	Value    decimal.Decimal `json:"value" swaggertype:"number" example:"1.5"`
	Quantity int             `json:"quantity" example:"0"`
}

// Subtotal returns value x quantity.
func (e Extra) Subtotal() decimal.Decimal {
	return e.Value.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Food is a menu item as served by the food API.
//
// @Description Menu item with its extras
type Food struct {
	ID          int64           `json:"id" example:"5"`
	Name        string          `json:"name" example:"Ao molho"`
	Description string          `json:"description" example:"Macarrão ao molho branco"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"19.9"`
	ImageURL    string          `json:"image_url" example:"https://cdn.example.com/food.png"`
	Category    int64           `json:"category" example:"1"`
	Extras      []Extra         `json:"extras"`
}

// ExtrasReset returns a copy of the food's extras with every quantity set to zero.
// Quantities sent by the API are never trusted.
func (f Food) ExtrasReset() []Extra {
	extras := make([]Extra, len(f.Extras))
	for i, e := range f.Extras {
		e.Quantity = 0
		extras[i] = e
	}
	return extras
}

// Favorite is the snapshot of a food stored in the user's favorites.
type Favorite struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    int64           `json:"category"`
}

// FavoriteFromFood copies the public fields of a food.
func FavoriteFromFood(f Food) Favorite {
	return Favorite{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
	}
}

// ContainsFood reports whether a favorites listing includes the given food id.
func ContainsFood(favorites []Food, id int64) bool {
	for _, f := range favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Order is the record submitted to the orders endpoint.
type Order struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     int64           `json:"category"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Price        decimal.Decimal `json:"price"`
	Extras       []Extra         `json:"extras"`
}
