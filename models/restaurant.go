package models

import "time"

type Restaurant struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	SellerID    string    `json:"seller_id" gorm:"not null;index"`
	Phone       string    `json:"phone"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodItem is a discounted surplus offer. Quantity is the contended field:
// it is only ever mutated through the catalog's SetQuantity, Reserve and
// Release operations, never by direct assignment.
type FoodItem struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	OriginalPrice float64   `json:"original_price"`
	Quantity      int       `json:"quantity" gorm:"not null;default:0"`
	RestaurantID  string    `json:"restaurant_id" gorm:"not null;index"`
	Category      string    `json:"category"`
	Discount      int       `json:"discount"` // percent off the original price
	PickupOnly    bool      `json:"pickup_only"`
	ImageURL      string    `json:"image_url"`
	CookingTime   int       `json:"cooking_time_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}
