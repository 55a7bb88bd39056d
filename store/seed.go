package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/J3FF-omg/SaveFood/models"
)

// Seed loads the fixed sample dataset when the store is empty: one account
// per role plus a second seller, three restaurants, six discounted offers
// and one historical delivered order. State lives only for the process
// lifetime, so the fixture doubles as the demo environment.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin, Email: "admin@foodrescue.com", Phone: "+7 999 1112233"},
		{ID: "2", Username: "buyer1", Password: "buyer123", Role: models.RoleBuyer, Email: "buyer@example.com", Phone: "+7 999 4445566", Address: "15 Primernaya St"},
		{ID: "3", Username: "seller1", Password: "seller123", Role: models.RoleSeller, Email: "italian@restaurant.com", Phone: "+7 999 7778899"},
		{ID: "4", Username: "seller2", Password: "seller123", Role: models.RoleSeller, Email: "sushi@restaurant.com", Phone: "+7 999 0001122"},
	}

	restaurants := []models.Restaurant{
		{ID: "1", Name: "Italian Kitchen", Description: "Authentic Italian cooking with soul", Address: "10 Lenina St", SellerID: "3", Phone: "+7 999 1234567", Rating: 4.7, ImageURL: "https://example.com/italian.jpg"},
		{ID: "2", Name: "Tokyo Sushi Bar", Description: "Fresh sushi and rolls", Address: "25 Pushkina St", SellerID: "4", Phone: "+7 999 7654321", Rating: 4.9, ImageURL: "https://example.com/sushi.jpg"},
		{ID: "3", Name: "Burger House", Description: "Homemade burgers and french fries", Address: "50 Mira Ave", SellerID: "3", Phone: "+7 999 8889977", Rating: 4.3},
	}

	foods := []models.FoodItem{
		{ID: "1", Name: "Pasta Carbonara", Description: "Fresh pasta with bacon, egg and parmesan sauce", Price: 450, OriginalPrice: 650, Quantity: 5, RestaurantID: "1", Category: "Pasta", Discount: 31, CookingTime: 15},
		{ID: "2", Name: "Pizza Margherita", Description: "Classic pizza with tomato sauce and mozzarella", Price: 350, OriginalPrice: 500, Quantity: 3, RestaurantID: "1", Category: "Pizza", Discount: 30, CookingTime: 20},
		{ID: "3", Name: "Philadelphia Roll", Description: "8 pcs, fresh fish, rice, nori, cream cheese", Price: 300, OriginalPrice: 450, Quantity: 10, RestaurantID: "2", Category: "Sushi & Rolls", Discount: 33, PickupOnly: true, CookingTime: 10},
		{ID: "4", Name: "Tom Yum Soup", Description: "Spicy Thai soup with shrimp and coconut milk", Price: 250, OriginalPrice: 400, Quantity: 7, RestaurantID: "2", Category: "Soups", Discount: 38, CookingTime: 15},
		{ID: "5", Name: "Cheeseburger", Description: "Burger with a beef patty, cheese and vegetables", Price: 280, OriginalPrice: 400, Quantity: 8, RestaurantID: "3", Category: "Burgers", Discount: 30, CookingTime: 12},
		{ID: "6", Name: "French Fries", Description: "Crispy french fries with sauce", Price: 120, OriginalPrice: 180, Quantity: 15, RestaurantID: "3", Category: "Snacks", Discount: 33, CookingTime: 8},
	}

	order := models.Order{
		ID:      "1",
		BuyerID: "2",
		Lines: []models.OrderLine{
			{OrderID: "1", FoodID: "1", Quantity: 2, Price: 450},
			{OrderID: "1", FoodID: "5", Quantity: 1, Price: 280},
		},
		TotalPrice:      1180,
		DeliveryAddress: "15 Primernaya St",
		DeliveryType:    models.DeliveryCourier,
		Status:          models.StatusDelivered,
		RestaurantID:    "1",
		PaymentMethod:   "card",
		CreatedAt:       time.Now().Add(-48 * time.Hour),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&foods).Error; err != nil {
			return err
		}
		return tx.Create(&order).Error
	})
}
