package impl

import (
	"io"
	"log/slog"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// newDiscardLogger returns a logger that swallows everything, keeping
// test output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRestaurant(id uuid.UUID) *entity.Restaurant {
	return &entity.Restaurant{
		ID:        id,
		Username:  "resto",
		Name:      "Test Restaurant",
		Address:   "1 Food Street",
		Mobile:    "0911222333",
		Cuisine:   "thai",
		Rating:    4.5,
		Distance:  2.3,
		Offers:    "10% off",
		Reviews:   "great noodles",
		OpenTime:  "09:00",
		CloseTime: "22:00",
	}
}

func newTestCustomer(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:       id,
		Username: "customer",
		Name:     "Test Customer",
		Address:  "2 Hungry Lane",
		Mobile:   "0922333444",
	}
}

func newTestPartner(id uuid.UUID) *entity.DeliveryPartner {
	return &entity.DeliveryPartner{
		ID:       id,
		Username: "courier",
		Name:     "Test Courier",
		Mobile:   "0933444555",
		Rating:   4.8,
	}
}

func newTestDish(id, restaurantID uuid.UUID, price float64) *entity.Dish {
	return &entity.Dish{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         "Pad Thai",
		Description:  "rice noodles with tamarind",
		ImageURL:     "https://img.example/pad-thai.png",
		Price:        price,
		Rating:       4.2,
	}
}
