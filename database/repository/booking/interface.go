package bookingRepo

import (
	"context"

	"neatspin/database"
	"neatspin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for persisted booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, statusFilter string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("neatspin")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
