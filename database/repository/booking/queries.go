package bookingRepo

import (
	"context"

	"neatspin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns booking records newest first, optionally filtered by exact
// status match.
func (r *mongoBookingRepo) List(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	filter := bson.M{}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
