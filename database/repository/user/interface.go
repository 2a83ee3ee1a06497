package userRepo

import (
	"context"

	"neatspin/database"
	"neatspin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines data access for customer accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("neatspin")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
