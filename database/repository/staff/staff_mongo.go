package staffRepo

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/database"
	"hotelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("staff")
	repo := &MongoStaffRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a staff account by its unique ID.
func (r *MongoStaffRepo) GetByID(id string) (*models.StaffUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.StaffUser
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a staff account by its email address.
func (r *MongoStaffRepo) GetByEmail(email string) (*models.StaffUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.StaffUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &user, nil
}

// Create inserts a new staff account.
func (r *MongoStaffRepo) Create(user *models.StaffUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("staff account with email %s already exists: %w", user.Email, err)
		}
		return fmt.Errorf("failed to create staff account: %w", err)
	}
	return nil
}
