package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

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
func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "room_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a room by its unique ID.
func (r *MongoRoomRepo) GetByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

// GetByRoomNumber retrieves a room by its unique room number.
func (r *MongoRoomRepo) GetByRoomNumber(roomNumber string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"room_number": roomNumber}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomNumber, err)
	}
	return &room, nil
}

// GetAll retrieves all rooms.
func (r *MongoRoomRepo) GetAll() ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("room number %s already exists: %w", room.RoomNumber, err)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update modifies an existing room document.
func (r *MongoRoomRepo) Update(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	room.UpdatedAt = time.Now()
	filter := bson.M{"id": room.ID}
	update := bson.M{"$set": room}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

// SetActive flips the room's active flag.
func (r *MongoRoomRepo) SetActive(id string, active bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set active flag for room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

// FindAvailable retrieves active rooms with at least the requested capacities,
// excluding the given room IDs.
func (r *MongoRoomRepo) FindAvailable(excludeIDs []string, adultCapacity, childrenCapacity int) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"is_active":         true,
		"adult_capacity":    bson.M{"$gte": adultCapacity},
		"children_capacity": bson.M{"$gte": childrenCapacity},
	}
	if len(excludeIDs) > 0 {
		filter["id"] = bson.M{"$nin": excludeIDs}
	}

	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// Count counts all rooms in the catalog.
func (r *MongoRoomRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}
