package roomServiceRepo

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

// MongoRoomServiceRepo implements RoomServiceRepository using MongoDB.
type MongoRoomServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomServiceRepo creates a new instance of RoomServiceRepository using MongoDB.
func NewMongoRoomServiceRepo() RoomServiceRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("room_services")
	repo := &MongoRoomServiceRepo{coll: coll}

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
func (r *MongoRoomServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "room_number", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "requested_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new ticket document.
func (r *MongoRoomServiceRepo) Create(ticket *models.RoomServiceTicket) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	ticket.RequestedAt = now
	ticket.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, ticket)
	if err != nil {
		return fmt.Errorf("failed to create room service ticket: %w", err)
	}
	return nil
}

// GetByID retrieves a ticket by its unique ID.
func (r *MongoRoomServiceRepo) GetByID(id string) (*models.RoomServiceTicket, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ticket models.RoomServiceTicket
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ticket); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ticket with id %s: %w", id, err)
	}
	return &ticket, nil
}

// ListByRoomNumber retrieves a room's tickets, most recent first.
func (r *MongoRoomServiceRepo) ListByRoomNumber(roomNumber string) ([]models.RoomServiceTicket, error) {
	return r.findAll(bson.M{"room_number": roomNumber}, bson.D{{Key: "requested_at", Value: -1}})
}

// ListByStatus retrieves tickets in a given status, most recent first.
func (r *MongoRoomServiceRepo) ListByStatus(status models.ServiceStatus) ([]models.RoomServiceTicket, error) {
	return r.findAll(bson.M{"status": status}, bson.D{{Key: "requested_at", Value: -1}})
}

// ListActive retrieves PENDING and IN_PROGRESS tickets, oldest first.
func (r *MongoRoomServiceRepo) ListActive() ([]models.RoomServiceTicket, error) {
	filter := bson.M{"status": bson.M{"$in": bson.A{models.ServicePending, models.ServiceInProgress}}}
	return r.findAll(filter, bson.D{{Key: "requested_at", Value: 1}})
}

func (r *MongoRoomServiceRepo) findAll(filter bson.M, sort bson.D) ([]models.RoomServiceTicket, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query room service tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.RoomServiceTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode room service tickets: %w", err)
	}
	return tickets, nil
}

// UpdateStatus performs a compare-and-set transition on a ticket's status.
func (r *MongoRoomServiceRepo) UpdateStatus(id string, from, to models.ServiceStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update status for ticket %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// CompletedCharges returns the completed tickets for a room number as billing
// line items, most recent first.
func (r *MongoRoomServiceRepo) CompletedCharges(roomNumber string) ([]models.ServiceCharge, error) {
	tickets, err := r.findAll(
		bson.M{"room_number": roomNumber, "status": models.ServiceCompleted},
		bson.D{{Key: "requested_at", Value: -1}},
	)
	if err != nil {
		return nil, err
	}

	charges := make([]models.ServiceCharge, 0, len(tickets))
	for _, t := range tickets {
		name := t.ServiceType
		if t.Description != "" {
			name = t.ServiceType + " - " + t.Description
		}
		charges = append(charges, models.ServiceCharge{Name: name, Amount: t.Amount})
	}
	return charges, nil
}
