// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"hotelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List retrieves bookings with pagination, sorting, search and status filter.
// Search matches guest first/last name or room number, case-insensitively.
func (r *MongoBookingRepo) List(q models.BookingQuery) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": regex},
			bson.M{"last_name": regex},
			bson.M{"room_number": regex},
		}
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := 1
	if q.SortDesc {
		order = -1
	}
	size := q.Size
	if size <= 0 {
		size = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64(q.Page) * int64(size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}

// ActiveRoomIDsOverlapping returns the distinct room IDs that have an active
// booking overlapping the half-open range [checkIn, checkOut).
func (r *MongoBookingRepo) ActiveRoomIDsOverlapping(checkIn, checkOut time.Time) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":         activeStatuses(),
		"check_in_date":  bson.M{"$lt": checkOut},
		"check_out_date": bson.M{"$gt": checkIn},
	}
	values, err := r.coll.Distinct(ctx, "room_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping rooms: %w", err)
	}

	roomIDs := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			roomIDs = append(roomIDs, id)
		}
	}
	return roomIDs, nil
}

// CheckInsOn retrieves BOOKED bookings whose check-in date is the given day.
func (r *MongoBookingRepo) CheckInsOn(day time.Time) ([]models.Booking, error) {
	return r.findAll(bson.M{"check_in_date": day, "status": models.StatusBooked})
}

// CheckOutsOn retrieves CHECKED_IN bookings whose check-out date is the given day.
func (r *MongoBookingRepo) CheckOutsOn(day time.Time) ([]models.Booking, error) {
	return r.findAll(bson.M{"check_out_date": day, "status": models.StatusCheckedIn})
}

// CurrentGuests retrieves all CHECKED_IN bookings.
func (r *MongoBookingRepo) CurrentGuests() ([]models.Booking, error) {
	return r.findAll(bson.M{"status": models.StatusCheckedIn})
}

func (r *MongoBookingRepo) findAll(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CountByStatus counts bookings in a given status.
func (r *MongoBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	return count, nil
}

// Count counts all bookings in the ledger.
func (r *MongoBookingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// CountOccupiedRooms counts distinct rooms with an active booking covering the date.
func (r *MongoBookingRepo) CountOccupiedRooms(date time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":         activeStatuses(),
		"check_in_date":  bson.M{"$lte": date},
		"check_out_date": bson.M{"$gt": date},
	}
	values, err := r.coll.Distinct(ctx, "room_id", filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count occupied rooms: %w", err)
	}
	return int64(len(values)), nil
}

// WeeklyOccupancy aggregates active and cancelled bookings per check-in day.
func (r *MongoBookingRepo) WeeklyOccupancy(start, end time.Time) ([]models.OccupancyPoint, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"check_in_date": bson.M{"$gte": start, "$lte": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dayOfMonth": "$check_in_date"},
			"active": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{"$status", bson.A{models.StatusBooked, models.StatusCheckedIn}}}, 1, 0,
			}}},
			"cancelled": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.StatusCancelled}}, 1, 0,
			}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly occupancy: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []struct {
		Day       int   `bson:"_id"`
		Active    int64 `bson:"active"`
		Cancelled int64 `bson:"cancelled"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode weekly occupancy: %w", err)
	}

	points := make([]models.OccupancyPoint, 0, len(raw))
	for _, p := range raw {
		points = append(points, models.OccupancyPoint{Day: p.Day, Active: p.Active, Cancelled: p.Cancelled})
	}
	return points, nil
}
