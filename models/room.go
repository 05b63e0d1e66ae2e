package models

import "time"

// RoomType classifies a room for the catalog.
type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeDeluxe   RoomType = "DELUXE"
	RoomTypeSuite    RoomType = "SUITE"
)

// Room represents a bookable hotel room in the catalog.
type Room struct {
	ID               string    `bson:"id" json:"id"`
	RoomNumber       string    `bson:"room_number" json:"roomNumber"` // Unique within the property
	RoomType         RoomType  `bson:"room_type" json:"roomType"`
	AdultCapacity    int       `bson:"adult_capacity" json:"adultCapacity"`
	ChildrenCapacity int       `bson:"children_capacity" json:"childrenCapacity"`
	Price            float64   `bson:"price" json:"price"` // Nightly rate
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	Amenities        []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	IsActive         bool      `bson:"is_active" json:"isActive"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}
