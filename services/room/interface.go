package room

import (
	roomRepo "hotelier/database/repository/room"
	"hotelier/models"
)

// RoomService defines the interface for room catalog management. The
// reservation core only reads capacity, price and the active flag from here.
type RoomService interface {
	CreateRoom(input models.Room) (*models.Room, error)
	GetRoom(id string) (*models.Room, error)
	GetAllRooms() ([]models.Room, error)
	UpdateRoom(input models.Room) (*models.Room, error)
	SetRoomActive(id string, active bool) error
}

// DefaultRoomService implements RoomService.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}
