package roomservice

import (
	"fmt"

	roomServiceRepo "hotelier/database/repository/roomservice"
	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ticketTransitions mirrors the ticket lifecycle:
// PENDING -> IN_PROGRESS -> COMPLETED, with cancellation allowed until
// completion. Completed tickets become billing charges at checkout.
var ticketTransitions = map[models.ServiceStatus][]models.ServiceStatus{
	models.ServicePending:    {models.ServiceInProgress, models.ServiceCancelled},
	models.ServiceInProgress: {models.ServiceCompleted, models.ServiceCancelled},
}

// RoomServiceService defines the interface for ancillary room service tickets.
type RoomServiceService interface {
	CreateTicket(req models.RoomServiceRequest) (*models.RoomServiceTicket, error)
	GetTicket(id string) (*models.RoomServiceTicket, error)
	ListByRoom(roomNumber string) ([]models.RoomServiceTicket, error)
	ListByStatus(status models.ServiceStatus) ([]models.RoomServiceTicket, error)
	ListActive() ([]models.RoomServiceTicket, error)
	UpdateTicketStatus(id string, target models.ServiceStatus) (*models.RoomServiceTicket, error)
}

// DefaultRoomServiceService implements RoomServiceService.
type DefaultRoomServiceService struct {
	Repo roomServiceRepo.RoomServiceRepository
}

// CreateTicket opens a new ticket in PENDING status.
func (s *DefaultRoomServiceService) CreateTicket(req models.RoomServiceRequest) (*models.RoomServiceTicket, error) {
	ticket := &models.RoomServiceTicket{
		ID:          uuid.New().String(),
		RoomNumber:  req.RoomNumber,
		ServiceType: req.ServiceType,
		Amount:      req.Amount,
		Description: req.Description,
		GuestName:   req.GuestName,
		Status:      models.ServicePending,
	}
	if err := s.Repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	utils.GetLogger().Info("room service ticket created",
		zap.String("ticketID", ticket.ID),
		zap.String("roomNumber", ticket.RoomNumber),
		zap.String("serviceType", ticket.ServiceType),
	)
	return ticket, nil
}

// GetTicket retrieves a ticket by ID.
func (s *DefaultRoomServiceService) GetTicket(id string) (*models.RoomServiceTicket, error) {
	ticket, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}
	if ticket == nil {
		return nil, &NotFoundError{ID: id}
	}
	return ticket, nil
}

// ListByRoom retrieves a room's tickets, most recent first.
func (s *DefaultRoomServiceService) ListByRoom(roomNumber string) ([]models.RoomServiceTicket, error) {
	return s.Repo.ListByRoomNumber(roomNumber)
}

// ListByStatus retrieves tickets in the given status.
func (s *DefaultRoomServiceService) ListByStatus(status models.ServiceStatus) ([]models.RoomServiceTicket, error) {
	return s.Repo.ListByStatus(status)
}

// ListActive retrieves tickets still being worked (PENDING, IN_PROGRESS).
func (s *DefaultRoomServiceService) ListActive() ([]models.RoomServiceTicket, error) {
	return s.Repo.ListActive()
}

// UpdateTicketStatus applies a lifecycle transition with a compare-and-set on
// the expected prior status.
func (s *DefaultRoomServiceService) UpdateTicketStatus(id string, target models.ServiceStatus) (*models.RoomServiceTicket, error) {
	ticket, err := s.GetTicket(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, t := range ticketTransitions[ticket.Status] {
		if t == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, &StateError{Message: fmt.Sprintf("cannot move ticket from %s to %s", ticket.Status, target)}
	}

	ok, err := s.Repo.UpdateStatus(id, ticket.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}
	if !ok {
		return nil, &StateError{Message: fmt.Sprintf("ticket %s changed status concurrently", id)}
	}

	ticket.Status = target
	return ticket, nil
}
