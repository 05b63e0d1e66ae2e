package roomservice

import (
	"testing"

	"hotelier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTicketRepo is an in-memory RoomServiceRepository with CAS semantics.
type fakeTicketRepo struct {
	tickets map[string]*models.RoomServiceTicket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*models.RoomServiceTicket)}
}

func (r *fakeTicketRepo) Create(t *models.RoomServiceTicket) error {
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}

func (r *fakeTicketRepo) GetByID(id string) (*models.RoomServiceTicket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTicketRepo) ListByRoomNumber(roomNumber string) ([]models.RoomServiceTicket, error) {
	var out []models.RoomServiceTicket
	for _, t := range r.tickets {
		if t.RoomNumber == roomNumber {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByStatus(status models.ServiceStatus) ([]models.RoomServiceTicket, error) {
	var out []models.RoomServiceTicket
	for _, t := range r.tickets {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListActive() ([]models.RoomServiceTicket, error) {
	var out []models.RoomServiceTicket
	for _, t := range r.tickets {
		if t.Status == models.ServicePending || t.Status == models.ServiceInProgress {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) UpdateStatus(id string, from, to models.ServiceStatus) (bool, error) {
	t, ok := r.tickets[id]
	if !ok || t.Status != from {
		return false, nil
	}
	t.Status = to
	return true, nil
}

func (r *fakeTicketRepo) CompletedCharges(roomNumber string) ([]models.ServiceCharge, error) {
	var out []models.ServiceCharge
	for _, t := range r.tickets {
		if t.RoomNumber == roomNumber && t.Status == models.ServiceCompleted {
			out = append(out, models.ServiceCharge{Name: t.ServiceType, Amount: t.Amount})
		}
	}
	return out, nil
}

func ticketRequest() models.RoomServiceRequest {
	return models.RoomServiceRequest{
		RoomNumber:  "101",
		ServiceType: "FOOD",
		Amount:      50.0,
		Description: "Club sandwich",
		GuestName:   "Ada Wanjiru",
	}
}

func TestCreateTicket(t *testing.T) {
	svc := &DefaultRoomServiceService{Repo: newFakeTicketRepo()}

	ticket, err := svc.CreateTicket(ticketRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, models.ServicePending, ticket.Status)

	fetched, err := svc.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, fetched.ID)
}

func TestGetTicketNotFound(t *testing.T) {
	svc := &DefaultRoomServiceService{Repo: newFakeTicketRepo()}

	_, err := svc.GetTicket("missing")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTicketLifecycle(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := &DefaultRoomServiceService{Repo: repo}

	ticket, err := svc.CreateTicket(ticketRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateTicketStatus(ticket.ID, models.ServiceInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceInProgress, updated.Status)

	updated, err = svc.UpdateTicketStatus(ticket.ID, models.ServiceCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCompleted, updated.Status)

	// Completed tickets become billing charges.
	charges, err := repo.CompletedCharges("101")
	require.NoError(t, err)
	require.Len(t, charges, 1)
	assert.Equal(t, 50.0, charges[0].Amount)

	// Completion is terminal.
	_, err = svc.UpdateTicketStatus(ticket.ID, models.ServiceCancelled)
	var se *StateError
	assert.ErrorAs(t, err, &se)
}

func TestTicketIllegalTransitions(t *testing.T) {
	svc := &DefaultRoomServiceService{Repo: newFakeTicketRepo()}

	ticket, err := svc.CreateTicket(ticketRequest())
	require.NoError(t, err)

	// Tickets cannot skip the in-progress step.
	_, err = svc.UpdateTicketStatus(ticket.ID, models.ServiceCompleted)
	var se *StateError
	require.ErrorAs(t, err, &se)

	// Pending tickets can be cancelled directly.
	updated, err := svc.UpdateTicketStatus(ticket.ID, models.ServiceCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCancelled, updated.Status)

	_, err = svc.UpdateTicketStatus(ticket.ID, models.ServiceInProgress)
	assert.ErrorAs(t, err, &se)
}

func TestListActive(t *testing.T) {
	svc := &DefaultRoomServiceService{Repo: newFakeTicketRepo()}

	first, err := svc.CreateTicket(ticketRequest())
	require.NoError(t, err)
	_, err = svc.CreateTicket(ticketRequest())
	require.NoError(t, err)

	_, err = svc.UpdateTicketStatus(first.ID, models.ServiceCancelled)
	require.NoError(t, err)

	active, err := svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
