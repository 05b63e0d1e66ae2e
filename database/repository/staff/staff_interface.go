package staffRepo

import "hotelier/models"

// StaffRepository defines methods for staff account access.
type StaffRepository interface {
	// GetByID retrieves a staff account by its unique ID.
	GetByID(id string) (*models.StaffUser, error)
	// GetByEmail retrieves a staff account by its email address.
	GetByEmail(email string) (*models.StaffUser, error)
	// Create inserts a new staff account.
	Create(user *models.StaffUser) error
}
