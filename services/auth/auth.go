package auth

import (
	"context"
	"fmt"

	staffRepo "hotelier/database/repository/staff"
	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse carries the authenticated staff account and its bearer token.
type AuthResponse struct {
	Staff *models.StaffUser `json:"staff"`
	Token string            `json:"token"`
}

// AuthService defines staff registration and sign-in.
type AuthService interface {
	Register(email, fullName, password, role string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(staffID string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo staffRepo.StaffRepository
}

// Register creates a staff account and issues a session token.
func (s *DefaultAuthService) Register(email, fullName, password, role string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.StaffUser{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(staff); err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	return s.issueSession(staff)
}

// Authenticate verifies credentials and issues a session token.
func (s *DefaultAuthService) Authenticate(email, password string) (*AuthResponse, error) {
	staff, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch staff", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if staff == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueSession(staff)
}

// RevokeToken drops the staff member's active session, invalidating the token.
func (s *DefaultAuthService) RevokeToken(staffID string) error {
	client := utils.GetAuthCacheClient()
	ctx := context.Background()
	if err := client.Del(ctx, utils.AuthCachePrefix+staffID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueSession generates a JWT and records its hash in the auth cache. The
// middleware later compares the presented token's hash against this record.
func (s *DefaultAuthService) issueSession(staff *models.StaffUser) (*AuthResponse, error) {
	token, err := utils.GenerateToken(staff.ID, staff.Email, utils.AuthSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx := context.Background()
	key := utils.AuthCachePrefix + staff.ID
	if err := client.Set(ctx, key, utils.HashToken(token), utils.AuthSessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &AuthResponse{Staff: staff, Token: token}, nil
}
