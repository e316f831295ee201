package auth

import (
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
)

// Identity is the caller identity carried by an access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}
