package user

import (
	"net/mail"

	"github.com/wigac/wigac-backend/internal/domain"
)

// UpdateProfileInput holds parameters for a profile update. Nil fields are
// left unchanged. Changing the password requires CurrentPassword.
type UpdateProfileInput struct {
	Name            *string
	Email           *string
	CurrentPassword string
	NewPassword     *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Email != nil {
		if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if i.NewPassword != nil {
		if len(*i.NewPassword) < 6 {
			errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must be at least 6 characters"})
		}
		if i.CurrentPassword == "" {
			errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required to change password"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
