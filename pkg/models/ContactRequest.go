package models

import (
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalidContactRequest = fmt.Errorf("invalid contact request")
)

type ContactRequest struct {
	BaseModel

	Name          string `db:"name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Message       string `db:"message"`
	ResidenceSlug string `db:"residence_slug"`
}

// Validate trims the request fields and checks the required ones.
func (c *ContactRequest) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Message = strings.TrimSpace(c.Message)
	c.ResidenceSlug = strings.TrimSpace(c.ResidenceSlug)

	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContactRequest)
	}

	if c.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidContactRequest)
	}

	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: email '%s' is not valid", ErrInvalidContactRequest, c.Email)
	}

	if c.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidContactRequest)
	}

	return nil
}
