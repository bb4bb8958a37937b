package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adampresley/residencias/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type ContactServicer interface {
	Submit(request *models.ContactRequest) error
}

type ContactServiceConfig struct {
	DB          *sqlz.DB
	EmailApiKey string
	EmailSender EmailSender
	FromEmail   string
	FromName    string
	NotifyEmail string
	NotifyName  string
}

type ContactService struct {
	db          *sqlz.DB
	fromEmail   string
	fromName    string
	notifyEmail string
	notifyName  string
	emailSender EmailSender
}

func NewContactService(config ContactServiceConfig) ContactService {
	sender := config.EmailSender

	if sender == nil && config.EmailApiKey != "" {
		sender = NewResendEmailSender(config.EmailApiKey)
	}

	return ContactService{
		db:          config.DB,
		fromEmail:   config.FromEmail,
		fromName:    config.FromName,
		notifyEmail: config.NotifyEmail,
		notifyName:  config.NotifyName,
		emailSender: sender,
	}
}

/*
Submit validates and stores a contact request, then notifies the site
owner. A failed notification is logged but does not fail the request,
since the request is already stored.
*/
func (s ContactService) Submit(request *models.ContactRequest) error {
	var (
		err error
	)

	if err = request.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now

	sql := `
INSERT INTO contact_requests (
   created_at
   , updated_at
   , name
   , email
   , phone
   , message
   , residence_slug
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

	params := []any{
		request.CreatedAt,
		request.UpdatedAt,
		request.Name,
		request.Email,
		request.Phone,
		request.Message,
		request.ResidenceSlug,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("error storing contact request from '%s': %w", request.Email, err)
	}

	if s.emailSender == nil || s.notifyEmail == "" {
		slog.Info("contact request stored without notification", "email", request.Email)
		return nil
	}

	err = s.emailSender.SendContactNotification(
		s.notifyName,
		s.notifyEmail,
		s.fromName,
		s.fromEmail,
		request,
	)

	if err != nil {
		slog.Error("failed to send contact notification", "error", err, "email", request.Email)
	}

	return nil
}
