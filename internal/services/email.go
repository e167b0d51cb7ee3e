package services

import (
	"context"
	"fmt"
	"log"

	"tripplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTripCode sends the trip code email using the "trip_code" template and the given data.
func (s *emailService) SendTripCode(ctx context.Context, data *domain.TripCodeEmailData) error {
	if data == nil {
		return fmt.Errorf("trip code email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("trip_code", data)
	if err != nil {
		return fmt.Errorf("failed to render trip_code template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send trip code email: %w", err)
	}
	log.Printf("[EMAIL] Trip code sent to %s", data.Email)
	return nil
}
