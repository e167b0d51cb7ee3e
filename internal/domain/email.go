package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TripCodeEmailData holds data for the trip-code share email.
type TripCodeEmailData struct {
	Email       string
	TripCode    string
	Destination string
	StartDate   string
	EndDate     string
	LengthDays  int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTripCode(ctx context.Context, data *TripCodeEmailData) error
}
