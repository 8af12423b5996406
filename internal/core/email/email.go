package email

import (
	"fmt"
)

// Attachment is a file attached to an outgoing email, content is raw bytes
// and gets base64-encoded by the provider.
type Attachment struct {
	Filename string
	Content  []byte
}

// Provider defines the interface for email providers
type Provider interface {
	SendEmail(to, subject, htmlBody string, attachments ...Attachment) error
	GetProviderName() string
}

// Service wraps the email provider
type Service struct {
	provider Provider
}

// NewService creates a new email service with the specified provider
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
	}
}

// SendEmail sends an HTML email with optional attachments
func (s *Service) SendEmail(to, subject, htmlBody string, attachments ...Attachment) error {
	if s.provider == nil {
		return fmt.Errorf("no email provider configured")
	}
	return s.provider.SendEmail(to, subject, htmlBody, attachments...)
}

// SendWorkshopTicket sends a registration confirmation with the ticket QR attached
func (s *Service) SendWorkshopTicket(to, name, workshopSlug, ticketCode string, qrPNG []byte) error {
	subject := fmt.Sprintf("Your ticket for %s", workshopSlug)
	body := fmt.Sprintf(`
		<h2>You're registered! 🎉</h2>
		<p>Hi %s,</p>
		<p>Thanks for registering for <strong>%s</strong>.</p>
		<p>Your ticket code is <strong>%s</strong>. The attached QR code is your
		entry pass — show it at the door.</p>
		<p>See you there!</p>
	`, name, workshopSlug, ticketCode)

	return s.SendEmail(to, subject, body, Attachment{
		Filename: "ticket-" + ticketCode + ".png",
		Content:  qrPNG,
	})
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.GetProviderName()
}
