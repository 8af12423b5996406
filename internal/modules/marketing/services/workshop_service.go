package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/email"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
)

// ErrAlreadyRegistered is returned when the email already holds a seat
// for the workshop.
var ErrAlreadyRegistered = fmt.Errorf("email already registered for this workshop")

type RegisterWorkshopInput struct {
	WorkshopSlug string `json:"workshop_slug"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CompanyName  string `json:"company_name"`
}

type WorkshopTicket struct {
	Registration models.WorkshopRegistration `json:"registration"`
	QRCodePNG    string                      `json:"qr_code_png"` // base64
}

type WorkshopService struct {
	regs  repositories.WorkshopRepo
	email *email.Service // optional, nil disables confirmation mail
}

func NewWorkshopService(regs repositories.WorkshopRepo, mailer *email.Service) *WorkshopService {
	return &WorkshopService{regs: regs, email: mailer}
}

// Register books a seat, generates the ticket QR and sends the
// confirmation email best-effort.
func (s *WorkshopService) Register(input RegisterWorkshopInput) (*WorkshopTicket, error) {
	slug := strings.TrimSpace(strings.ToLower(input.WorkshopSlug))
	emailAddr := strings.TrimSpace(strings.ToLower(input.Email))
	if slug == "" || emailAddr == "" || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("workshop_slug, name and email are required")
	}

	exists, err := s.regs.ExistsForEmail(slug, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	ticketCode, err := newTicketCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket code: %w", err)
	}

	reg := models.WorkshopRegistration{
		WorkshopSlug: slug,
		Name:         strings.TrimSpace(input.Name),
		Email:        emailAddr,
		Phone:        strings.TrimSpace(input.Phone),
		CompanyName:  strings.TrimSpace(input.CompanyName),
		TicketCode:   ticketCode,
	}
	if err := s.regs.Create(&reg); err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	qrPNG, err := qrcode.Encode(ticketCode, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket QR: %w", err)
	}

	if s.email != nil {
		if err := s.email.SendWorkshopTicket(reg.Email, reg.Name, reg.WorkshopSlug, reg.TicketCode, qrPNG); err != nil {
			log.Printf("⚠️ Failed to send ticket email to %s: %v", reg.Email, err)
		}
	}

	return &WorkshopTicket{
		Registration: reg,
		QRCodePNG:    base64.StdEncoding.EncodeToString(qrPNG),
	}, nil
}

// ListRegistrations returns all seats for a workshop, oldest first
func (s *WorkshopService) ListRegistrations(workshopSlug string) ([]models.WorkshopRegistration, error) {
	return s.regs.ListBySlug(strings.TrimSpace(strings.ToLower(workshopSlug)))
}

func newTicketCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "WS-" + strings.ToUpper(base64.RawURLEncoding.EncodeToString(buf)), nil
}
