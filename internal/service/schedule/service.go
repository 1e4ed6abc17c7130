package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
	"github.com/fredyfurtado/salon-manager/pkg/validator"
)

// Service manages the appointment calendar. Bookings carry no payment
// information and no status; they are append-only.
type Service struct {
	repo     repository.AppointmentRepository
	validate validator.Validator
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, apperrors.Validation("client name is required")
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(model.TimeLayout, req.Time); err != nil {
		return nil, apperrors.Validation("time must be HH:MM")
	}

	appointment := &model.Appointment{
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		Service:    req.Service,
		Staff:      req.Staff,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
