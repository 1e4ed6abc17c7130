package sqlite

import (
	"context"
	"fmt"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (date, time, client_name, service, staff)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.store.Insert(ctx, "appointments.insert", query,
		appointment.Date,
		appointment.Time,
		appointment.ClientName,
		appointment.Service,
		appointment.Staff,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	appointment.ID = id
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments ORDER BY date, time, id`
	var appointments []*model.Appointment
	if err := r.store.Select(ctx, "appointments.list", &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
