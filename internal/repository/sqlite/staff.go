package sqlite

import (
	"context"
	"fmt"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
)

type staffRepository struct {
	store *Store
}

func NewStaffRepository(store *Store) repository.StaffRepository {
	return &staffRepository{store: store}
}

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `INSERT INTO staff (name) VALUES (?)`
	id, err := r.store.Insert(ctx, "staff.insert", query, staff.Name)
	if err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	staff.ID = id
	return nil
}

func (r *staffRepository) List(ctx context.Context) ([]*model.Staff, error) {
	query := `SELECT * FROM staff ORDER BY id`
	var staff []*model.Staff
	if err := r.store.Select(ctx, "staff.list", &staff, query); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}
