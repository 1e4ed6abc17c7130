package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
)

type serviceRepository struct {
	store *Store
}

func NewServiceRepository(store *Store) repository.ServiceRepository {
	return &serviceRepository{store: store}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `INSERT INTO services (name, price) VALUES (?, ?)`
	id, err := r.store.Insert(ctx, "services.insert", query, service.Name, service.Price)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	service.ID = id
	return nil
}

// GetByName resolves a catalog entry by its display name. Names are not
// unique; the earliest entry wins, matching the order the selection list
// offers them in.
func (r *serviceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	query := `SELECT * FROM services WHERE name = ? ORDER BY id LIMIT 1`
	var service model.Service
	err := r.store.Get(ctx, "services.get_by_name", &service, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT * FROM services ORDER BY id`
	var services []*model.Service
	if err := r.store.Select(ctx, "services.list", &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
