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

type clientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) repository.ClientRepository {
	return &clientRepository{store: store}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (first_name, last_name, birth_date, national_id, phone, email)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.store.Insert(ctx, "clients.insert", query,
		client.FirstName,
		client.LastName,
		client.BirthDate,
		client.NationalID,
		client.Phone,
		client.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	client.ID = id
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id int64) (*model.Client, error) {
	query := `SELECT * FROM clients WHERE id = ?`
	var client model.Client
	err := r.store.Get(ctx, "clients.get", &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("client", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	query := `SELECT * FROM clients ORDER BY id`
	var clients []*model.Client
	if err := r.store.Select(ctx, "clients.list", &clients, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
