package sqlite

import (
	"context"
	"fmt"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
)

type visitRepository struct {
	store *Store
}

func NewVisitRepository(store *Store) repository.VisitRepository {
	return &visitRepository{store: store}
}

func (r *visitRepository) Create(ctx context.Context, visit *model.Visit) error {
	query := `
		INSERT INTO visits (date, client_id, service, amount, payment_method, staff)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.store.Insert(ctx, "visits.insert", query,
		visit.Date,
		visit.ClientID,
		visit.Service,
		visit.Amount,
		visit.PaymentMethod,
		visit.Staff,
	)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	visit.ID = id
	return nil
}

// HistoryForClient returns the client's visits newest first, the order the
// ticket screen displays them in.
func (r *visitRepository) HistoryForClient(ctx context.Context, clientID int64) ([]*model.Visit, error) {
	query := `SELECT * FROM visits WHERE client_id = ? ORDER BY id DESC`
	var visits []*model.Visit
	if err := r.store.Select(ctx, "visits.history", &visits, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list visit history: %w", err)
	}
	return visits, nil
}

// ListWithClientNames joins each visit with the client's full name for the
// revenue report.
func (r *visitRepository) ListWithClientNames(ctx context.Context) ([]*model.VisitWithClient, error) {
	query := `
		SELECT v.id, v.date, v.client_id, v.service, v.amount, v.payment_method, v.staff,
		       c.first_name || ' ' || c.last_name AS client_name
		FROM visits v
		JOIN clients c ON v.client_id = c.id
		ORDER BY v.id DESC
	`
	var visits []*model.VisitWithClient
	if err := r.store.Select(ctx, "visits.list_with_clients", &visits, query); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}
