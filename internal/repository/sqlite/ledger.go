package sqlite

import (
	"context"
	"fmt"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
)

type ledgerRepository struct {
	store *Store
}

func NewLedgerRepository(store *Store) repository.LedgerRepository {
	return &ledgerRepository{store: store}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *model.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (date, client_name, amount, payment_method)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.store.Insert(ctx, "ledger.insert", query,
		entry.Date,
		entry.ClientName,
		entry.Amount,
		entry.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	entry.ID = id
	return nil
}

func (r *ledgerRepository) List(ctx context.Context) ([]*model.LedgerEntry, error) {
	query := `SELECT * FROM ledger_entries ORDER BY id DESC`
	var entries []*model.LedgerEntry
	if err := r.store.Select(ctx, "ledger.list", &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}
