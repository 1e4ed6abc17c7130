package ledger

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

// Service records money received. Entries are manual and standalone: they
// are not reconciled against visits or appointments.
type Service struct {
	repo     repository.LedgerRepository
	validate validator.Validator
	now      func() time.Time
}

func NewService(repo repository.LedgerRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *Service) RecordEntry(ctx context.Context, req *model.CreateLedgerEntryRequest) (*model.LedgerEntry, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, apperrors.Validation("client name is required")
	}
	if !req.PaymentMethod.Valid() {
		return nil, apperrors.Validation("unknown payment method")
	}

	date := req.Date
	if date == "" {
		date = s.now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}

	entry := &model.LedgerEntry{
		Date:          date,
		ClientName:    req.ClientName,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record ledger entry: %w", err)
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context) ([]*model.LedgerEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}
