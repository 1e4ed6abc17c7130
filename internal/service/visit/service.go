package visit

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

// PriceLookup resolves a service name to its catalog list price.
type PriceLookup interface {
	PriceFor(ctx context.Context, name string) (float64, error)
}

// Service records completed visits. The charged amount defaults to the
// catalog price at submission time but an explicit override wins; the
// service and staff names are stored as copies, never as references.
type Service struct {
	repo     repository.VisitRepository
	catalog  PriceLookup
	validate validator.Validator
	now      func() time.Time
}

func NewService(repo repository.VisitRepository, catalog PriceLookup) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *Service) CreateVisit(ctx context.Context, req *model.CreateVisitRequest) (*model.Visit, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.Service) == "" {
		return nil, apperrors.Validation("service is required")
	}
	if !req.PaymentMethod.Valid() {
		return nil, apperrors.Validation("unknown payment method")
	}

	amount, err := s.resolveAmount(ctx, req)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}

	staff := strings.TrimSpace(req.Staff)
	if staff == "" {
		staff = model.DefaultStaffName
	}

	visit := &model.Visit{
		Date:          date,
		ClientID:      req.ClientID,
		Service:       req.Service,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Staff:         staff,
	}
	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	return visit, nil
}

func (s *Service) resolveAmount(ctx context.Context, req *model.CreateVisitRequest) (float64, error) {
	if req.Amount != nil {
		if *req.Amount < 0 {
			return 0, apperrors.Validation("amount must not be negative")
		}
		return *req.Amount, nil
	}
	price, err := s.catalog.PriceFor(ctx, req.Service)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve catalog price: %w", err)
	}
	return price, nil
}

// HistoryForClient returns the client's visits newest first.
func (s *Service) HistoryForClient(ctx context.Context, clientID int64) ([]*model.Visit, error) {
	visits, err := s.repo.HistoryForClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visit history: %w", err)
	}
	return visits, nil
}
