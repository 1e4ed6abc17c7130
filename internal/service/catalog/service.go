package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
	"github.com/fredyfurtado/salon-manager/pkg/validator"
)

const (
	priceCacheTTL     = 5 * time.Minute
	priceCacheCleanup = 10 * time.Minute
)

// Service manages the service catalog. Price lookups by name back the
// ticket screen's auto-filled amount, so they are cached briefly; the cache
// is flushed whenever the catalog changes.
type Service struct {
	repo     repository.ServiceRepository
	prices   *gocache.Cache
	validate validator.Validator
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{
		repo:     repo,
		prices:   gocache.New(priceCacheTTL, priceCacheCleanup),
		validate: validator.New(),
	}
}

func (s *Service) CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("service name is required")
	}

	service := &model.Service{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.prices.Flush()
	return service, nil
}

// PriceFor resolves the catalog list price for a service name.
func (s *Service) PriceFor(ctx context.Context, name string) (float64, error) {
	if cached, ok := s.prices.Get(name); ok {
		return cached.(float64), nil
	}

	service, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	s.prices.Set(name, service.Price, gocache.DefaultExpiration)
	return service.Price, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
