package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/repository"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
	"github.com/fredyfurtado/salon-manager/pkg/validator"
)

type Service struct {
	repo     repository.StaffRepository
	validate validator.Validator
}

func NewService(repo repository.StaffRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("staff name is required")
	}

	staff := &model.Staff{Name: req.Name}
	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return staff, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]*model.Staff, error) {
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}
