package client

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
	repo     repository.ClientRepository
	validate validator.Validator
}

func NewService(repo repository.ClientRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, apperrors.Validation("first name is required")
	}

	client := &model.Client{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  req.BirthDate,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListClients(ctx context.Context) ([]*model.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
