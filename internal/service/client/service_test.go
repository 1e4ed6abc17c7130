package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredyfurtado/salon-manager/internal/model"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
)

type fakeClientRepo struct {
	clients []*model.Client
}

func (f *fakeClientRepo) Create(_ context.Context, client *model.Client) error {
	client.ID = int64(len(f.clients) + 1)
	f.clients = append(f.clients, client)
	return nil
}

func (f *fakeClientRepo) Get(_ context.Context, id int64) (*model.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.NotFound("client", nil)
}

func (f *fakeClientRepo) List(context.Context) ([]*model.Client, error) {
	return f.clients, nil
}

func TestCreateClient(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewService(repo)

	created, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Phone:     "11 98888-7777",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ana Silva", created.FullName())
}

func TestCreateClientValidation(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &model.CreateClientRequest{LastName: "Silva"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateClient(ctx, &model.CreateClientRequest{FirstName: "   "})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateClient(ctx, &model.CreateClientRequest{FirstName: "Ana", Email: "not-an-email"})
	assert.True(t, apperrors.IsValidation(err))

	assert.Empty(t, repo.clients)
}

func TestGetClientNotFound(t *testing.T) {
	svc := NewService(&fakeClientRepo{})

	_, err := svc.GetClient(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}
