package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredyfurtado/salon-manager/internal/model"
	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "salon.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Already ran once in newTestStore; a second run must be a no-op.
	require.NoError(t, store.EnsureSchema(ctx))

	repo := NewClientRepository(store)
	require.NoError(t, repo.Create(ctx, &model.Client{FirstName: "Ana"}))
}

func TestClientRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewClientRepository(store)
	ctx := context.Background()

	ana := &model.Client{
		FirstName:  "Ana",
		LastName:   "Silva",
		BirthDate:  "1990-04-12",
		NationalID: "123.456.789-00",
		Phone:      "11 98888-7777",
		Email:      "ana@example.com",
	}
	require.NoError(t, repo.Create(ctx, ana))
	assert.Greater(t, ana.ID, int64(0))

	bia := &model.Client{FirstName: "Bia"}
	require.NoError(t, repo.Create(ctx, bia))
	assert.NotEqual(t, ana.ID, bia.ID)

	got, err := repo.Get(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana, got)
	assert.Equal(t, "Ana Silva", got.FullName())

	_, err = repo.Get(ctx, 9999)
	assert.True(t, apperrors.IsNotFound(err))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, ana.ID, clients[0].ID)
	assert.Equal(t, bia.ID, clients[1].ID)
}

func TestServiceRepositoryGetByName(t *testing.T) {
	store := newTestStore(t)
	repo := NewServiceRepository(store)
	ctx := context.Background()

	corte := &model.Service{Name: "Corte", Price: 50}
	require.NoError(t, repo.Create(ctx, corte))
	// Duplicate names are allowed; the earliest entry wins lookups.
	require.NoError(t, repo.Create(ctx, &model.Service{Name: "Corte", Price: 80}))

	got, err := repo.GetByName(ctx, "Corte")
	require.NoError(t, err)
	assert.Equal(t, corte.ID, got.ID)
	assert.Equal(t, 50.0, got.Price)

	_, err = repo.GetByName(ctx, "Escova")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStaffRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewStaffRepository(store)
	ctx := context.Background()

	fredy := &model.Staff{Name: "Fredy"}
	require.NoError(t, repo.Create(ctx, fredy))
	assert.Greater(t, fredy.ID, int64(0))

	staff, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Fredy", staff[0].Name)
}

func TestVisitRepositoryHistory(t *testing.T) {
	store := newTestStore(t)
	clients := NewClientRepository(store)
	visits := NewVisitRepository(store)
	ctx := context.Background()

	ana := &model.Client{FirstName: "Ana", LastName: "Silva"}
	require.NoError(t, clients.Create(ctx, ana))
	bia := &model.Client{FirstName: "Bia"}
	require.NoError(t, clients.Create(ctx, bia))

	first := &model.Visit{Date: "2024-03-01", ClientID: ana.ID, Service: "Corte", Amount: 50, PaymentMethod: model.PaymentMethodPix, Staff: "Fredy"}
	require.NoError(t, visits.Create(ctx, first))
	second := &model.Visit{Date: "2024-03-08", ClientID: ana.ID, Service: "Escova", Amount: 35, PaymentMethod: model.PaymentMethodCash, Staff: "Fredy"}
	require.NoError(t, visits.Create(ctx, second))
	other := &model.Visit{Date: "2024-03-08", ClientID: bia.ID, Service: "Corte", Amount: 50, PaymentMethod: model.PaymentMethodPix, Staff: "Fredy"}
	require.NoError(t, visits.Create(ctx, other))

	history, err := visits.HistoryForClient(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	for _, v := range history {
		assert.Equal(t, ana.ID, v.ClientID)
	}

	empty, err := visits.HistoryForClient(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVisitRepositoryListWithClientNames(t *testing.T) {
	store := newTestStore(t)
	clients := NewClientRepository(store)
	visits := NewVisitRepository(store)
	ctx := context.Background()

	ana := &model.Client{FirstName: "Ana", LastName: "Silva"}
	require.NoError(t, clients.Create(ctx, ana))
	require.NoError(t, visits.Create(ctx, &model.Visit{
		Date: "2024-03-01", ClientID: ana.ID, Service: "Corte", Amount: 50, PaymentMethod: model.PaymentMethodPix, Staff: "Fredy",
	}))

	joined, err := visits.ListWithClientNames(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, "Ana Silva", joined[0].ClientName)
	assert.Equal(t, 50.0, joined[0].Amount)
}

func TestVisitRepositoryTrustsClientID(t *testing.T) {
	// References are not validated at the store; the caller picks from the
	// lists it was offered.
	store := newTestStore(t)
	visits := NewVisitRepository(store)
	ctx := context.Background()

	v := &model.Visit{Date: "2024-03-01", ClientID: 424242, Service: "Corte", Amount: 50, PaymentMethod: model.PaymentMethodPix, Staff: "Fredy"}
	require.NoError(t, visits.Create(ctx, v))

	history, err := visits.HistoryForClient(ctx, 424242)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAppointmentRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	late := &model.Appointment{Date: "2024-03-10", Time: "16:00", ClientName: "Ana Silva", Service: "Corte", Staff: "Fredy"}
	require.NoError(t, repo.Create(ctx, late))
	early := &model.Appointment{Date: "2024-03-10", Time: "09:30", ClientName: "Bia Costa", Service: "Escova", Staff: "Fredy"}
	require.NoError(t, repo.Create(ctx, early))

	appointments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, early.ID, appointments[0].ID)
	assert.Equal(t, late.ID, appointments[1].ID)
}

func TestLedgerRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewLedgerRepository(store)
	ctx := context.Background()

	first := &model.LedgerEntry{Date: "2024-03-01", ClientName: "Ana Silva", Amount: 50, PaymentMethod: model.PaymentMethodPix}
	require.NoError(t, repo.Create(ctx, first))
	second := &model.LedgerEntry{Date: "2024-03-02", ClientName: "Bia Costa", Amount: 35, PaymentMethod: model.PaymentMethodDebitCard}
	require.NoError(t, repo.Create(ctx, second))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}
