package repository

import (
	"context"

	"github.com/fredyfurtado/salon-manager/internal/model"
)

// All repository interfaces in one file
type (
	// ClientRepository handles client records
	ClientRepository interface {
		Create(ctx context.Context, client *model.Client) error
		Get(ctx context.Context, id int64) (*model.Client, error)
		List(ctx context.Context) ([]*model.Client, error)
	}

	// ServiceRepository handles the service catalog
	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		GetByName(ctx context.Context, name string) (*model.Service, error)
		List(ctx context.Context) ([]*model.Service, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		List(ctx context.Context) ([]*model.Staff, error)
	}

	VisitRepository interface {
		Create(ctx context.Context, visit *model.Visit) error
		HistoryForClient(ctx context.Context, clientID int64) ([]*model.Visit, error)
		ListWithClientNames(ctx context.Context) ([]*model.VisitWithClient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}

	LedgerRepository interface {
		Create(ctx context.Context, entry *model.LedgerEntry) error
		List(ctx context.Context) ([]*model.LedgerEntry, error)
	}
)
