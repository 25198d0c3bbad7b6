package crm

import (
	"context"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/shared"
)

// CustomerRepository persists customer aggregates.
//
// FindAll restricts results to ownerID unless it is uuid.Nil, in which
// case all owners are included. Filter.Search matches name, email and
// company case-insensitively.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Customer], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeadRepository persists lead aggregates.
//
// DeleteByCustomer removes every lead under a customer and returns how
// many rows were removed; it is the first half of the customer cascade.
type LeadRepository interface {
	Save(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, status LeadStatus) ([]*Lead, error)
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
