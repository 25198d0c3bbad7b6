package crm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerService handles customer use cases. Every read and mutation
// is checked against the acting user's access before it touches data.
type CustomerService struct {
	customers crm.CustomerRepository
	leads     crm.LeadRepository
	tx        shared.TransactionManager
	logger    *zap.Logger
}

// NewCustomerService creates a customer service.
func NewCustomerService(
	customers crm.CustomerRepository,
	leads crm.LeadRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		leads:     leads,
		tx:        tx,
		logger:    logger,
	}
}

// Create creates a customer owned by the acting user.
func (s *CustomerService) Create(ctx context.Context, actor identity.Actor, input CreateCustomerInput) (*CustomerDTO, error) {
	customer, err := crm.NewCustomer(actor.ID, input.Name, input.Email, input.Phone, input.Company)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("failed to save customer", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("owner_id", actor.ID.String()),
	)

	dto := toCustomerDTO(customer)
	return &dto, nil
}

// List returns a page of customers. Regular users see only their own
// records; admins see everyone's. The search term narrows within that
// scope, never beyond it.
func (s *CustomerService) List(ctx context.Context, actor identity.Actor, input ListCustomersInput) (*shared.Paginated[CustomerDTO], error) {
	filter := shared.NewFilter()
	filter.Page = input.Page
	filter.PageSize = input.PageSize
	filter.Search = input.Search
	filter.Normalize()

	result, err := s.customers.FindAll(ctx, actor.ScopeOwner(), filter)
	if err != nil {
		s.logger.Error("failed to list customers", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	dtos := make([]CustomerDTO, len(result.Items))
	for i, customer := range result.Items {
		dtos[i] = toCustomerDTO(customer)
	}
	return shared.NewPaginated(dtos, result.Total, result.Page, result.PageSize), nil
}

// GetByID returns a customer with its leads, newest first. Existence
// is checked before access, so a missing record is NOT_FOUND even for
// callers who could not have accessed it.
func (s *CustomerService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*CustomerDetailDTO, error) {
	customer, err := s.findAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	leads, err := s.leads.FindByCustomer(ctx, customer.ID, "")
	if err != nil {
		s.logger.Error("failed to load customer leads", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	return &CustomerDetailDTO{
		Customer: toCustomerDTO(customer),
		Leads:    toLeadDTOs(leads),
	}, nil
}

// Update applies a partial update to an accessible customer.
func (s *CustomerService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	customer, err := s.findAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	update := crm.CustomerUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
	}
	if err := customer.Update(update); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("failed to update customer", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	dto := toCustomerDTO(customer)
	return &dto, nil
}

// Delete removes a customer and all of its leads in one transaction.
// Leads are removed first; if either step fails nothing is deleted.
func (s *CustomerService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) (*DeleteCustomerResult, error) {
	customer, err := s.findAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var leadsDeleted int64
	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.leads.DeleteByCustomer(txCtx, customer.ID)
		if err != nil {
			return err
		}
		leadsDeleted = deleted
		return s.customers.Delete(txCtx, customer.ID)
	})
	if err != nil {
		s.logger.Error("customer cascade delete failed",
			zap.String("customer_id", customer.ID.String()),
			zap.Error(err),
		)
		return nil, shared.NewInternalError(err)
	}

	customer.MarkDeleted(leadsDeleted)
	s.logger.Info("customer deleted",
		zap.String("customer_id", customer.ID.String()),
		zap.Int64("leads_deleted", leadsDeleted),
	)

	return &DeleteCustomerResult{
		CustomerID:   customer.ID,
		LeadsDeleted: leadsDeleted,
	}, nil
}

// findAccessible loads a customer and applies the ownership check.
// The not-found case always wins over the forbidden case.
func (s *CustomerService) findAccessible(ctx context.Context, actor identity.Actor, id uuid.UUID) (*crm.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("customer")
		}
		s.logger.Error("failed to load customer", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if customer == nil {
		return nil, shared.NewNotFoundError("customer")
	}
	if !actor.CanAccess(customer.OwnerID) {
		return nil, shared.NewForbiddenError("access denied")
	}
	return customer, nil
}
