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

// LeadService handles lead use cases. A lead has no owner of its own,
// so every check resolves the parent customer first and applies the
// ownership decision to it.
type LeadService struct {
	leads     crm.LeadRepository
	customers crm.CustomerRepository
	logger    *zap.Logger
}

// NewLeadService creates a lead service.
func NewLeadService(leads crm.LeadRepository, customers crm.CustomerRepository, logger *zap.Logger) *LeadService {
	return &LeadService{
		leads:     leads,
		customers: customers,
		logger:    logger,
	}
}

// CreateForCustomer creates a lead under an accessible customer.
func (s *LeadService) CreateForCustomer(ctx context.Context, actor identity.Actor, customerID uuid.UUID, input CreateLeadInput) (*LeadDTO, error) {
	customer, err := s.findAccessibleCustomer(ctx, actor, customerID)
	if err != nil {
		return nil, err
	}

	lead, err := crm.NewLead(customer.ID, input.Title, input.Description, crm.LeadStatus(input.Status), input.Value)
	if err != nil {
		return nil, err
	}

	if err := s.leads.Save(ctx, lead); err != nil {
		s.logger.Error("failed to save lead", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.String("customer_id", customer.ID.String()),
	)

	dto := toLeadDTO(lead)
	return &dto, nil
}

// ListForCustomer returns a customer's leads, newest first. An
// unrecognized status filter is ignored rather than rejected.
func (s *LeadService) ListForCustomer(ctx context.Context, actor identity.Actor, customerID uuid.UUID, status string) ([]LeadDTO, error) {
	customer, err := s.findAccessibleCustomer(ctx, actor, customerID)
	if err != nil {
		return nil, err
	}

	statusFilter := crm.LeadStatus(status)
	if !statusFilter.Valid() {
		statusFilter = ""
	}

	leads, err := s.leads.FindByCustomer(ctx, customer.ID, statusFilter)
	if err != nil {
		s.logger.Error("failed to list leads", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	return toLeadDTOs(leads), nil
}

// Update applies a partial update to a lead after checking access to
// its parent customer.
func (s *LeadService) Update(ctx context.Context, actor identity.Actor, leadID uuid.UUID, input UpdateLeadInput) (*LeadDTO, error) {
	lead, err := s.findAccessibleLead(ctx, actor, leadID)
	if err != nil {
		return nil, err
	}

	update := crm.LeadUpdate{
		Title:       input.Title,
		Description: input.Description,
		Value:       input.Value,
	}
	if input.Status != nil {
		status := crm.LeadStatus(*input.Status)
		update.Status = &status
	}
	if err := lead.Update(update); err != nil {
		return nil, err
	}

	if err := s.leads.Save(ctx, lead); err != nil {
		s.logger.Error("failed to update lead", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	dto := toLeadDTO(lead)
	return &dto, nil
}

// Delete removes a single lead after checking access to its parent
// customer.
func (s *LeadService) Delete(ctx context.Context, actor identity.Actor, leadID uuid.UUID) error {
	lead, err := s.findAccessibleLead(ctx, actor, leadID)
	if err != nil {
		return err
	}

	if err := s.leads.Delete(ctx, lead.ID); err != nil {
		s.logger.Error("failed to delete lead", zap.Error(err))
		return shared.NewInternalError(err)
	}

	lead.MarkDeleted()
	s.logger.Info("lead deleted",
		zap.String("lead_id", lead.ID.String()),
		zap.String("customer_id", lead.CustomerID.String()),
	)
	return nil
}

func (s *LeadService) findAccessibleCustomer(ctx context.Context, actor identity.Actor, customerID uuid.UUID) (*crm.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
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

// findAccessibleLead resolves a lead then its parent customer. A lead
// whose customer no longer exists is reported as a missing parent, not
// as a missing lead.
func (s *LeadService) findAccessibleLead(ctx context.Context, actor identity.Actor, leadID uuid.UUID) (*crm.Lead, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("lead")
		}
		s.logger.Error("failed to load lead", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if lead == nil {
		return nil, shared.NewNotFoundError("lead")
	}

	customer, err := s.customers.FindByID(ctx, lead.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("parent customer")
		}
		s.logger.Error("failed to load parent customer", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if customer == nil {
		return nil, shared.NewNotFoundError("parent customer")
	}
	if !actor.CanAccess(customer.OwnerID) {
		return nil, shared.NewForbiddenError("access denied")
	}
	return lead, nil
}
