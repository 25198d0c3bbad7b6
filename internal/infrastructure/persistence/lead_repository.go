package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// GormLeadRepository implements crm.LeadRepository.
type GormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a lead repository.
func NewGormLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

func (r *GormLeadRepository) Save(ctx context.Context, lead *crm.Lead) error {
	model := models.LeadModelFromDomain(lead)
	err := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

func (r *GormLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Lead, error) {
	var model models.LeadModel
	err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}
	return model.ToDomain(), nil
}

// FindByCustomer returns a customer's leads newest first, optionally
// narrowed to one status.
func (r *GormLeadRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, status crm.LeadStatus) ([]*crm.Lead, error) {
	query := dbFromContext(ctx, r.db).Where("customer_id = ?", customerID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []models.LeadModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]*crm.Lead, len(rows))
	for i := range rows {
		leads[i] = rows[i].ToDomain()
	}
	return leads, nil
}

func (r *GormLeadRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("customer_id = ?", customerID).Delete(&models.LeadModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete customer leads: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormLeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.LeadModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
