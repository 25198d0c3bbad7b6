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

// GormCustomerRepository implements crm.CustomerRepository.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Save(ctx context.Context, customer *crm.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	err := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Customer, error) {
	var model models.CustomerModel
	err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of customers. A non-nil ownerID restricts the
// query to that owner; the search term is matched case-insensitively
// against name, email and company inside that scope.
func (r *GormCustomerRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*crm.Customer], error) {
	query := dbFromContext(ctx, r.db).Model(&models.CustomerModel{})

	if ownerID != uuid.Nil {
		query = query.Where("owner_id = ?", ownerID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR company ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	var rows []models.CustomerModel
	err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*crm.Customer, len(rows))
	for i := range rows {
		customers[i] = rows[i].ToDomain()
	}
	return shared.NewPaginated(customers, total, filter.Page, filter.PageSize), nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CustomerModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
