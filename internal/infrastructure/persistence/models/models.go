// Package models contains the gorm row types and their mapping to the
// domain aggregates.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

// UserModel is the users table row.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int `gorm:"not null;default:1"`
}

// TableName sets the table name.
func (UserModel) TableName() string { return "users" }

// ToDomain converts the row to a user aggregate.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: baseAggregate(m.ID, m.CreatedAt, m.UpdatedAt, m.Version),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              identity.Role(m.Role),
	}
}

// UserModelFromDomain converts a user aggregate to a row.
func UserModelFromDomain(user *identity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Version:      user.Version,
	}
}

// CustomerModel is the customers table row.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;index"`
	Email     string
	Phone     string
	Company   string
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`
}

// TableName sets the table name.
func (CustomerModel) TableName() string { return "customers" }

// ToDomain converts the row to a customer aggregate.
func (m *CustomerModel) ToDomain() *crm.Customer {
	return &crm.Customer{
		OwnedAggregateRoot: shared.OwnedAggregateRoot{
			BaseAggregateRoot: baseAggregate(m.ID, m.CreatedAt, m.UpdatedAt, m.Version),
			OwnerID:           m.OwnerID,
		},
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Company: m.Company,
	}
}

// CustomerModelFromDomain converts a customer aggregate to a row.
func CustomerModelFromDomain(customer *crm.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Company:   customer.Company,
		OwnerID:   customer.OwnerID,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
		Version:   customer.Version,
	}
}

// LeadModel is the leads table row.
type LeadModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string          `gorm:"not null;default:New;index"`
	Value       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int `gorm:"not null;default:1"`
}

// TableName sets the table name.
func (LeadModel) TableName() string { return "leads" }

// ToDomain converts the row to a lead aggregate.
func (m *LeadModel) ToDomain() *crm.Lead {
	return &crm.Lead{
		BaseAggregateRoot: baseAggregate(m.ID, m.CreatedAt, m.UpdatedAt, m.Version),
		CustomerID:        m.CustomerID,
		Title:             m.Title,
		Description:       m.Description,
		Status:            crm.LeadStatus(m.Status),
		Value:             m.Value,
	}
}

// LeadModelFromDomain converts a lead aggregate to a row.
func LeadModelFromDomain(lead *crm.Lead) *LeadModel {
	return &LeadModel{
		ID:          lead.ID,
		CustomerID:  lead.CustomerID,
		Title:       lead.Title,
		Description: lead.Description,
		Status:      string(lead.Status),
		Value:       lead.Value,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
		Version:     lead.Version,
	}
}

func baseAggregate(id uuid.UUID, createdAt, updatedAt time.Time, version int) shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			Version:   version,
		},
	}
}
