package crm

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/domain/shared"
)

func TestNewCustomer(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates customer with owner", func(t *testing.T) {
		customer, err := NewCustomer(ownerID, "Acme Corp", "sales@acme.test", "555-0100", "Acme")
		require.NoError(t, err)

		assert.Equal(t, "Acme Corp", customer.Name)
		assert.Equal(t, "sales@acme.test", customer.Email)
		assert.Equal(t, "555-0100", customer.Phone)
		assert.Equal(t, "Acme", customer.Company)
		assert.Equal(t, ownerID, customer.OwnerID)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Len(t, customer.DomainEvents(), 1)
		assert.Equal(t, EventCustomerCreated, customer.DomainEvents()[0].EventType())
	})

	t.Run("contact fields are optional", func(t *testing.T) {
		customer, err := NewCustomer(ownerID, "Acme Corp", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, customer.Email)
		assert.Empty(t, customer.Phone)
		assert.Empty(t, customer.Company)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewCustomer(ownerID, "   ", "", "", "")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewCustomer(uuid.Nil, "Acme Corp", "", "", "")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestCustomerUpdate(t *testing.T) {
	ownerID := uuid.New()

	newCustomer := func(t *testing.T) *Customer {
		customer, err := NewCustomer(ownerID, "Acme Corp", "sales@acme.test", "555-0100", "Acme")
		require.NoError(t, err)
		customer.ClearDomainEvents()
		return customer
	}

	t.Run("set fields overwrite, nil fields are kept", func(t *testing.T) {
		customer := newCustomer(t)
		name := "Acme Incorporated"
		empty := ""

		err := customer.Update(CustomerUpdate{Name: &name, Phone: &empty})
		require.NoError(t, err)

		assert.Equal(t, "Acme Incorporated", customer.Name)
		assert.Equal(t, "sales@acme.test", customer.Email)
		assert.Empty(t, customer.Phone)
		assert.Equal(t, "Acme", customer.Company)
	})

	t.Run("owner survives update", func(t *testing.T) {
		customer := newCustomer(t)
		name := "Renamed"
		require.NoError(t, customer.Update(CustomerUpdate{Name: &name}))
		assert.Equal(t, ownerID, customer.OwnerID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		customer := newCustomer(t)
		blank := "  "
		err := customer.Update(CustomerUpdate{Name: &blank})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, "Acme Corp", customer.Name)
	})

	t.Run("bumps version", func(t *testing.T) {
		customer := newCustomer(t)
		before := customer.Version
		name := "Renamed"
		require.NoError(t, customer.Update(CustomerUpdate{Name: &name}))
		assert.Equal(t, before+1, customer.Version)
	})
}

func TestCustomerMarkDeleted(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "Acme Corp", "", "", "")
	require.NoError(t, err)
	customer.ClearDomainEvents()

	customer.MarkDeleted(3)

	require.Len(t, customer.DomainEvents(), 1)
	event, ok := customer.DomainEvents()[0].(CustomerDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, EventCustomerDeleted, event.EventType())
	assert.Equal(t, customer.OwnerID, event.OwnerID)
	assert.Equal(t, int64(3), event.LeadsDeleted)
}
