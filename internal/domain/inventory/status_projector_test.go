package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

func TestStatusOnAssign(t *testing.T) {
	next, err := StatusOnAssign(entity.ItemStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAssigned, next)

	_, err = StatusOnAssign(entity.ItemStatusAssigned)
	assert.ErrorIs(t, err, domain.ErrItemAlreadyAssigned)
	assert.ErrorIs(t, err, domain.ErrConflict)

	for _, s := range []string{entity.ItemStatusMaintenance, entity.ItemStatusRetired} {
		_, err = StatusOnAssign(s)
		assert.ErrorIs(t, err, domain.ErrItemUnavailable, s)
		assert.ErrorIs(t, err, domain.ErrConflict, s)
	}

	_, err = StatusOnAssign("perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatusOnReturn_NoResucitaMantenimiento(t *testing.T) {
	assert.Equal(t, entity.ItemStatusAvailable, StatusOnReturn(entity.ItemStatusAssigned))
	assert.Equal(t, entity.ItemStatusMaintenance, StatusOnReturn(entity.ItemStatusMaintenance))
	assert.Equal(t, entity.ItemStatusRetired, StatusOnReturn(entity.ItemStatusRetired))
}

func TestValidateManualStatus(t *testing.T) {
	cases := []struct {
		name    string
		next    string
		hasOpen bool
		wantErr bool
	}{
		{"disponible sin asignación", entity.ItemStatusAvailable, false, false},
		{"disponible con asignación abierta", entity.ItemStatusAvailable, true, true},
		{"assigned sin asignación", entity.ItemStatusAssigned, false, true},
		{"assigned con asignación abierta", entity.ItemStatusAssigned, true, false},
		{"mantenimiento mientras está prestado", entity.ItemStatusMaintenance, true, false},
		{"retirado sin asignación", entity.ItemStatusRetired, false, false},
		{"estado desconocido", "vendido", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateManualStatus(tc.next, tc.hasOpen)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConsistent(t *testing.T) {
	assert.True(t, Consistent(entity.ItemStatusAssigned, true))
	assert.True(t, Consistent(entity.ItemStatusAvailable, false))
	assert.True(t, Consistent(entity.ItemStatusMaintenance, true))
	assert.False(t, Consistent(entity.ItemStatusAvailable, true))
	assert.False(t, Consistent(entity.ItemStatusAssigned, false))
}
