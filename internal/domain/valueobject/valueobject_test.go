package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignerRole(t *testing.T) {
	role, ok := ParseSignerRole("client")
	assert.True(t, ok)
	assert.Equal(t, SignerRoleClient, role)

	role, ok = ParseSignerRole("creative")
	assert.True(t, ok)
	assert.Equal(t, SignerRoleCreative, role)

	for _, raw := range []string{"", "CLIENT", "admin", " creative"} {
		_, ok := ParseSignerRole(raw)
		assert.False(t, ok, raw)
	}
}

func TestContractStateOf(t *testing.T) {
	assert.Equal(t, ContractStateCreated, ContractStateOf(false, false))
	assert.Equal(t, ContractStateClientSigned, ContractStateOf(true, false))
	assert.Equal(t, ContractStateCreativeSigned, ContractStateOf(false, true))
	assert.Equal(t, ContractStateFullySigned, ContractStateOf(true, true))
}

func TestBookingStatus(t *testing.T) {
	s, err := NewBookingStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusAccepted, s)

	_, err = NewBookingStatus("archived")
	assert.Error(t, err)
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderStatusShipped.IsValid())
	_, err := NewOrderStatus("lost")
	assert.Error(t, err)
}

func TestNewUserRole(t *testing.T) {
	role, err := NewUserRole("")
	require.NoError(t, err)
	assert.Equal(t, UserRoleClient, role)

	role, err = NewUserRole("creative")
	require.NoError(t, err)
	assert.Equal(t, UserRoleCreative, role)

	_, err = NewUserRole("admin")
	assert.Error(t, err)
}
