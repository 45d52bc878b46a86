package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtdang/polygonzkevm/types"
)

type fakeConnection struct {
	network       types.Network
	confirmations uint64
}

func (c fakeConnection) NetworkName() types.Network    { return c.network }
func (c fakeConnection) RequiredConfirmations() uint64 { return c.confirmations }

func TestStaticRegistry(t *testing.T) {
	conn := fakeConnection{network: types.NetworkGoerli, confirmations: 3}
	registry := StaticRegistry{Conn: conn}

	active := registry.ActiveConnection()
	assert.Equal(t, types.NetworkGoerli, active.NetworkName())
	assert.Equal(t, uint64(3), active.RequiredConfirmations())
}

func TestStaticRegistryEmpty(t *testing.T) {
	registry := StaticRegistry{}
	assert.Nil(t, registry.ActiveConnection())
}
