package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtdang/polygonzkevm/types"
)

func TestParseChainID(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want uint64
	}{
		{"nil", nil, 0},
		{"uint64", uint64(1101), 1101},
		{"int", 1442, 1442},
		{"prefixed hex string", "0x45", 69},
		{"bare hex string", "45", 69},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseChainID(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseChainIDMalformed(t *testing.T) {
	_, err := ParseChainID("0xzz")
	require.Error(t, err)

	var ecoErr *types.EcosystemError
	require.ErrorAs(t, err, &ecoErr)
	assert.Equal(t, types.ErrInvalidChainID, ecoErr.Code)
	assert.Equal(t, "0xzz", ecoErr.Data)
}

func TestParseEther(t *testing.T) {
	wei, err := ParseEther("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	wei, err = ParseEther("0.000000001")
	require.NoError(t, err)
	assert.Equal(t, "1000000000", wei.String())
}

func TestParseEtherInvalid(t *testing.T) {
	_, err := ParseEther("")
	require.Error(t, err)

	_, err = ParseEther("abc")
	require.Error(t, err)

	_, err = ParseEther("-1")
	require.Error(t, err)
}

func TestFormatWei(t *testing.T) {
	assert.Equal(t, "1.5", FormatWei(big.NewInt(15e17)))
	assert.Equal(t, "0", FormatWei(nil))
}
