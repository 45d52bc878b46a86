package utils

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtdang/polygonzkevm/types"
)

func TestSerializeSignature(t *testing.T) {
	sig := &types.Signature{V: 27, R: []byte{0x01}, S: []byte{0x02}}

	raw, err := SerializeSignature(sig)
	require.NoError(t, err)
	require.Len(t, raw, 65)

	// Short parts are left-padded to 32 bytes.
	assert.Equal(t, byte(0x01), raw[31])
	assert.Equal(t, byte(0x02), raw[63])
	assert.Equal(t, byte(27), raw[64])
}

func TestSerializeSignatureRejectsOversized(t *testing.T) {
	_, err := SerializeSignature(&types.Signature{V: 27, R: make([]byte, 33), S: make([]byte, 32)})
	require.Error(t, err)

	_, err = SerializeSignature(nil)
	require.Error(t, err)
}

func TestRecoverSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	hash := crypto.Keccak256([]byte("zkevm transaction payload"))
	raw, err := crypto.Sign(hash, key)
	require.NoError(t, err)

	sig := &types.Signature{
		V: int(raw[64]) + 27,
		R: raw[:32],
		S: raw[32:64],
	}

	signer, err := RecoverSigner(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signer)
}
