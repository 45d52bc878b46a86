package utils

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dtdang/polygonzkevm/types"
)

// SerializeSignature renders an assembled signature in the canonical
// 65-byte r||s||v wire form. R and S are left-padded to 32 bytes.
func SerializeSignature(sig *types.Signature) ([]byte, error) {
	if sig == nil {
		return nil, fmt.Errorf("signature is nil")
	}
	if len(sig.R) > 32 || len(sig.S) > 32 {
		return nil, fmt.Errorf("signature parts must be at most 32 bytes, got r=%d s=%d", len(sig.R), len(sig.S))
	}

	out := make([]byte, 65)
	copy(out[32-len(sig.R):32], sig.R)
	copy(out[64-len(sig.S):64], sig.S)
	out[64] = byte(sig.V)
	return out, nil
}

// RecoverSigner recovers the address that produced the signature over
// the given 32-byte hash.
func RecoverSigner(hash []byte, sig *types.Signature) (common.Address, error) {
	raw, err := SerializeSignature(sig)
	if err != nil {
		return common.Address{}, err
	}

	// Normalize the legacy 27/28 recovery id.
	if raw[64] >= 27 {
		raw[64] -= 27
	}

	pubKey, err := crypto.SigToPub(hash, raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}
