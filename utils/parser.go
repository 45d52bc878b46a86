// Package utils provides parsing and signature helpers shared by the
// plugin and its consumers.
package utils

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dtdang/polygonzkevm/types"
)

// weiDecimals is the native-token precision on Polygon zkEVM.
const weiDecimals = 18

// ParseChainID interprets a chain id supplied either as a native
// integer or as a base-16 string, with or without the "0x" prefix.
func ParseChainID(raw interface{}) (uint64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case uint64:
		return v, nil
	case int:
		return uint64(v), nil
	case string:
		id, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
		if err != nil {
			return 0, &types.EcosystemError{
				Code:    types.ErrInvalidChainID,
				Message: fmt.Sprintf("invalid base-16 chain id %q: %v", v, err),
				Data:    v,
			}
		}
		return id, nil
	default:
		return 0, &types.EcosystemError{
			Code:    types.ErrInvalidChainID,
			Message: fmt.Sprintf("unexpected chain id type %T", raw),
		}
	}
}

// ParseEther converts a decimal ether-denominated amount string into
// wei.
func ParseEther(amount string) (*big.Int, error) {
	if amount == "" {
		return nil, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}
	if dec.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	return dec.Shift(weiDecimals).BigInt(), nil
}

// FormatWei renders a wei amount as a decimal ether string.
func FormatWei(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -weiDecimals).String()
}
