package types

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TransactionType is an EIP-2718 transaction envelope tag in "0xNN"
// form.
type TransactionType string

const (
	// TypeStatic is the legacy fixed-gas-price envelope, the only type
	// the zkEVM sequencer accepts today.
	TypeStatic TransactionType = "0x00"
)

// Int returns the envelope tag's integer value. Only meaningful for
// tags that passed TransactionClassFor.
func (t TransactionType) Int() int {
	v, _ := strconv.ParseInt(strings.TrimPrefix(string(t), "0x"), 16, 64)
	return int(v)
}

// ResolveTransactionType normalizes a loosely-typed envelope tag into
// "0xNN" form. Nil and zero-valued inputs resolve to TypeStatic.
// Integers are rendered as one zero-padded hex byte, byte slices as
// their hex expansion, and one-digit string suffixes are left-padded
// with a zero. The result is not checked against the known tags;
// TransactionClassFor owns that decision.
func ResolveTransactionType(raw interface{}) TransactionType {
	var s string
	switch v := raw.(type) {
	case nil:
		return TypeStatic
	case TransactionType:
		if v == "" {
			return TypeStatic
		}
		s = string(v)
	case int:
		if v == 0 {
			return TypeStatic
		}
		s = fmt.Sprintf("%02x", v)
	case int64:
		if v == 0 {
			return TypeStatic
		}
		s = fmt.Sprintf("%02x", v)
	case uint64:
		if v == 0 {
			return TypeStatic
		}
		s = fmt.Sprintf("%02x", v)
	case []byte:
		if len(v) == 0 {
			return TypeStatic
		}
		s = hex.EncodeToString(v)
	case string:
		if v == "" {
			return TypeStatic
		}
		s = v
	default:
		s = fmt.Sprintf("%v", v)
	}

	suffix := strings.TrimPrefix(s, "0x")
	if len(suffix) == 1 {
		suffix = "0" + suffix
	}
	return TransactionType("0x" + suffix)
}

// Transaction is implemented by every concrete transaction value the
// ecosystem can construct.
type Transaction interface {
	TransactionType() TransactionType
	ToGethTransaction() *gethtypes.Transaction
}

// TransactionClass builds a concrete transaction value from normalized
// parameters.
type TransactionClass func(*TxParams) (Transaction, error)

// TransactionClassFor maps an envelope tag to its construction class.
// Tags without a registered class fail with an
// unsupported_transaction_type error carrying the offending tag.
func TransactionClassFor(tag TransactionType) (TransactionClass, error) {
	switch tag {
	case TypeStatic:
		return func(params *TxParams) (Transaction, error) {
			return NewStaticFeeTransaction(params)
		}, nil
	default:
		return nil, &EcosystemError{
			Code:    ErrUnsupportedTxType,
			Message: fmt.Sprintf("transaction type %q not supported", string(tag)),
			Data:    string(tag),
		}
	}
}

// Signature is an assembled secp256k1 transaction signature.
type Signature struct {
	V int    `json:"v"`
	R []byte `json:"r" validate:"required,max=32"`
	S []byte `json:"s" validate:"required,max=32"`
}

// TxParams carries the loose transaction-construction inputs accepted
// by CreateTransaction. Pointer and interface fields distinguish
// "absent" from zero values; the normalizer resolves every field to its
// canonical form before a concrete transaction is built.
type TxParams struct {
	// Type is the envelope tag: nil, an integer, a byte slice, or a
	// string with or without the "0x" prefix. The normalizer overwrites
	// it with the resolved tag's integer value.
	Type interface{} `json:"type,omitempty"`

	// ChainID is either a uint64 or a base-16 string.
	ChainID interface{} `json:"chainId,omitempty"`

	Nonce    *uint64         `json:"nonce,omitempty"`
	GasPrice *big.Int        `json:"gasPrice,omitempty"`
	GasLimit *uint64         `json:"gas,omitempty"`
	To       *common.Address `json:"to,omitempty"`
	Value    *big.Int        `json:"value,omitempty"`
	Data     []byte          `json:"data,omitempty"`

	// Hash is a legacy alias for Data; normalization moves it across.
	Hash []byte `json:"hash,omitempty"`

	RequiredConfirmations *uint64 `json:"requiredConfirmations,omitempty"`

	// Raw signature parts. When all three are present the normalizer
	// assembles them into Signature; they stay populated afterwards but
	// construction reads Signature preferentially.
	V *int   `json:"v,omitempty"`
	R []byte `json:"r,omitempty"`
	S []byte `json:"s,omitempty"`

	Signature *Signature `json:"signature,omitempty"`
}

// StaticFeeTransaction is a fixed-gas-price transaction, the concrete
// value produced for the TypeStatic envelope.
type StaticFeeTransaction struct {
	Type                  int             `json:"type" validate:"eq=0"`
	ChainID               uint64          `json:"chainId"`
	Nonce                 uint64          `json:"nonce"`
	GasPrice              *big.Int        `json:"gasPrice,omitempty"`
	GasLimit              uint64          `json:"gas"`
	To                    *common.Address `json:"to,omitempty"`
	Value                 *big.Int        `json:"value,omitempty"`
	Data                  hexutil.Bytes   `json:"data,omitempty"`
	RequiredConfirmations uint64          `json:"requiredConfirmations"`
	Signature             *Signature      `json:"signature,omitempty"`
}

// NewStaticFeeTransaction builds the transaction value from normalized
// parameters. Fields the static-fee schema does not recognize and
// malformed signature parts surface here as invalid_schema errors.
func NewStaticFeeTransaction(params *TxParams) (*StaticFeeTransaction, error) {
	if params == nil {
		params = &TxParams{}
	}

	if len(params.Hash) > 0 {
		return nil, &EcosystemError{
			Code:    ErrInvalidSchema,
			Message: `field "hash" is not part of the static-fee transaction schema`,
		}
	}

	tx := &StaticFeeTransaction{
		GasPrice:  params.GasPrice,
		Value:     params.Value,
		To:        params.To,
		Data:      hexutil.Bytes(params.Data),
		Signature: params.Signature,
	}

	switch tp := params.Type.(type) {
	case nil:
	case int:
		tx.Type = tp
	default:
		return nil, &EcosystemError{
			Code:    ErrInvalidSchema,
			Message: fmt.Sprintf("unexpected type field %T, want int", params.Type),
		}
	}

	switch id := params.ChainID.(type) {
	case nil:
	case uint64:
		tx.ChainID = id
	case int:
		tx.ChainID = uint64(id)
	default:
		return nil, &EcosystemError{
			Code:    ErrInvalidSchema,
			Message: fmt.Sprintf("unexpected chainId field %T, want uint64", params.ChainID),
		}
	}

	if params.Nonce != nil {
		tx.Nonce = *params.Nonce
	}
	if params.GasLimit != nil {
		tx.GasLimit = *params.GasLimit
	}
	if params.RequiredConfirmations != nil {
		tx.RequiredConfirmations = *params.RequiredConfirmations
	}

	if err := validate.Struct(tx); err != nil {
		return nil, &EcosystemError{
			Code:    ErrInvalidSchema,
			Message: fmt.Sprintf("static-fee transaction validation failed: %v", err),
		}
	}

	return tx, nil
}

// TransactionType implements Transaction.
func (tx *StaticFeeTransaction) TransactionType() TransactionType {
	return TypeStatic
}

// ToGethTransaction converts the value into a go-ethereum legacy
// transaction for downstream signing and submission.
func (tx *StaticFeeTransaction) ToGethTransaction() *gethtypes.Transaction {
	legacy := &gethtypes.LegacyTx{
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		Gas:      tx.GasLimit,
		To:       tx.To,
		Value:    tx.Value,
		Data:     tx.Data,
	}
	if tx.Signature != nil {
		legacy.V = big.NewInt(int64(tx.Signature.V))
		legacy.R = new(big.Int).SetBytes(tx.Signature.R)
		legacy.S = new(big.Int).SetBytes(tx.Signature.S)
	}
	return gethtypes.NewTx(legacy)
}
