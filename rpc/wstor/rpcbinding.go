// Package wstor contains RPC wrappers for Wrapped Storage contract.
package wstor

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// WstorConfig is a contract-specific wstor.Config type used by its methods.
type WstorConfig struct {
	DepositDisabled bool
	WithdrawDisabled bool
	DepositFeeRatio *big.Int
	WithdrawFeeRatio *big.Int
}

// TransferXEvent represents "TransferX" event emitted by the contract.
type TransferXEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	FromBalance *big.Int
	ToBalance *big.Int
	Details []byte
}

// DepositResourceEvent represents "DepositResource" event emitted by the contract.
type DepositResourceEvent struct {
	Owner util.Uint160
	Amount *big.Int
	Fee *big.Int
	Net *big.Int
}

// DepositCurrencyEvent represents "DepositCurrency" event emitted by the contract.
type DepositCurrencyEvent struct {
	Owner util.Uint160
	Amount *big.Int
	Fee *big.Int
	Output *big.Int
}

// WithdrawResourceEvent represents "WithdrawResource" event emitted by the contract.
type WithdrawResourceEvent struct {
	Owner util.Uint160
	Amount *big.Int
	Fee *big.Int
	Net *big.Int
}

// WithdrawCurrencyEvent represents "WithdrawCurrency" event emitted by the contract.
type WithdrawCurrencyEvent struct {
	Owner util.Uint160
	Amount *big.Int
	Fee *big.Int
	Net *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// GetConfig invokes `getConfig` method of contract.
func (c *ContractReader) GetConfig() (*WstorConfig, error) {
	return itemToWstorConfig(unwrap.Item(c.invoker.Call(c.hash, "getConfig")))
}

// MaxSupply invokes `maxSupply` method of contract.
func (c *ContractReader) MaxSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxSupply"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateToken creates a transaction invoking `createToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateToken(issuer util.Uint160, maxSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createToken", issuer, maxSupply)
}

// CreateTokenTransaction creates a transaction invoking `createToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTokenTransaction(issuer util.Uint160, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createToken", issuer, maxSupply)
}

// CreateTokenUnsigned creates a transaction invoking `createToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateTokenUnsigned(issuer util.Uint160, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createToken", nil, issuer, maxSupply)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// OnResourcePayment creates a transaction invoking `onResourcePayment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnResourcePayment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onResourcePayment", from, amount, data)
}

// OnResourcePaymentTransaction creates a transaction invoking `onResourcePayment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnResourcePaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onResourcePayment", from, amount, data)
}

// OnResourcePaymentUnsigned creates a transaction invoking `onResourcePayment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnResourcePaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onResourcePayment", nil, from, amount, data)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateRatio creates a transaction invoking `updateRatio` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateRatio(depositFeeRatio *big.Int, withdrawFeeRatio *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateRatio", depositFeeRatio, withdrawFeeRatio)
}

// UpdateRatioTransaction creates a transaction invoking `updateRatio` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateRatioTransaction(depositFeeRatio *big.Int, withdrawFeeRatio *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateRatio", depositFeeRatio, withdrawFeeRatio)
}

// UpdateRatioUnsigned creates a transaction invoking `updateRatio` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateRatioUnsigned(depositFeeRatio *big.Int, withdrawFeeRatio *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateRatio", nil, depositFeeRatio, withdrawFeeRatio)
}

// UpdateStatus creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateStatus(depositDisabled bool, withdrawDisabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateStatus", depositDisabled, withdrawDisabled)
}

// UpdateStatusTransaction creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStatusTransaction(depositDisabled bool, withdrawDisabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateStatus", depositDisabled, withdrawDisabled)
}

// UpdateStatusUnsigned creates a transaction invoking `updateStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStatusUnsigned(depositDisabled bool, withdrawDisabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateStatus", nil, depositDisabled, withdrawDisabled)
}

// itemToWstorConfig converts stack item into *WstorConfig.
func itemToWstorConfig(item stackitem.Item, err error) (*WstorConfig, error) {
	if err != nil {
		return nil, err
	}
	var res = new(WstorConfig)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of WstorConfig from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *WstorConfig) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.DepositDisabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field DepositDisabled: %w", err)
	}

	index++
	res.WithdrawDisabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field WithdrawDisabled: %w", err)
	}

	index++
	res.DepositFeeRatio, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DepositFeeRatio: %w", err)
	}

	index++
	res.WithdrawFeeRatio, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WithdrawFeeRatio: %w", err)
	}

	return nil
}

// TransferXEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferX" name from the provided [result.ApplicationLog].
func TransferXEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferXEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferXEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferX" {
				continue
			}
			event := new(TransferXEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferXEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferXEvent or
// returns an error if it's not possible to do to so.
func (e *TransferXEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.FromBalance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FromBalance: %w", err)
	}

	index++
	e.ToBalance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ToBalance: %w", err)
	}

	index++
	e.Details, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	return nil
}

// DepositResourceEventsFromApplicationLog retrieves a set of all emitted events
// with "DepositResource" name from the provided [result.ApplicationLog].
func DepositResourceEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositResourceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositResourceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DepositResource" {
				continue
			}
			event := new(DepositResourceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositResourceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositResourceEvent or
// returns an error if it's not possible to do to so.
func (e *DepositResourceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.Net, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Net: %w", err)
	}

	return nil
}

// DepositCurrencyEventsFromApplicationLog retrieves a set of all emitted events
// with "DepositCurrency" name from the provided [result.ApplicationLog].
func DepositCurrencyEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositCurrencyEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositCurrencyEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DepositCurrency" {
				continue
			}
			event := new(DepositCurrencyEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositCurrencyEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositCurrencyEvent or
// returns an error if it's not possible to do to so.
func (e *DepositCurrencyEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.Output, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Output: %w", err)
	}

	return nil
}

// WithdrawResourceEventsFromApplicationLog retrieves a set of all emitted events
// with "WithdrawResource" name from the provided [result.ApplicationLog].
func WithdrawResourceEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawResourceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawResourceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WithdrawResource" {
				continue
			}
			event := new(WithdrawResourceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawResourceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawResourceEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawResourceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.Net, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Net: %w", err)
	}

	return nil
}

// WithdrawCurrencyEventsFromApplicationLog retrieves a set of all emitted events
// with "WithdrawCurrency" name from the provided [result.ApplicationLog].
func WithdrawCurrencyEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawCurrencyEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawCurrencyEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WithdrawCurrency" {
				continue
			}
			event := new(WithdrawCurrencyEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawCurrencyEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawCurrencyEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawCurrencyEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.Net, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Net: %w", err)
	}

	return nil
}
