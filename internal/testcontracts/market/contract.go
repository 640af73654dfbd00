package market

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// Minimal bonding-curve market. The base reserve counts storage bytes,
// the quote reserve counts GAS. Output of a trade is
// in * outReserve / (inReserve + in), truncated, computed against the
// reserves as they were before the trade; 0.5% of a payment (rounded up)
// is kept by the market before the buy conversion and after the sell one.

const (
	baseReserveKey    = "baseReserve"
	quoteReserveKey   = "quoteReserve"
	resourceLedgerKey = "resourceLedger"
	resourceSymbol    = "STOR"
	currencySymbol    = "GAS"
)

func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		resourceLedger interop.Hash160
		baseReserve    int
		quoteReserve   int
	})

	ctx := storage.GetContext()
	storage.Put(ctx, resourceLedgerKey, args.resourceLedger)
	storage.Put(ctx, baseReserveKey, args.baseReserve)
	storage.Put(ctx, quoteReserveKey, args.quoteReserve)
}

func BaseReserve() int {
	return storage.Get(storage.GetReadOnlyContext(), baseReserveKey).(int)
}

func QuoteReserve() int {
	return storage.Get(storage.GetReadOnlyContext(), quoteReserveKey).(int)
}

// Convert returns the output amount the current curve state gives for the
// input amount, fees not included.
func Convert(amount int, toSymbol string) int {
	ctx := storage.GetReadOnlyContext()
	base := storage.Get(ctx, baseReserveKey).(int)
	quote := storage.Get(ctx, quoteReserveKey).(int)

	var out int
	switch toSymbol {
	case resourceSymbol:
		out = amount * base / (quote + amount)
	case currencySymbol:
		out = amount * quote / (base + amount)
	default:
		panic("unknown symbol")
	}

	if out < 0 {
		out = 0
	}
	return out
}

// OnNEP17Payment handles GAS payments. A payment without data is a
// reserve top-up; a payment carrying an account hash is a buy order and
// the purchased storage bytes are delivered to that account.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !util.Equals(string(caller), string(interop.Hash160(gas.Hash))) {
		panic("only GAS is accepted")
	}
	if data == nil {
		return
	}

	deliverTo := data.(interop.Hash160)

	fee := (amount + 199) / 200
	in := amount - fee
	out := Convert(in, resourceSymbol)

	ctx := storage.GetContext()
	storage.Put(ctx, quoteReserveKey, storage.Get(ctx, quoteReserveKey).(int)+in)
	storage.Put(ctx, baseReserveKey, storage.Get(ctx, baseReserveKey).(int)-out)

	if out > 0 {
		self := runtime.GetExecutingScriptHash()
		ledger := storage.Get(ctx, resourceLedgerKey).(interop.Hash160)
		if !contract.Call(ledger, "transfer", contract.All, self, deliverTo, out, nil).(bool) {
			panic("can't deliver storage bytes")
		}
	}
}

// OnResourcePayment handles storage-byte payments from the resource
// ledger. A payment without data is a reserve top-up; a payment carrying
// an account hash is a sell order and the GAS proceeds minus the market
// fee are paid to that account.
func OnResourcePayment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	ledger := storage.Get(ctx, resourceLedgerKey).(interop.Hash160)
	if !util.Equals(string(caller), string(ledger)) {
		panic("only the resource ledger is accepted")
	}
	if data == nil {
		return
	}

	payTo := data.(interop.Hash160)

	out := Convert(amount, currencySymbol)
	fee := (out + 199) / 200
	net := out - fee

	storage.Put(ctx, baseReserveKey, storage.Get(ctx, baseReserveKey).(int)+amount)
	storage.Put(ctx, quoteReserveKey, storage.Get(ctx, quoteReserveKey).(int)-out)

	if net > 0 {
		self := runtime.GetExecutingScriptHash()
		if !gas.Transfer(self, payTo, net, nil) {
			panic("can't pay out")
		}
	}
}
