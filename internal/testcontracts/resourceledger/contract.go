package resourceledger

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// Minimal storage-byte ledger. Balances are plain integers keyed by
// account hash; a custodian contract registered for an account may move
// its bytes without a witness, which is how the custodial pool of the
// wstor contract is operated.

const (
	balancePrefix   = "b"
	custodianPrefix = "c"
)

func Mint(to interop.Hash160, amount int) {
	if amount <= 0 {
		panic("wrong amount")
	}
	ctx := storage.GetContext()
	addBalance(ctx, to, amount)
}

func BalanceOf(owner interop.Hash160) int {
	return getBalance(storage.GetReadOnlyContext(), owner)
}

// RegisterCustodian allows the custodian contract to transfer bytes
// owned by the account.
func RegisterCustodian(owner, custodian interop.Hash160) {
	ctx := storage.GetContext()
	storage.Put(ctx, custodianPrefix+string(owner), custodian)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if amount <= 0 {
		panic("wrong amount")
	}

	ctx := storage.GetContext()
	if !canMove(ctx, from) {
		return false
	}

	balance := getBalance(ctx, from)
	if balance < amount {
		return false
	}

	storage.Put(ctx, balancePrefix+string(from), balance-amount)
	addBalance(ctx, to, amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onResourcePayment", contract.All, from, amount, data)
	}

	return true
}

func canMove(ctx storage.Context, from interop.Hash160) bool {
	if runtime.CheckWitness(from) {
		return true
	}

	caller := runtime.GetCallingScriptHash()
	if util.Equals(string(caller), string(from)) {
		return true
	}

	custodian := storage.Get(ctx, custodianPrefix+string(from))
	return custodian != nil && util.Equals(string(caller), string(custodian.(interop.Hash160)))
}

func getBalance(ctx storage.Context, owner interop.Hash160) int {
	data := storage.Get(ctx, balancePrefix+string(owner))
	if data == nil {
		return 0
	}
	return data.(int)
}

func addBalance(ctx storage.Context, owner interop.Hash160, amount int) {
	storage.Put(ctx, balancePrefix+string(owner), getBalance(ctx, owner)+amount)
}
