package wstor

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/stordefi/wstor-contract/common"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
	}

	// Account structure stores wrapped-storage balance of a single owner.
	Account struct {
		// Active balance
		Balance int
	}

	// TokenStat is the supply record of the wrapped-storage token.
	TokenStat struct {
		// Circulating supply
		Supply int
		// Issuance cap
		MaxSupply int
		// Issuing account, always the contract itself
		Issuer interop.Hash160
	}

	// Config stores fee ratios and availability flags of the engine.
	// Fee ratios are expressed in 1/10000 units.
	Config struct {
		DepositDisabled  bool
		WithdrawDisabled bool
		DepositFeeRatio  int
		WithdrawFeeRatio int
	}
)

const (
	symbol   = "WSTOR"
	decimals = 0

	// resourceSymbol and currencySymbol are conversion targets understood
	// by the market contract.
	resourceSymbol = "STOR"
	currencySymbol = "GAS"

	ratioDenominator = 10000
	maxFeeRatio      = 5000
	defaultFeeRatio  = 50

	maxMemoLength = 256

	// Withdraw request tags carried in the data argument of transfers
	// addressed to the contract itself.
	WithdrawRequestResource = 1
	WithdrawRequestCurrency = 2

	statKey   = "stat" + symbol
	configKey = "config"

	adminKey            = "adminAddress"
	feeAccountKey       = "feeAccountAddress"
	custodyPoolKey      = "custodyPoolAddress"
	resourceContractKey = "resourceScriptHash"
	marketContractKey   = "marketScriptHash"
)

var token Token

func createToken() Token {
	return Token{
		Symbol:   symbol,
		Decimals: decimals,
	}
}

func init() {
	token = createToken()
}

func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin          interop.Hash160
		feeAccount     interop.Hash160
		custodyPool    interop.Hash160
		resourceLedger interop.Hash160
		market         interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len ||
		len(args.feeAccount) != interop.Hash160Len ||
		len(args.custodyPool) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if len(args.resourceLedger) != interop.Hash160Len ||
		len(args.market) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, feeAccountKey, args.feeAccount)
	storage.Put(ctx, custodyPoolKey, args.custodyPool)
	storage.Put(ctx, resourceContractKey, args.resourceLedger)
	storage.Put(ctx, marketContractKey, args.market)

	runtime.Log("wstor contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("wstor contract updated")
}

// Symbol is a NEP-17 standard method that returns the wrapped-storage
// token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of the
// wrapped-storage token. One token always wraps exactly one storage byte.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of
// wrapped-storage tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getTokenStat(ctx).Supply
}

// MaxSupply returns the issuance cap set at token creation.
func MaxSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getTokenStat(ctx).MaxSupply
}

// BalanceOf is a NEP-17 window method that returns the wrapped-storage token
// balance of the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// GetConfig returns the current fee and availability configuration.
// If it was never set, defaults are returned.
func GetConfig() Config {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx)
}

// CreateToken creates the wrapped-storage token supply record. Can be
// invoked only by committee and only once; issuer must be the contract
// itself so that all issuance goes through the single internal path.
func CreateToken(issuer interop.Hash160, maxSupply int) {
	ctx := storage.GetContext()

	if !common.HasUpdateAccess() {
		panic("only committee can create the token")
	}
	if !common.BytesEqual(issuer, runtime.GetExecutingScriptHash()) {
		panic("issuer must be the wstor contract")
	}
	if maxSupply <= 0 {
		panic("max supply must be positive")
	}
	if storage.Get(ctx, statKey) != nil {
		panic("token already exists")
	}

	common.SetSerialized(ctx, statKey, TokenStat{
		Supply:    0,
		MaxSupply: maxSupply,
		Issuer:    issuer,
	})

	runtime.Log("wstor token created")
}

// UpdateStatus suspends or resumes deposits and withdrawals. Can be
// invoked only by the administrative account.
func UpdateStatus(depositDisabled, withdrawDisabled bool) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(adminAddress(ctx))

	cfg := getConfig(ctx)
	cfg.DepositDisabled = depositDisabled
	cfg.WithdrawDisabled = withdrawDisabled
	common.SetSerialized(ctx, configKey, cfg)

	runtime.Log("deposit and withdraw availability updated")
}

// UpdateRatio sets deposit and withdraw fee ratios in 1/10000 units. Can
// be invoked only by the administrative account. Either ratio is limited
// by 5000, so the maximum fee is 50%.
func UpdateRatio(depositFeeRatio, withdrawFeeRatio int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(adminAddress(ctx))

	if depositFeeRatio < 0 || depositFeeRatio > maxFeeRatio {
		panic("deposit fee ratio must not exceed 5000")
	}
	if withdrawFeeRatio < 0 || withdrawFeeRatio > maxFeeRatio {
		panic("withdraw fee ratio must not exceed 5000")
	}

	cfg := getConfig(ctx)
	cfg.DepositFeeRatio = depositFeeRatio
	cfg.WithdrawFeeRatio = withdrawFeeRatio
	common.SetSerialized(ctx, configKey, cfg)

	runtime.Log("fee ratios updated")
}

// Transfer is a NEP-17 standard method that transfers wrapped-storage
// tokens from one account to another. Can be invoked only by the account
// owner (or by a calling contract owning the account).
//
// A transfer addressed to the contract itself is a withdraw request: data
// must then carry one of the withdraw request tags, WithdrawRequestResource
// to receive storage bytes back or WithdrawRequestCurrency to receive GAS
// from a market sale. The surrendered tokens are retired, they are never
// credited to the contract's own balance.
//
// Produces Transfer and TransferX notifications.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if common.BytesEqual(from, to) {
		panic("cannot transfer to self")
	}
	getTokenStat(ctx) // the token must exist
	if amount <= 0 {
		panic("amount must be positive")
	}

	self := runtime.GetExecutingScriptHash()
	if common.BytesEqual(to, self) {
		if !isUsableAddress(from) {
			panic(common.ErrOwnerWitnessFailed)
		}

		request := data.(int)
		switch request {
		case WithdrawRequestResource:
			withdrawResource(ctx, from, amount)
		case WithdrawRequestCurrency:
			withdrawCurrency(ctx, from, amount)
		default:
			panic("unknown withdraw request")
		}

		fromBalance := token.balanceOf(ctx, from)
		toBalance := token.balanceOf(ctx, self)
		runtime.Notify("TransferX", from, to, amount, fromBalance, toBalance, []byte(nil))

		return true
	}

	var details []byte
	if data != nil {
		details = data.([]byte)
		if len(details) > maxMemoLength {
			panic("memo exceeds 256 bytes")
		}
	}

	return token.transfer(ctx, from, to, amount, true, details)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// A GAS payment is a currency-path deposit request, except for payments
// made by the market contract, which are sale proceeds already accounted
// for by the withdraw orchestrator.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic("only GAS can be accepted for deposit")
	}

	ctx := storage.GetContext()
	if common.FromKnownContract(ctx, from, marketContractKey) {
		return
	}

	depositCurrency(ctx, from, amount)
}

// OnResourcePayment is a callback invoked by the resource ledger when
// storage bytes are transferred to the contract. Bytes sent by anyone
// except the market contract are a resource-path deposit; bytes sent by
// the market are purchase proceeds already accounted for by the deposit
// orchestrator.
func OnResourcePayment(from interop.Hash160, amount int, data interface{}) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	if !common.FromKnownContract(ctx, caller, resourceContractKey) {
		panic("only the resource ledger may transfer storage bytes here")
	}
	if common.FromKnownContract(ctx, from, marketContractKey) {
		return
	}

	depositResource(ctx, from, amount)
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

// depositResource wraps storage bytes already received from the owner:
// bytes move into the custodial pool, an equal amount of tokens is issued
// and the net amount after fee is delivered to the owner.
func depositResource(ctx storage.Context, owner interop.Hash160, amount int) {
	if amount <= 0 {
		panic("deposit amount must be positive")
	}

	cfg := getConfig(ctx)
	if cfg.DepositDisabled {
		panic("deposit has been suspended")
	}

	self := runtime.GetExecutingScriptHash()
	resourceTransfer(ctx, self, custodyPoolAddress(ctx), amount, nil)

	token.issue(ctx, self, amount)

	fee := amount * cfg.DepositFeeRatio / ratioDenominator
	net := amount - fee

	if fee > 0 {
		mustTransfer(ctx, self, feeAccountAddress(ctx), fee, common.DepositFeeTransferDetails())
	}
	mustTransfer(ctx, self, owner, net, common.DepositTransferDetails())

	runtime.Notify("DepositResource", owner, amount, fee, net)
	runtime.Log("storage bytes deposited")
}

// depositCurrency converts a received GAS payment into storage bytes via
// the market and issues the obtained amount of tokens to the owner.
func depositCurrency(ctx storage.Context, owner interop.Hash160, amount int) {
	if amount <= 0 {
		panic("deposit amount must be positive")
	}

	cfg := getConfig(ctx)
	if cfg.DepositDisabled {
		panic("deposit has been suspended")
	}

	fee := amount * cfg.DepositFeeRatio / ratioDenominator
	net := amount - fee

	self := runtime.GetExecutingScriptHash()
	if fee > 0 {
		if !gas.Transfer(self, feeAccountAddress(ctx), fee, nil) {
			panic("can't transfer deposit fee")
		}
	}

	out := buyResource(ctx, net)
	token.issue(ctx, owner, out)

	runtime.Notify("DepositCurrency", owner, amount, fee, out)
	runtime.Log("currency deposited")
}

// withdrawResource retires the net amount of the surrendered tokens,
// routes the fee part to the fee account and releases the same net amount
// of storage bytes from the custodial pool.
func withdrawResource(ctx storage.Context, owner interop.Hash160, amount int) {
	cfg := getConfig(ctx)
	if cfg.WithdrawDisabled {
		panic("withdraw has been suspended")
	}

	fee := amount * cfg.WithdrawFeeRatio / ratioDenominator
	net := amount - fee

	token.retire(ctx, owner, net)

	if fee > 0 {
		mustTransfer(ctx, owner, feeAccountAddress(ctx), fee, common.WithdrawFeeTransferDetails())
	}
	resourceTransfer(ctx, custodyPoolAddress(ctx), owner, net, nil)

	runtime.Notify("WithdrawResource", owner, amount, fee, net)
	runtime.Log("storage bytes withdrawn")
}

// withdrawCurrency retires the surrendered tokens in full, sells the same
// amount of storage bytes on the market and pays the GAS proceeds minus
// fee to the owner.
func withdrawCurrency(ctx storage.Context, owner interop.Hash160, amount int) {
	cfg := getConfig(ctx)
	if cfg.WithdrawDisabled {
		panic("withdraw has been suspended")
	}

	token.retire(ctx, owner, amount)

	out := sellResource(ctx, amount)

	fee := out * cfg.WithdrawFeeRatio / ratioDenominator
	net := out - fee

	self := runtime.GetExecutingScriptHash()
	if fee > 0 {
		if !gas.Transfer(self, feeAccountAddress(ctx), fee, nil) {
			panic("can't transfer withdraw fee")
		}
	}
	if !gas.Transfer(self, owner, net, nil) {
		panic("can't transfer withdrawn funds")
	}

	runtime.Notify("WithdrawCurrency", owner, amount, fee, net)
	runtime.Log("currency withdrawn")
}

// buyResource spends quantity of GAS on the market and returns the amount
// of storage bytes this purchase yields. The market deducts 0.5% of the
// payment (rounded up) before conversion; the local computation mirrors
// that rule exactly, it only predicts the amount for bookkeeping. For
// quantity == 1 the fee is 1, otherwise 0 < fee < quantity. Purchased
// bytes are delivered to the custodial pool.
func buyResource(ctx storage.Context, quantity int) int {
	marketFee := (quantity + 199) / 200
	out := convert(ctx, quantity-marketFee, resourceSymbol)

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(self, marketContract(ctx), quantity, custodyPoolAddress(ctx)) {
		panic("can't transfer funds to the market")
	}

	return out
}

// sellResource sells quantity of storage bytes from the custodial pool on
// the market and returns the GAS amount the sale yields after the market's
// own 0.5% fee (rounded up). Proceeds are paid to the contract, which
// routes them further.
func sellResource(ctx storage.Context, quantity int) int {
	out := convert(ctx, quantity, currencySymbol)
	marketFee := (out + 199) / 200
	out -= marketFee

	self := runtime.GetExecutingScriptHash()
	resourceTransfer(ctx, custodyPoolAddress(ctx), marketContract(ctx), quantity, self)

	return out
}

// convert asks the market for the output amount the current bonding-curve
// state gives for the input amount. The market's own rounding rules apply.
func convert(ctx storage.Context, amount int, toSymbol string) int {
	return contract.Call(marketContract(ctx), "convert", contract.ReadOnly, amount, toSymbol).(int)
}

// issue increases the supply and credits the issuer's balance. If the
// target differs from the issuer, the tokens are delivered through the
// regular internal transfer path so that bookkeeping and notifications
// happen in one place.
func (t Token) issue(ctx storage.Context, to interop.Hash160, quantity int) {
	stat := getTokenStat(ctx)
	if quantity > stat.MaxSupply-stat.Supply {
		panic("quantity exceeds available supply")
	}

	stat.Supply = stat.Supply + quantity
	common.SetSerialized(ctx, statKey, stat)

	t.addBalance(ctx, stat.Issuer, quantity)
	runtime.Notify("Transfer", interop.Hash160(nil), stat.Issuer, quantity)

	if !common.BytesEqual(to, stat.Issuer) {
		mustTransfer(ctx, stat.Issuer, to, quantity, common.IssueTransferDetails())
	}
}

// retire decreases the supply and debits the owner's balance.
func (t Token) retire(ctx storage.Context, owner interop.Hash160, quantity int) {
	stat := getTokenStat(ctx)
	if stat.Supply < quantity {
		panic("negative supply after retire")
	}

	stat.Supply = stat.Supply - quantity
	common.SetSerialized(ctx, statKey, stat)

	t.subBalance(ctx, owner, quantity)
	runtime.Notify("Transfer", owner, interop.Hash160(nil), quantity)
}

func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return getAccount(ctx, holder).Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, checkWitness bool, details []byte) bool {
	if checkWitness && !isUsableAddress(from) {
		runtime.Log(common.ErrOwnerWitnessFailed)
		return false
	}

	acc := getAccount(ctx, from)
	if acc.Balance < amount {
		runtime.Log("insufficient balance")
		return false
	}

	if acc.Balance == amount {
		storage.Delete(ctx, from)
	} else {
		acc.Balance = acc.Balance - amount // neo-go#953
		common.SetSerialized(ctx, from, acc)
	}

	accTo := getAccount(ctx, to)
	accTo.Balance = accTo.Balance + amount // neo-go#953
	common.SetSerialized(ctx, to, accTo)

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, getAccount(ctx, from).Balance, accTo.Balance, details)

	return true
}

func (t Token) subBalance(ctx storage.Context, owner interop.Hash160, value int) int {
	data := storage.Get(ctx, owner)
	if data == nil {
		panic("no balance record")
	}

	acc := std.Deserialize(data.([]byte)).(Account)
	if acc.Balance < value {
		panic("insufficient balance")
	}

	acc.Balance = acc.Balance - value
	if acc.Balance == 0 {
		storage.Delete(ctx, owner)
	} else {
		common.SetSerialized(ctx, owner, acc)
	}

	return acc.Balance
}

func (t Token) addBalance(ctx storage.Context, owner interop.Hash160, value int) int {
	acc := getAccount(ctx, owner)
	acc.Balance = acc.Balance + value
	common.SetSerialized(ctx, owner, acc)

	return acc.Balance
}

// mustTransfer is an internal transfer already authorized by the engine
// logic, a failure here means a broken ledger invariant.
func mustTransfer(ctx storage.Context, from, to interop.Hash160, amount int, details []byte) {
	if !token.transfer(ctx, from, to, amount, false, details) {
		panic("can't transfer assets")
	}
}

// resourceTransfer moves storage bytes on the resource ledger. Transfers
// out of the custodial pool rely on the custodian delegation registered
// in the ledger for this contract.
func resourceTransfer(ctx storage.Context, from, to interop.Hash160, amount int, data interface{}) {
	result := contract.Call(resourceContract(ctx), "transfer", contract.All, from, to, amount, data).(bool)
	if !result {
		panic("can't transfer storage bytes")
	}
}

// isUsableAddress checks if the sender is either the correct account owner
// or a calling smart contract owning the account.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, key interface{}) Account {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func getTokenStat(ctx storage.Context) TokenStat {
	data := storage.Get(ctx, statKey)
	if data == nil {
		panic("token has not been created")
	}

	return std.Deserialize(data.([]byte)).(TokenStat)
}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Config)
	}

	return Config{
		DepositDisabled:  false,
		WithdrawDisabled: false,
		DepositFeeRatio:  defaultFeeRatio,
		WithdrawFeeRatio: defaultFeeRatio,
	}
}

func adminAddress(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

func feeAccountAddress(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, feeAccountKey).(interop.Hash160)
}

func custodyPoolAddress(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, custodyPoolKey).(interop.Hash160)
}

func resourceContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, resourceContractKey).(interop.Hash160)
}

func marketContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, marketContractKey).(interop.Hash160)
}
