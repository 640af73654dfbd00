package tests

import (
	"path"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stordefi/wstor-contract/common"
	"github.com/stretchr/testify/require"
)

const (
	wstorPath          = "../wstor"
	resourceLedgerPath = "../internal/testcontracts/resourceledger"
	marketPath         = "../internal/testcontracts/market"

	defaultMaxSupply = 1_000_000
)

type wstorEnv struct {
	e *neotest.Executor

	wstor  *neotest.ContractInvoker
	ledger *neotest.ContractInvoker
	gas    *neotest.ContractInvoker

	wstorHash  util.Uint160
	ledgerHash util.Uint160
	marketHash util.Uint160

	admin       neotest.Signer
	feeAccount  neotest.Signer
	custodyPool neotest.Signer
}

// newWstorEnv deploys the resource ledger, the market with the given
// reserves and the wstor contract wired to both, creates the token and
// funds the market so that its holdings match the declared reserves.
func newWstorEnv(t *testing.T, baseReserve, quoteReserve, maxSupply int64) *wstorEnv {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	feeAccount := e.NewAccount(t)
	custodyPool := e.NewAccount(t)

	ctrLedger := neotest.CompileFile(t, e.CommitteeHash, resourceLedgerPath,
		path.Join(resourceLedgerPath, "config.yml"))
	e.DeployContract(t, ctrLedger, nil)

	ctrMarket := neotest.CompileFile(t, e.CommitteeHash, marketPath,
		path.Join(marketPath, "config.yml"))
	e.DeployContract(t, ctrMarket, []interface{}{ctrLedger.Hash, baseReserve, quoteReserve})

	ctrWstor := neotest.CompileFile(t, e.CommitteeHash, wstorPath,
		path.Join(wstorPath, "config.yml"))
	e.DeployContract(t, ctrWstor, []interface{}{
		admin.ScriptHash(), feeAccount.ScriptHash(), custodyPool.ScriptHash(),
		ctrLedger.Hash, ctrMarket.Hash,
	})

	gasHash, err := e.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	env := &wstorEnv{
		e:           e,
		wstor:       e.CommitteeInvoker(ctrWstor.Hash),
		ledger:      e.CommitteeInvoker(ctrLedger.Hash),
		gas:         e.CommitteeInvoker(gasHash).WithSigners(e.Validator),
		wstorHash:   ctrWstor.Hash,
		ledgerHash:  ctrLedger.Hash,
		marketHash:  ctrMarket.Hash,
		admin:       admin,
		feeAccount:  feeAccount,
		custodyPool: custodyPool,
	}

	env.wstor.Invoke(t, stackitem.Null{}, "createToken", ctrWstor.Hash, maxSupply)
	env.ledger.Invoke(t, stackitem.Null{}, "registerCustodian",
		custodyPool.ScriptHash(), ctrWstor.Hash)

	if baseReserve > 0 {
		env.ledger.Invoke(t, stackitem.Null{}, "mint", ctrMarket.Hash, baseReserve)
	}
	if quoteReserve > 0 {
		env.gas.Invoke(t, true, "transfer",
			e.Validator.ScriptHash(), ctrMarket.Hash, quoteReserve, nil)
	}

	return env
}

// mintBytes credits storage bytes to the account on the resource ledger.
func (env *wstorEnv) mintBytes(t *testing.T, to util.Uint160, amount int64) {
	env.ledger.Invoke(t, stackitem.Null{}, "mint", to, amount)
}

// depositBytes transfers storage bytes from the owner to the wstor
// contract, which wraps them.
func (env *wstorEnv) depositBytes(t *testing.T, owner neotest.Signer, amount int64) {
	env.ledger.WithSigners(owner).Invoke(t, true, "transfer",
		owner.ScriptHash(), env.wstorHash, amount, nil)
}

func (env *wstorEnv) tokenBalance(t *testing.T, acc util.Uint160, expected int64) {
	env.wstor.Invoke(t, expected, "balanceOf", acc)
}

func (env *wstorEnv) byteBalance(t *testing.T, acc util.Uint160, expected int64) {
	env.ledger.Invoke(t, expected, "balanceOf", acc)
}

func (env *wstorEnv) gasBalance(t *testing.T, acc util.Uint160, expected int64) {
	env.gas.Invoke(t, expected, "balanceOf", acc)
}

func TestCreateToken(t *testing.T) {
	e := newExecutor(t)

	ctrLedger := neotest.CompileFile(t, e.CommitteeHash, resourceLedgerPath,
		path.Join(resourceLedgerPath, "config.yml"))
	e.DeployContract(t, ctrLedger, nil)

	ctrMarket := neotest.CompileFile(t, e.CommitteeHash, marketPath,
		path.Join(marketPath, "config.yml"))
	e.DeployContract(t, ctrMarket, []interface{}{ctrLedger.Hash, int64(1000), int64(1000)})

	acc := e.NewAccount(t)
	ctrWstor := neotest.CompileFile(t, e.CommitteeHash, wstorPath,
		path.Join(wstorPath, "config.yml"))
	e.DeployContract(t, ctrWstor, []interface{}{
		acc.ScriptHash(), acc.ScriptHash(), acc.ScriptHash(),
		ctrLedger.Hash, ctrMarket.Hash,
	})

	c := e.CommitteeInvoker(ctrWstor.Hash)

	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "only committee can create the token",
		"createToken", ctrWstor.Hash, int64(1000))

	c.InvokeFail(t, "issuer must be the wstor contract",
		"createToken", acc.ScriptHash(), int64(1000))
	c.InvokeFail(t, "max supply must be positive",
		"createToken", ctrWstor.Hash, int64(0))

	c.InvokeFail(t, "token has not been created", "totalSupply")

	c.Invoke(t, stackitem.Null{}, "createToken", ctrWstor.Hash, int64(1000))
	c.InvokeFail(t, "token already exists", "createToken", ctrWstor.Hash, int64(1000))

	c.Invoke(t, "WSTOR", "symbol")
	c.Invoke(t, 0, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, 1000, "maxSupply")
	c.Invoke(t, common.Version, "version")
}

func TestUpdateStatus(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)
	cUser := env.wstor.WithSigners(user)
	cUser.InvokeFail(t, common.ErrAdminWitnessFailed, "updateStatus", true, true)

	cAdmin := env.wstor.WithSigners(env.admin)
	cAdmin.Invoke(t, stackitem.Null{}, "updateStatus", true, true)

	env.wstor.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.NewBool(true),
		stackitem.NewBool(true),
		stackitem.Make(50),
		stackitem.Make(50),
	}), "getConfig")

	env.mintBytes(t, user.ScriptHash(), 1000)
	env.ledger.WithSigners(user).InvokeFail(t, "deposit has been suspended",
		"transfer", user.ScriptHash(), env.wstorHash, int64(1000), nil)

	cAdmin.Invoke(t, stackitem.Null{}, "updateStatus", false, true)
	env.depositBytes(t, user, 1000)

	cUser.InvokeFail(t, "withdraw has been suspended", "transfer",
		user.ScriptHash(), env.wstorHash, int64(100), int64(1))

	cAdmin.Invoke(t, stackitem.Null{}, "updateStatus", false, false)
	cUser.Invoke(t, true, "transfer",
		user.ScriptHash(), env.wstorHash, int64(100), int64(1))
}

func TestUpdateRatio(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)
	env.wstor.WithSigners(user).InvokeFail(t, common.ErrAdminWitnessFailed,
		"updateRatio", int64(100), int64(100))

	cAdmin := env.wstor.WithSigners(env.admin)
	cAdmin.InvokeFail(t, "deposit fee ratio must not exceed 5000",
		"updateRatio", int64(5001), int64(100))
	cAdmin.InvokeFail(t, "withdraw fee ratio must not exceed 5000",
		"updateRatio", int64(100), int64(5001))
	cAdmin.InvokeFail(t, "deposit fee ratio must not exceed 5000",
		"updateRatio", int64(-1), int64(100))

	cAdmin.Invoke(t, stackitem.Null{}, "updateRatio", int64(5000), int64(0))
	env.wstor.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.NewBool(false),
		stackitem.NewBool(false),
		stackitem.Make(5000),
		stackitem.Make(0),
	}), "getConfig")
}

func TestDepositResource(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)
	env.mintBytes(t, user.ScriptHash(), 2000)

	// Default fee ratio is 50/10000: 2000 bytes cost a 10 token fee.
	env.depositBytes(t, user, 2000)

	env.tokenBalance(t, user.ScriptHash(), 1990)
	env.tokenBalance(t, env.feeAccount.ScriptHash(), 10)
	env.wstor.Invoke(t, 2000, "totalSupply")

	env.byteBalance(t, user.ScriptHash(), 0)
	env.byteBalance(t, env.custodyPool.ScriptHash(), 2000)
}

func TestDepositCurrency(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)

	// fee = 2000 * 50 / 10000 = 10, the market receives 1990, keeps
	// ceil(1990 / 200) = 10 and converts 1980:
	// 1980 * 100000 / (100000 + 1980) = 1941.
	env.gas.WithSigners(user).Invoke(t, true, "transfer",
		user.ScriptHash(), env.wstorHash, int64(2000), nil)

	env.tokenBalance(t, user.ScriptHash(), 1941)
	env.wstor.Invoke(t, 1941, "totalSupply")
	env.byteBalance(t, env.custodyPool.ScriptHash(), 1941)
	env.gasBalance(t, env.feeAccount.ScriptHash(), 10)
	env.gasBalance(t, env.wstorHash, 0)

	// Direct invocation imitates a payment of some other NEP-17 asset.
	env.wstor.WithSigners(user).InvokeFail(t, "only GAS can be accepted for deposit",
		"onNEP17Payment", user.ScriptHash(), int64(100), nil)
}

func TestWithdrawResource(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)
	env.mintBytes(t, user.ScriptHash(), 2000)
	env.depositBytes(t, user, 2000)

	cUser := env.wstor.WithSigners(user)

	// fee = 500 * 50 / 10000 = 2, 498 tokens are retired and the same
	// amount of bytes leaves the pool. The owner loses all 500.
	cUser.Invoke(t, true, "transfer",
		user.ScriptHash(), env.wstorHash, int64(500), int64(1))

	env.tokenBalance(t, user.ScriptHash(), 1490)
	env.tokenBalance(t, env.feeAccount.ScriptHash(), 12)
	env.wstor.Invoke(t, 1502, "totalSupply")

	env.byteBalance(t, user.ScriptHash(), 498)
	env.byteBalance(t, env.custodyPool.ScriptHash(), 1502)

	// The contract never accumulates a balance of its own.
	env.tokenBalance(t, env.wstorHash, 0)

	cUser.InvokeFail(t, "unknown withdraw request", "transfer",
		user.ScriptHash(), env.wstorHash, int64(100), int64(42))
	cUser.InvokeFail(t, "insufficient balance", "transfer",
		user.ScriptHash(), env.wstorHash, int64(1500), int64(1))
	cUser.InvokeFail(t, "negative supply after retire", "transfer",
		user.ScriptHash(), env.wstorHash, int64(5000), int64(1))

	// A failed withdrawal leaves every balance untouched.
	env.tokenBalance(t, user.ScriptHash(), 1490)
	env.wstor.Invoke(t, 1502, "totalSupply")
	env.byteBalance(t, env.custodyPool.ScriptHash(), 1502)
}

func TestWithdrawCurrency(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	user := env.e.NewAccount(t)
	env.mintBytes(t, user.ScriptHash(), 2000)
	env.depositBytes(t, user, 2000)

	// 500 tokens are retired in full, 500 bytes are sold:
	// 500 * 100000 / (100000 + 500) = 497 GAS, the market keeps
	// ceil(497 / 200) = 3, the fee is 494 * 50 / 10000 = 2.
	env.wstor.WithSigners(user).Invoke(t, true, "transfer",
		user.ScriptHash(), env.wstorHash, int64(500), int64(2))

	env.tokenBalance(t, user.ScriptHash(), 1490)
	env.wstor.Invoke(t, 1500, "totalSupply")
	env.byteBalance(t, env.custodyPool.ScriptHash(), 1500)
	env.gasBalance(t, env.feeAccount.ScriptHash(), 2)
	env.gasBalance(t, env.wstorHash, 0)
}

func TestMarketFeeRounding(t *testing.T) {
	env := newWstorEnv(t, 1000, 1500, defaultMaxSupply)

	user := env.e.NewAccount(t)
	env.mintBytes(t, user.ScriptHash(), 200)
	env.depositBytes(t, user, 200)
	env.tokenBalance(t, user.ScriptHash(), 199)

	// Selling a single byte converts to 1 GAS, but the market fee is
	// rounded up to 1, so nothing is left to pay out.
	env.wstor.WithSigners(user).Invoke(t, true, "transfer",
		user.ScriptHash(), env.wstorHash, int64(1), int64(2))

	env.tokenBalance(t, user.ScriptHash(), 198)
	env.wstor.Invoke(t, 199, "totalSupply")
	env.byteBalance(t, env.custodyPool.ScriptHash(), 199)
	env.gasBalance(t, env.feeAccount.ScriptHash(), 0)
	env.gasBalance(t, env.wstorHash, 0)
}

func TestSupplyCap(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, 1000)

	user := env.e.NewAccount(t)
	env.mintBytes(t, user.ScriptHash(), 2000)

	env.ledger.WithSigners(user).InvokeFail(t, "quantity exceeds available supply",
		"transfer", user.ScriptHash(), env.wstorHash, int64(2000), nil)

	// The fault rolls the whole deposit back.
	env.byteBalance(t, user.ScriptHash(), 2000)
	env.byteBalance(t, env.custodyPool.ScriptHash(), 0)
	env.wstor.Invoke(t, 0, "totalSupply")

	env.depositBytes(t, user, 1000)
	env.wstor.Invoke(t, 1000, "totalSupply")
}

func TestTransfer(t *testing.T) {
	env := newWstorEnv(t, 100_000, 100_000, defaultMaxSupply)

	from := env.e.NewAccount(t)
	to := env.e.NewAccount(t)

	env.mintBytes(t, from.ScriptHash(), 2000)
	env.depositBytes(t, from, 2000)

	cFrom := env.wstor.WithSigners(from)

	cFrom.InvokeFail(t, "cannot transfer to self", "transfer",
		from.ScriptHash(), from.ScriptHash(), int64(100), nil)
	cFrom.InvokeFail(t, "amount must be positive", "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(0), nil)
	cFrom.InvokeFail(t, "memo exceeds 256 bytes", "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(100), randomBytes(257))

	// Without the owner's witness the transfer is refused, not faulted.
	env.wstor.WithSigners(to).Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(100), nil)

	memo := []byte(uuid.NewString())
	cFrom.Invoke(t, true, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(100), memo)

	env.tokenBalance(t, from.ScriptHash(), 1890)
	env.tokenBalance(t, to.ScriptHash(), 100)

	cFrom.Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(5000), nil)
}
