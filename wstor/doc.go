/*
Wstor contract is the accounting engine of the wrapped-storage token.

The contract lets users swap storage bytes and GAS for the WSTOR token and
back. Every circulating token is backed one to one by a storage byte held
in the custodial pool account, so the contract never takes a market
position of its own. Bytes deposited directly are wrapped as is; GAS
deposits are first converted into bytes on the external bonding-curve
market and the purchase proceeds are wrapped. Withdrawals run the same
paths in reverse.

A withdrawal is requested with a regular NEP-17 transfer addressed to the
contract itself. The data argument must then carry an integer request tag:
1 to receive storage bytes, 2 to receive GAS from a market sale. The
surrendered tokens are retired, they never accumulate on the contract's
own balance.

Deposit and withdraw fees are charged in 1/10000 units of the moved
amount, truncated, with a hard cap of 5000 and a default of 50. Collected
fees are paid to the fee collection account in WSTOR for the resource path
and in GAS for the currency path. The administrative account may change
the ratios and suspend either direction at any time.

Contract notifications

Transfer notification. This is NEP-17 standard notification.

  Transfer:
    - name: from
      type: Hash160
    - name: to
      type: Hash160
    - name: amount
      type: Integer

TransferX notification. This is enhanced transfer notification with details.

  TransferX:
    - name: from
      type: Hash160
    - name: to
      type: Hash160
    - name: amount
      type: Integer
    - name: fromBalance
      type: Integer
    - name: toBalance
      type: Integer
    - name: details
      type: ByteArray

DepositResource notification. This notification is produced when storage
bytes are wrapped into tokens.

  DepositResource:
    - name: owner
      type: Hash160
    - name: amount
      type: Integer
    - name: fee
      type: Integer
    - name: net
      type: Integer

DepositCurrency notification. This notification is produced when a GAS
deposit is converted into storage bytes and wrapped. Output is the amount
of tokens issued to the owner.

  DepositCurrency:
    - name: owner
      type: Hash160
    - name: amount
      type: Integer
    - name: fee
      type: Integer
    - name: output
      type: Integer

WithdrawResource notification. This notification is produced when tokens
are unwrapped back into storage bytes.

  WithdrawResource:
    - name: owner
      type: Hash160
    - name: amount
      type: Integer
    - name: fee
      type: Integer
    - name: net
      type: Integer

WithdrawCurrency notification. This notification is produced when tokens
are unwrapped and the backing bytes are sold on the market for GAS.

  WithdrawCurrency:
    - name: owner
      type: Hash160
    - name: amount
      type: Integer
    - name: fee
      type: Integer
    - name: net
      type: Integer
*/
package wstor
