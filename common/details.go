package common

var (
	issuePrefix       = []byte{0x01}
	depositPrefix     = []byte{0x02}
	withdrawPrefix    = []byte{0x03}
	depositFeePrefix  = []byte{0x10}
	withdrawFeePrefix = []byte{0x11}
)

// IssueTransferDetails marks an internal transfer that delivers freshly
// issued tokens from the issuer account.
func IssueTransferDetails() []byte {
	return issuePrefix
}

// DepositTransferDetails marks an internal transfer that delivers the net
// deposit amount to the depositor.
func DepositTransferDetails() []byte {
	return depositPrefix
}

// WithdrawTransferDetails marks custody movements that return principal
// to the withdrawing account.
func WithdrawTransferDetails() []byte {
	return withdrawPrefix
}

// DepositFeeTransferDetails marks an internal transfer that routes the
// deposit fee to the fee collection account.
func DepositFeeTransferDetails() []byte {
	return depositFeePrefix
}

// WithdrawFeeTransferDetails marks an internal transfer that routes the
// withdraw fee to the fee collection account.
func WithdrawFeeTransferDetails() []byte {
	return withdrawFeePrefix
}
