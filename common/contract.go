package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// BytesEqual compares two slice of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// FromKnownContract returns true if the script hash is the one stored in
// the contract storage under the key.
func FromKnownContract(ctx storage.Context, hash interop.Hash160, key string) bool {
	addr := storage.Get(ctx, key).(interop.Hash160)
	return BytesEqual(hash, addr)
}

// CommitteeAddress returns multi address of committee public keys.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	threshold := len(committee)/2 + 1

	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(threshold, keys)
}

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
