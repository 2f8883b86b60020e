package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

// ErrReentrancy appears when a value-moving method is re-entered from
// within another in-progress value-moving method.
const ErrReentrancy = "reentrant call"

const guardKey = "inProgress"

// LockGuard marks the contract as executing a value-moving method. Any
// nested LockGuard within the same transaction panics with ErrReentrancy.
// The flag never outlives the transaction: ReleaseGuard removes it on the
// normal exit path and a fault rolls it back together with the rest of
// the state.
func LockGuard(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(ErrReentrancy)
	}

	storage.Put(ctx, guardKey, true)
}

// ReleaseGuard removes the mark set by LockGuard.
func ReleaseGuard(ctx storage.Context) {
	storage.Delete(ctx, guardKey)
}
