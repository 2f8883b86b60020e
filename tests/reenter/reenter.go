/*
Reenter is an auxiliary test contract. It holds GAS, signs transactions
via Verify and, when armed, re-enters a stored contract method from
within its NEP-17 payment callback.
*/
package reenter

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	targetKey = "target"
	methodKey = "method"
	queryKey  = "query"
)

// Verify allows the contract to sign transactions.
func Verify() bool {
	return true
}

// Arm stores the target contract and the method to re-enter on the next
// incoming GAS payment.
func Arm(target interop.Hash160, method string, queryHash interop.Hash256) {
	ctx := storage.GetContext()
	storage.Put(ctx, targetKey, target)
	storage.Put(ctx, methodKey, method)
	storage.Put(ctx, queryKey, queryHash)
}

// Disarm makes incoming payments pass quietly again.
func Disarm() {
	ctx := storage.GetContext()
	storage.Delete(ctx, methodKey)
}

// OnNEP17Payment re-enters the armed target method from within the
// incoming transfer.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	m := storage.Get(ctx, methodKey)
	if m == nil {
		return
	}

	target := storage.Get(ctx, targetKey).(interop.Hash160)
	queryHash := storage.Get(ctx, queryKey).(interop.Hash256)
	self := runtime.GetExecutingScriptHash()

	method := string(m.([]byte))
	if method == "withdraw" {
		contract.Call(target, method, contract.All, self)
	} else {
		contract.Call(target, method, contract.All, queryHash, self)
	}
}
