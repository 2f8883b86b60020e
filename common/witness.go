package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrRoleWitnessFailed appears when the method must be called by
	// one of the configured role identities but was not.
	ErrRoleWitnessFailed = "role witness check failed"
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain identity but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckRoleWitness checks witness of the passed role identity.
// It panics with ErrRoleWitnessFailed message on fail.
func CheckRoleWitness(role []byte) {
	checkWitnessWithPanic(role, ErrRoleWitnessFailed)
}

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
