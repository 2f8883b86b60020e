package tests

import (
	"crypto/sha256"
	"path"
	"testing"
	"time"

	"github.com/infernet-dev/inference-contract/common"
	"github.com/infernet-dev/inference-contract/inference"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const inferencePath = "../inference"

const (
	minStake int64 = 100_0000_0000

	minLock     = 24 * time.Hour
	decayWindow = 10 * time.Minute
)

type inferenceEnv struct {
	*neotest.ContractInvoker

	anchorAcc   neotest.Signer
	hubAcc      neotest.Signer
	treasuryAcc neotest.Signer
	gas         *neotest.ContractInvoker
}

func deployInferenceContract(t *testing.T, e *neotest.Executor, anchor, hub, treasury util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, inferencePath, path.Join(inferencePath, "config.yml"))

	args := make([]any, 3)
	args[0] = anchor
	args[1] = hub
	args[2] = treasury

	e.DeployContract(t, c, args)
	return c.Hash
}

func newInferenceEnv(t *testing.T) *inferenceEnv {
	e := newExecutor(t)

	anchorAcc := e.NewAccount(t)
	hubAcc := e.NewAccount(t)
	treasuryAcc := e.NewAccount(t)

	h := deployInferenceContract(t, e, anchorAcc.ScriptHash(), hubAcc.ScriptHash(), treasuryAcc.ScriptHash())

	return &inferenceEnv{
		ContractInvoker: e.CommitteeInvoker(h),
		anchorAcc:       anchorAcc,
		hubAcc:          hubAcc,
		treasuryAcc:     treasuryAcc,
		gas:             e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)),
	}
}

func (env *inferenceEnv) fundGAS(t *testing.T, to util.Uint160, amount int64) {
	env.gas.Invoke(t, true, "transfer", env.gas.CommitteeHash, to, amount, nil)
}

// newValidator creates an account with an active eligible stake. The
// account keeps some GAS on top of the stake to pay fees.
func (env *inferenceEnv) newValidator(t *testing.T, stake int64) neotest.Signer {
	acc := env.NewAccount(t)
	env.fundGAS(t, acc.ScriptHash(), stake+50_0000_0000)

	env.WithSigners(acc).Invoke(t, stackitem.Null{}, "stake",
		stake, int64(minLock/time.Millisecond), acc.ScriptHash())
	return acc
}

// submitQuery registers a query with the committee as the requester.
func (env *inferenceEnv) submitQuery(t *testing.T, bounty int64) []byte {
	queryHash := randomBytes(32)
	env.Invoke(t, stackitem.Null{}, "submit", queryHash, bounty, bounty, env.CommitteeHash)
	return queryHash
}

func (env *inferenceEnv) contractBalance() int64 {
	return env.Chain.GetUtilityTokenBalance(env.Hash).Int64()
}

func TestInference_Version(t *testing.T) {
	env := newInferenceEnv(t)
	env.Invoke(t, common.Version, "version")
}

func TestInference_Roles(t *testing.T) {
	env := newInferenceEnv(t)

	res, err := env.TestInvoke(t, "roles")
	require.NoError(t, err)

	arr := res.Pop().Array()
	require.Len(t, arr, 3)

	for i, acc := range []neotest.Signer{env.anchorAcc, env.hubAcc, env.treasuryAcc} {
		b, err := arr[i].TryBytes()
		require.NoError(t, err)
		require.Equal(t, acc.ScriptHash().BytesBE(), b)
	}
}

func TestSubmit(t *testing.T) {
	env := newInferenceEnv(t)
	queryHash := randomBytes(32)

	env.InvokeFail(t, inference.ErrInsufficientEscrow, "submit", queryHash, int64(0), int64(100), env.CommitteeHash)
	env.InvokeFail(t, inference.ErrInsufficientEscrow, "submit", queryHash, int64(100), int64(99), env.CommitteeHash)

	acc := env.NewAccount(t)
	env.InvokeFail(t, common.ErrOwnerWitnessFailed, "submit", queryHash, int64(100), int64(100), acc.ScriptHash())

	env.InvokeFail(t, "invalid query hash length", "submit", randomBytes(31), int64(100), int64(100), env.CommitteeHash)

	env.Invoke(t, stackitem.Null{}, "submit", queryHash, int64(1000), int64(1500), env.CommitteeHash)

	// exactly the bounty is escrowed, not the declared cap
	require.EqualValues(t, 1000, env.contractBalance())
	env.Invoke(t, 1, "pendingCount")

	env.InvokeFail(t, inference.ErrDuplicateQuery, "submit", queryHash, int64(1000), int64(1000), env.CommitteeHash)

	res, err := env.TestInvoke(t, "inferenceStatus", queryHash)
	require.NoError(t, err)

	req := res.Pop().Array()
	requester, err := req[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, env.CommitteeHash.BytesBE(), requester)

	bounty, err := req[2].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1000, bounty.Int64())

	resolved, err := req[3].TryBool()
	require.NoError(t, err)
	require.False(t, resolved)
}

func TestResolve_Refund(t *testing.T) {
	env := newInferenceEnv(t)
	hub := env.WithSigners(env.hubAcc)

	hub.InvokeFail(t, inference.ErrAlreadyResolved, "resolve", randomBytes(32), randomBytes(32))

	queryHash := env.submitQuery(t, 777)

	// the committee is not the hub
	env.InvokeFail(t, common.ErrRoleWitnessFailed, "resolve", queryHash, randomBytes(32))

	digest := randomBytes(32)
	before := env.Chain.GetUtilityTokenBalance(env.CommitteeHash).Int64()

	hub.Invoke(t, stackitem.Null{}, "resolve", queryHash, digest)

	// with no endorsers the full bounty goes back to the requester
	after := env.Chain.GetUtilityTokenBalance(env.CommitteeHash).Int64()
	require.EqualValues(t, 777, after-before)
	require.EqualValues(t, 0, env.contractBalance())

	res, err := env.TestInvoke(t, "snapshot", queryHash)
	require.NoError(t, err)

	snap := res.Pop().Array()
	count, err := snap[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 0, count.Int64())

	resolvedAt, err := snap[1].TryInteger()
	require.NoError(t, err)
	require.NotZero(t, resolvedAt.Int64())

	snapDigest, err := snap[2].TryBytes()
	require.NoError(t, err)
	require.Equal(t, digest, snapDigest)

	hub.InvokeFail(t, inference.ErrAlreadyResolved, "resolve", queryHash, digest)
}

func TestResolve_EvenSplit(t *testing.T) {
	env := newInferenceEnv(t)
	hub := env.WithSigners(env.hubAcc)

	v1 := env.newValidator(t, minStake)
	v2 := env.newValidator(t, minStake)

	queryHash := env.submitQuery(t, 1000)
	env.WithSigners(v1).Invoke(t, stackitem.Null{}, "endorse", queryHash, v1.ScriptHash())
	env.WithSigners(v2).Invoke(t, stackitem.Null{}, "endorse", queryHash, v2.ScriptHash())
	env.Invoke(t, 2, "endorserCount", queryHash)

	hub.Invoke(t, stackitem.Null{}, "resolve", queryHash, randomBytes(32))

	env.Invoke(t, 500, "claimable", queryHash, v1.ScriptHash())
	env.Invoke(t, 500, "claimable", queryHash, v2.ScriptHash())

	// shares are pulled, not pushed
	require.EqualValues(t, 2*minStake+1000, env.contractBalance())
}

func TestResolve_RemainderToFirst(t *testing.T) {
	env := newInferenceEnv(t)
	hub := env.WithSigners(env.hubAcc)

	v1 := env.newValidator(t, minStake)
	v2 := env.newValidator(t, minStake)

	queryHash := env.submitQuery(t, 777)
	env.WithSigners(v1).Invoke(t, stackitem.Null{}, "endorse", queryHash, v1.ScriptHash())
	env.WithSigners(v2).Invoke(t, stackitem.Null{}, "endorse", queryHash, v2.ScriptHash())

	hub.Invoke(t, stackitem.Null{}, "resolve", queryHash, randomBytes(32))

	// 777 = 389 + 388, the division remainder goes to the first endorser
	env.Invoke(t, 389, "claimable", queryHash, v1.ScriptHash())
	env.Invoke(t, 388, "claimable", queryHash, v2.ScriptHash())

	env.WithSigners(v1).Invoke(t, 389, "claim", queryHash, v1.ScriptHash())
	env.WithSigners(v2).Invoke(t, 388, "claim", queryHash, v2.ScriptHash())

	// the whole bounty is paid out, stakes stay untouched
	require.EqualValues(t, 2*minStake, env.contractBalance())

	// double claim is a no-op returning zero
	env.WithSigners(v1).Invoke(t, 0, "claim", queryHash, v1.ScriptHash())
	env.Invoke(t, 0, "claimable", queryHash, v1.ScriptHash())
}

func TestEndorse(t *testing.T) {
	env := newInferenceEnv(t)

	v := env.newValidator(t, minStake)
	cv := env.WithSigners(v)

	// a query that was never submitted is indistinguishable from a
	// resolved one
	cv.InvokeFail(t, inference.ErrAlreadyResolved, "endorse", randomBytes(32), v.ScriptHash())

	queryHash := env.submitQuery(t, 1000)

	outsider := env.NewAccount(t)
	env.WithSigners(outsider).InvokeFail(t, inference.ErrNotEligible, "endorse", queryHash, outsider.ScriptHash())
	cv.InvokeFail(t, common.ErrOwnerWitnessFailed, "endorse", queryHash, outsider.ScriptHash())

	cv.Invoke(t, stackitem.Null{}, "endorse", queryHash, v.ScriptHash())
	env.Invoke(t, 1, "endorserCount", queryHash)

	// repeated endorsement is a no-op, the first one wins
	cv.Invoke(t, stackitem.Null{}, "endorse", queryHash, v.ScriptHash())
	env.Invoke(t, 1, "endorserCount", queryHash)

	// one correct prediction plus 100 GAS staked
	env.Invoke(t, 32+100, "reputation", v.ScriptHash())

	// predictions accumulate across queries
	other := env.submitQuery(t, 500)
	cv.Invoke(t, stackitem.Null{}, "endorse", other, v.ScriptHash())
	env.Invoke(t, 2*32+100, "reputation", v.ScriptHash())

	env.WithSigners(env.hubAcc).Invoke(t, stackitem.Null{}, "resolve", queryHash, randomBytes(32))
	cv.InvokeFail(t, inference.ErrAlreadyResolved, "endorse", queryHash, v.ScriptHash())

	// an expired lock ends eligibility
	advanceTime(t, env.Executor, minLock+time.Minute)
	fresh := env.submitQuery(t, 1000)
	cv.InvokeFail(t, inference.ErrNotEligible, "endorse", fresh, v.ScriptHash())
}

func TestQueryID(t *testing.T) {
	env := newInferenceEnv(t)

	payload := []byte("which block is final")
	expected := sha256.Sum256(append([]byte("infernet.query.v1"), payload...))

	env.Invoke(t, expected[:], "queryID", payload)
}

func TestQueries(t *testing.T) {
	env := newInferenceEnv(t)

	q1 := env.submitQuery(t, 100)
	q2 := env.submitQuery(t, 200)

	res, err := env.TestInvoke(t, "queries")
	require.NoError(t, err)

	iter, ok := res.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	var hashes [][]byte
	for _, itm := range iteratorToArray(iter) {
		b, err := itm.TryBytes()
		require.NoError(t, err)
		hashes = append(hashes, b)
	}
	require.ElementsMatch(t, [][]byte{q1, q2}, hashes)
}

func TestPendingListCap(t *testing.T) {
	env := newInferenceEnv(t)

	for i := 0; i < 130; i++ {
		queryHash := env.submitQuery(t, 1)

		// overflow submissions stay registered and resolvable
		if i >= 128 {
			env.WithSigners(env.hubAcc).Invoke(t, stackitem.Null{}, "resolve", queryHash, randomBytes(32))
		}
	}

	env.Invoke(t, 128, "pendingCount")
}

func TestUpdateAccess(t *testing.T) {
	env := newInferenceEnv(t)

	acc := env.NewAccount(t)
	env.WithSigners(acc).InvokeFail(t, "only committee can update contract",
		"update", []byte{}, []byte{}, nil)
}

func TestOnNEP17Payment(t *testing.T) {
	env := newInferenceEnv(t)

	// direct invocations do not come from the GAS contract
	env.InvokeFail(t, "only GAS can be accepted",
		"onNEP17Payment", env.CommitteeHash, int64(1), nil)

	// an actual GAS transfer lands fine
	env.fundGAS(t, env.Hash, 42)
	require.EqualValues(t, 42, env.contractBalance())
}
