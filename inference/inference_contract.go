package inference

import (
	"github.com/infernet-dev/inference-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// inferenceRequest stores a registered inference query together with
	// its escrowed bounty. The record is never deleted; Resolved can only
	// go false to true.
	inferenceRequest struct {
		Requester    interop.Hash160
		SubmittedAt  int
		Bounty       int
		Resolved     bool
		ResultDigest interop.Hash256
	}

	// oracleReport is the latest accepted report of a feed. It is a
	// cache, not a history: each accepted anchor overwrites it.
	oracleReport struct {
		Value       int
		Confidence  int
		SubmittedAt int
		Reporter    interop.Hash160
	}

	// feedMetadata accumulates per-feed aggregates across all accepted
	// reports.
	feedMetadata struct {
		UpdateCount int
		FirstSeenAt int
		MinReported int
		MaxReported int
	}

	// validatorStake is the stake record of a single validator identity.
	// Slashed is permanent, there is no way back to staking for the
	// identity once it is set.
	validatorStake struct {
		Amount             int
		LockedUntil        int
		Slashed            bool
		CorrectPredictions int
	}

	// consensusSnapshot is written exactly once per query, at resolution.
	consensusSnapshot struct {
		EndorserCount int
		ResolvedAt    int
		ResultDigest  interop.Hash256
	}

	// roleConfig groups the three identities the contract is deployed with.
	roleConfig struct {
		Anchor   interop.Hash160
		Hub      interop.Hash160
		Treasury interop.Hash160
	}
)

const (
	// ErrInsufficientEscrow is thrown on submission with a zero bounty or
	// with declared escrow below the bounty.
	ErrInsufficientEscrow = "insufficient escrow"
	// ErrDuplicateQuery is thrown when the query hash is already registered.
	ErrDuplicateQuery = "query already registered"
	// ErrAlreadyResolved is thrown when the query is missing or resolved.
	ErrAlreadyResolved = "query missing or already resolved"
	// ErrReportStale is thrown when the previous report of the feed is
	// younger than the decay window.
	ErrReportStale = "previous report is still fresh"
	// ErrNotEligible is thrown on sub-minimum stake parameters, expired
	// endorsement lock or any action of a slashed validator.
	ErrNotEligible = "validator not eligible"
	// ErrStakeLockActive is thrown on re-staking while the lock runs.
	ErrStakeLockActive = "stake lock is active"
	// ErrLockNotExpired is thrown on withdrawal before the lock end.
	ErrLockNotExpired = "stake lock has not expired"
	// ErrNoStake is thrown on withdrawal with nothing staked.
	ErrNoStake = "nothing staked"
	// ErrTransferFailed is thrown when the GAS transfer reports failure.
	ErrTransferFailed = "failed to transfer GAS, aborting"
)

const (
	requestPrefix   = 'q'
	endorsersPrefix = 'e'
	snapshotPrefix  = 'c'
	claimablePrefix = 'b'
	reportPrefix    = 'r'
	metadataPrefix  = 'm'
	stakePrefix     = 's'
)

const (
	anchorRoleKey   = "anchorRole"
	hubRoleKey      = "hubRole"
	treasuryRoleKey = "treasuryRole"

	pendingQueriesKey = "pending"
	validatorsKey     = "validators"
	feedsKey          = "feeds"
)

const (
	// maxPendingQueries caps the pending list; submissions past the cap
	// are still registered but not listed.
	maxPendingQueries = 128

	// reportDecayWindow is the minimum interval between accepted reports
	// of one feed, in milliseconds.
	reportDecayWindow = 10 * 60 * 1000

	// reportEligibilityPeriod is the report age at which its confidence
	// weight decays to zero, in milliseconds.
	reportEligibilityPeriod = 365 * 24 * 3600 * 1000

	// minStakeAmount is the minimum validator deposit, Fixed8.
	minStakeAmount = 100 * 1_0000_0000

	// stakeEligibilityThreshold is the stake required to endorse, Fixed8.
	stakeEligibilityThreshold = minStakeAmount

	// minLockPeriod is the minimum stake lock duration, in milliseconds.
	minLockPeriod = 24 * 3600 * 1000

	// quorumBits weighs one correct prediction in the reputation score.
	quorumBits = 32

	// oneUnit is one whole GAS in Fixed8, the stake unit of reputation.
	oneUnit = 1_0000_0000

	maxFeedIDLength = 32

	queryIDSeed = "infernet.query.v1"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		anchor   interop.Hash160
		hub      interop.Hash160
		treasury interop.Hash160
	})

	if len(args.anchor) != interop.Hash160Len ||
		len(args.hub) != interop.Hash160Len ||
		len(args.treasury) != interop.Hash160Len {
		panic("incorrect length of role script hash")
	}

	storage.Put(ctx, anchorRoleKey, args.anchor)
	storage.Put(ctx, hubRoleKey, args.hub)
	storage.Put(ctx, treasuryRoleKey, args.treasury)

	runtime.Log("inference contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("inference contract updated")
}

// Submit registers a new inference query under the given hash and escrows
// its bounty from the requester. The declared escrow is the requester's
// spending cap and must cover the bounty; exactly the bounty is
// transferred. A submission past the pending list cap is still registered
// and resolvable, it is only left out of the listing.
//
// Produces InferenceSubmitted notification.
func Submit(queryHash interop.Hash256, bounty int, escrow int, requester interop.Hash160) {
	if len(queryHash) != interop.Hash256Len {
		panic("invalid query hash length")
	}

	ctx := storage.GetContext()
	common.LockGuard(ctx)

	common.CheckOwnerWitness(requester)

	if bounty <= 0 || escrow < bounty {
		panic(ErrInsufficientEscrow)
	}

	key := requestKey(queryHash)
	if storage.Get(ctx, key) != nil {
		panic(ErrDuplicateQuery)
	}

	to := runtime.GetExecutingScriptHash()
	if !gas.Transfer(requester, to, bounty, nil) {
		panic(ErrTransferFailed)
	}

	req := inferenceRequest{
		Requester:   requester,
		SubmittedAt: runtime.GetTime(),
		Bounty:      bounty,
	}
	common.SetSerialized(ctx, key, req)

	pending := common.GetList(ctx, pendingQueriesKey)
	if len(pending) < maxPendingQueries {
		pending = append(pending, queryHash)
		common.SetSerialized(ctx, pendingQueriesKey, pending)
	}

	runtime.Notify("InferenceSubmitted", queryHash, requester, bounty)

	common.ReleaseGuard(ctx)
}

// Resolve finalizes a query with the given result digest and snapshots the
// endorsement consensus. It can be invoked only by the hub. With no
// endorsers the full bounty is returned to the requester, otherwise it is
// split between endorsers in insertion order: everyone gets bounty/count,
// the integer division remainder goes to the first endorser, so the shares
// always sum to the bounty exactly. Shares are not pushed, endorsers pull
// them via Claim.
//
// Produces SnapshotRecorded, ReputationUpdated (per endorser) and
// ConsensusReached notifications.
func Resolve(queryHash interop.Hash256, resultDigest interop.Hash256) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	hub := storage.Get(ctx, hubRoleKey).(interop.Hash160)
	common.CheckRoleWitness(hub)

	key := requestKey(queryHash)
	req, ok := getRequest(ctx, key)
	if !ok || req.Resolved {
		panic(ErrAlreadyResolved)
	}

	req.Resolved = true
	req.ResultDigest = resultDigest
	common.SetSerialized(ctx, key, req)

	endorsers := common.GetList(ctx, endorsersKey(queryHash))
	now := runtime.GetTime()

	snap := consensusSnapshot{
		EndorserCount: len(endorsers),
		ResolvedAt:    now,
		ResultDigest:  resultDigest,
	}
	common.SetSerialized(ctx, snapshotKey(queryHash), snap)
	runtime.Notify("SnapshotRecorded", queryHash, len(endorsers), now)

	if len(endorsers) == 0 {
		from := runtime.GetExecutingScriptHash()
		if !gas.Transfer(from, req.Requester, req.Bounty, nil) {
			panic(ErrTransferFailed)
		}
	} else {
		allocateBounty(ctx, queryHash, req.Bounty, endorsers)
	}

	runtime.Notify("ConsensusReached", queryHash, resultDigest, len(endorsers))

	common.ReleaseGuard(ctx)
}

// Anchor accepts a new oracle report for the feed, overwriting the cached
// one, and widens the feed's accumulated metadata. It can be invoked only
// by the oracle anchor. The report is rejected while the previous one is
// younger than the decay window; this is last-value-wins with a minimum
// update interval, not a consensus mechanism.
//
// Produces ReportAnchored and FeedMetadataUpdated notifications.
func Anchor(feedID []byte, value int, confidence int) {
	if len(feedID) == 0 || len(feedID) > maxFeedIDLength {
		panic("invalid feed ID")
	}

	ctx := storage.GetContext()

	anchor := storage.Get(ctx, anchorRoleKey).(interop.Hash160)
	common.CheckRoleWitness(anchor)

	now := runtime.GetTime()
	rKey := reportKey(feedID)

	data := storage.Get(ctx, rKey)
	if data != nil {
		prev := std.Deserialize(data.([]byte)).(oracleReport)
		if now-prev.SubmittedAt < reportDecayWindow {
			panic(ErrReportStale)
		}
	}

	report := oracleReport{
		Value:       value,
		Confidence:  confidence,
		SubmittedAt: now,
		Reporter:    anchor,
	}
	common.SetSerialized(ctx, rKey, report)

	mKey := metadataKey(feedID)
	mData := storage.Get(ctx, mKey)

	var meta feedMetadata
	if mData == nil {
		meta = feedMetadata{
			UpdateCount: 1,
			FirstSeenAt: now,
			MinReported: value,
			MaxReported: value,
		}

		feeds := common.GetList(ctx, feedsKey)
		feeds = append(feeds, feedID)
		common.SetSerialized(ctx, feedsKey, feeds)
	} else {
		meta = std.Deserialize(mData.([]byte)).(feedMetadata)
		meta.UpdateCount += 1
		if value < meta.MinReported {
			meta.MinReported = value
		}
		if value > meta.MaxReported {
			meta.MaxReported = value
		}
	}
	common.SetSerialized(ctx, mKey, meta)

	runtime.Notify("ReportAnchored", feedID, value, confidence)
	runtime.Notify("FeedMetadataUpdated", feedID, meta.UpdateCount, meta.MinReported, meta.MaxReported)
}

// CurrentWeight returns the feed's report confidence linearly decayed by
// report age: confidence*(period-age)/period, zero once the age reaches
// the eligibility period or when the feed was never reported.
func CurrentWeight(feedID []byte) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, reportKey(feedID))
	if data == nil {
		return 0
	}
	report := std.Deserialize(data.([]byte)).(oracleReport)

	age := runtime.GetTime() - report.SubmittedAt
	if age >= reportEligibilityPeriod {
		return 0
	}

	return report.Confidence * (reportEligibilityPeriod - age) / reportEligibilityPeriod
}

// Stake escrows the validator's deposit under a time lock. Amount
// accumulates over the previous stake once its lock has expired;
// re-staking under an active lock is forbidden. The lock end is only ever
// extended, never shortened. The identity joins the validator registry
// exactly once. A slashed identity can never stake again.
//
// Produces ValidatorStaked notification.
func Stake(amount int, lockDuration int, identity interop.Hash160) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	common.CheckOwnerWitness(identity)

	if amount < minStakeAmount || lockDuration < minLockPeriod {
		panic(ErrNotEligible)
	}

	st, _ := getStake(ctx, identity)
	if st.Slashed {
		panic(ErrNotEligible)
	}

	now := runtime.GetTime()
	if st.Amount > 0 && now < st.LockedUntil {
		panic(ErrStakeLockActive)
	}

	to := runtime.GetExecutingScriptHash()
	if !gas.Transfer(identity, to, amount, nil) {
		panic(ErrTransferFailed)
	}

	st.Amount += amount
	lockEnd := now + lockDuration
	if lockEnd > st.LockedUntil {
		st.LockedUntil = lockEnd
	}
	common.SetSerialized(ctx, stakeKey(identity), st)

	validators := common.GetList(ctx, validatorsKey)
	if !containsBytes(validators, identity) {
		validators = append(validators, identity)
		common.SetSerialized(ctx, validatorsKey, validators)
	}

	runtime.Notify("ValidatorStaked", identity, st.Amount, st.LockedUntil)

	common.ReleaseGuard(ctx)
}

// Slash forfeits the validator's entire stake to the treasury and marks
// the identity as permanently slashed. It can be invoked only by the
// anchor. Slashing an identity with no stake, or one slashed before, is a
// no-op, not an error.
//
// Produces SlashExecuted notification.
func Slash(identity interop.Hash160, reason string) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	anchor := storage.Get(ctx, anchorRoleKey).(interop.Hash160)
	common.CheckRoleWitness(anchor)

	st, ok := getStake(ctx, identity)
	if !ok || st.Amount == 0 || st.Slashed {
		common.ReleaseGuard(ctx)
		return
	}

	amount := st.Amount
	st.Amount = 0
	st.LockedUntil = 0
	st.Slashed = true
	common.SetSerialized(ctx, stakeKey(identity), st)

	treasury := storage.Get(ctx, treasuryRoleKey).(interop.Hash160)
	from := runtime.GetExecutingScriptHash()
	if !gas.Transfer(from, treasury, amount, nil) {
		panic(ErrTransferFailed)
	}

	runtime.Notify("SlashExecuted", identity, amount, reason)

	common.ReleaseGuard(ctx)
}

// Withdraw returns the validator's full stake once the lock has expired
// and zeroes the stake record. The correct-prediction counter survives,
// staking fresh after withdrawal is allowed.
//
// Produces StakeWithdrawn notification.
func Withdraw(identity interop.Hash160) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	common.CheckOwnerWitness(identity)

	st, _ := getStake(ctx, identity)
	if st.Slashed {
		panic(ErrNotEligible)
	}
	if st.Amount == 0 {
		panic(ErrNoStake)
	}
	if runtime.GetTime() < st.LockedUntil {
		panic(ErrLockNotExpired)
	}

	amount := st.Amount
	st.Amount = 0
	st.LockedUntil = 0
	common.SetSerialized(ctx, stakeKey(identity), st)

	from := runtime.GetExecutingScriptHash()
	if !gas.Transfer(from, identity, amount, nil) {
		panic(ErrTransferFailed)
	}

	runtime.Notify("StakeWithdrawn", identity, amount)

	common.ReleaseGuard(ctx)
}

// Endorse attests the validator's support of an unresolved query. A query
// that was never submitted is indistinguishable from a resolved one here.
// The validator must hold an eligible stake under an active lock. Repeated
// endorsement of one query is a no-op, the first one wins. An accepted
// endorsement increments the validator's correct-prediction counter.
//
// Produces ReputationUpdated notification.
func Endorse(queryHash interop.Hash256, identity interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(identity)

	req, ok := getRequest(ctx, requestKey(queryHash))
	if !ok || req.Resolved {
		panic(ErrAlreadyResolved)
	}

	st, _ := getStake(ctx, identity)
	if st.Slashed || st.Amount < stakeEligibilityThreshold || runtime.GetTime() >= st.LockedUntil {
		panic(ErrNotEligible)
	}

	eKey := endorsersKey(queryHash)
	endorsers := common.GetList(ctx, eKey)
	if containsBytes(endorsers, identity) {
		return
	}

	endorsers = append(endorsers, identity)
	common.SetSerialized(ctx, eKey, endorsers)

	st.CorrectPredictions += 1
	common.SetSerialized(ctx, stakeKey(identity), st)

	runtime.Notify("ReputationUpdated", identity, reputationOf(st))
}

// Claim transfers the caller's allocated share of the query bounty and
// returns the transferred amount. With nothing allocated it is a no-op
// returning zero. The claimable entry is zeroed before the transfer.
//
// Produces BountyClaimed notification.
func Claim(queryHash interop.Hash256, identity interop.Hash160) int {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	common.CheckOwnerWitness(identity)

	cKey := claimableKey(queryHash, identity)

	amount := 0
	data := storage.Get(ctx, cKey)
	if data != nil {
		amount = data.(int)
	}
	if amount == 0 {
		common.ReleaseGuard(ctx)
		return 0
	}

	storage.Delete(ctx, cKey)

	from := runtime.GetExecutingScriptHash()
	if !gas.Transfer(from, identity, amount, nil) {
		panic(ErrTransferFailed)
	}

	runtime.Notify("BountyClaimed", queryHash, identity, amount)

	common.ReleaseGuard(ctx)
	return amount
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic("only GAS can be accepted")
	}
}

// Report returns the feed's cached report or a zero record if the feed
// was never reported.
func Report(feedID []byte) oracleReport {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, reportKey(feedID))
	if data != nil {
		return std.Deserialize(data.([]byte)).(oracleReport)
	}

	return oracleReport{}
}

// Metadata returns the feed's accumulated aggregates or a zero record if
// the feed was never reported.
func Metadata(feedID []byte) feedMetadata {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, metadataKey(feedID))
	if data != nil {
		return std.Deserialize(data.([]byte)).(feedMetadata)
	}

	return feedMetadata{}
}

// Snapshot returns the query's consensus snapshot or a zero record if the
// query is not resolved yet.
func Snapshot(queryHash interop.Hash256) consensusSnapshot {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, snapshotKey(queryHash))
	if data != nil {
		return std.Deserialize(data.([]byte)).(consensusSnapshot)
	}

	return consensusSnapshot{}
}

// InferenceStatus returns the registered request or a zero record if the
// query hash is unknown.
func InferenceStatus(queryHash interop.Hash256) inferenceRequest {
	ctx := storage.GetReadOnlyContext()

	req, _ := getRequest(ctx, requestKey(queryHash))
	return req
}

// PendingCount returns the number of queries on the pending list.
func PendingCount() int {
	ctx := storage.GetReadOnlyContext()
	return len(common.GetList(ctx, pendingQueriesKey))
}

// Validators returns identities that ever staked, in registration order.
func Validators() [][]byte {
	ctx := storage.GetReadOnlyContext()
	return common.GetList(ctx, validatorsKey)
}

// ValidatorCount returns the size of the validator registry.
func ValidatorCount() int {
	ctx := storage.GetReadOnlyContext()
	return len(common.GetList(ctx, validatorsKey))
}

// Feeds returns identifiers of all feeds that ever accepted a report.
func Feeds() [][]byte {
	ctx := storage.GetReadOnlyContext()
	return common.GetList(ctx, feedsKey)
}

// Endorsers returns the query's endorser identities in endorsement order.
func Endorsers(queryHash interop.Hash256) [][]byte {
	ctx := storage.GetReadOnlyContext()
	return common.GetList(ctx, endorsersKey(queryHash))
}

// EndorserCount returns the number of endorsers of the query.
func EndorserCount(queryHash interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	return len(common.GetList(ctx, endorsersKey(queryHash)))
}

// Claimable returns the endorser's unclaimed share of the query bounty.
func Claimable(queryHash interop.Hash256, identity interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, claimableKey(queryHash, identity))
	if data != nil {
		return data.(int)
	}

	return 0
}

// StakeOf returns the identity's stake record or a zero record if the
// identity never staked.
func StakeOf(identity interop.Hash160) validatorStake {
	ctx := storage.GetReadOnlyContext()

	st, _ := getStake(ctx, identity)
	return st
}

// Reputation returns the validator's score derived from the current stake
// state: correctPredictions*quorumBits + amount/oneUnit, zero with nothing
// staked. The score is recomputed on every call, it is never cached.
func Reputation(identity interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	st, _ := getStake(ctx, identity)
	return reputationOf(st)
}

// QueryID derives the canonical query hash of an opaque payload. It is a
// deterministic canonicalization utility, not a security boundary.
func QueryID(payload []byte) interop.Hash256 {
	return crypto.Sha256(append([]byte(queryIDSeed), payload...))
}

// Queries returns an iterator over hashes of all registered queries.
func Queries() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{requestPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Roles returns the three role identities the contract was deployed with.
func Roles() roleConfig {
	ctx := storage.GetReadOnlyContext()

	return roleConfig{
		Anchor:   storage.Get(ctx, anchorRoleKey).(interop.Hash160),
		Hub:      storage.Get(ctx, hubRoleKey).(interop.Hash160),
		Treasury: storage.Get(ctx, treasuryRoleKey).(interop.Hash160),
	}
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func allocateBounty(ctx storage.Context, queryHash interop.Hash256, bounty int, endorsers [][]byte) {
	share := bounty / len(endorsers)
	remainder := bounty - share*len(endorsers)

	for i := 0; i < len(endorsers); i++ {
		amount := share
		if i == 0 {
			amount += remainder
		}

		storage.Put(ctx, claimableKey(queryHash, endorsers[i]), amount)

		st, _ := getStake(ctx, endorsers[i])
		runtime.Notify("ReputationUpdated", interop.Hash160(endorsers[i]), reputationOf(st))
	}
}

func reputationOf(st validatorStake) int {
	if st.Amount == 0 {
		return 0
	}

	return st.CorrectPredictions*quorumBits + st.Amount/oneUnit
}

func getRequest(ctx storage.Context, key []byte) (inferenceRequest, bool) {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(inferenceRequest), true
	}

	return inferenceRequest{}, false
}

func getStake(ctx storage.Context, identity interop.Hash160) (validatorStake, bool) {
	data := storage.Get(ctx, stakeKey(identity))
	if data != nil {
		return std.Deserialize(data.([]byte)).(validatorStake), true
	}

	return validatorStake{}, false
}

func containsBytes(lst [][]byte, e []byte) bool {
	for i := 0; i < len(lst); i++ {
		if common.BytesEqual(lst[i], e) {
			return true
		}
	}

	return false
}

func requestKey(queryHash interop.Hash256) []byte {
	return append([]byte{requestPrefix}, queryHash...)
}

func endorsersKey(queryHash interop.Hash256) []byte {
	return append([]byte{endorsersPrefix}, queryHash...)
}

func snapshotKey(queryHash interop.Hash256) []byte {
	return append([]byte{snapshotPrefix}, queryHash...)
}

func claimableKey(queryHash interop.Hash256, identity interop.Hash160) []byte {
	key := append([]byte{claimablePrefix}, queryHash...)
	return append(key, identity...)
}

func reportKey(feedID []byte) []byte {
	return append([]byte{reportPrefix}, feedID...)
}

func metadataKey(feedID []byte) []byte {
	return append([]byte{metadataPrefix}, feedID...)
}

func stakeKey(identity interop.Hash160) []byte {
	return append([]byte{stakePrefix}, identity...)
}
