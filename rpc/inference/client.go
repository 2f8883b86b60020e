// Package inference contains RPC wrappers for the InferNet Inference
// contract.
package inference

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// InferenceRequest is a contract-specific inference request record.
type InferenceRequest struct {
	Requester    util.Uint160
	SubmittedAt  *big.Int
	Bounty       *big.Int
	Resolved     bool
	ResultDigest []byte
}

// OracleReport is a contract-specific cached feed report.
type OracleReport struct {
	Value       *big.Int
	Confidence  *big.Int
	SubmittedAt *big.Int
	Reporter    util.Uint160
}

// FeedMetadata is a contract-specific accumulated feed aggregate.
type FeedMetadata struct {
	UpdateCount *big.Int
	FirstSeenAt *big.Int
	MinReported *big.Int
	MaxReported *big.Int
}

// ValidatorStake is a contract-specific stake record.
type ValidatorStake struct {
	Amount             *big.Int
	LockedUntil        *big.Int
	Slashed            bool
	CorrectPredictions *big.Int
}

// ConsensusSnapshot is a contract-specific resolution snapshot.
type ConsensusSnapshot struct {
	EndorserCount *big.Int
	ResolvedAt    *big.Int
	ResultDigest  []byte
}

// RoleConfig groups the three role identities of the contract.
type RoleConfig struct {
	Anchor   util.Uint160
	Hub      util.Uint160
	Treasury util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader

	actor Actor
}

// NewReader creates an instance of ContractReader using provided contract
// hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker: invoker, hash: hash}
}

// New creates an instance of Contract using provided contract hash and
// the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{invoker: actor, hash: hash}, actor}
}

// Report invokes `report` method of contract.
func (c *ContractReader) Report(feedID []byte) (*OracleReport, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "report", feedID))
	if err != nil {
		return nil, err
	}
	return oracleReportFromItem(itm)
}

// Metadata invokes `metadata` method of contract.
func (c *ContractReader) Metadata(feedID []byte) (*FeedMetadata, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "metadata", feedID))
	if err != nil {
		return nil, err
	}
	return feedMetadataFromItem(itm)
}

// Snapshot invokes `snapshot` method of contract.
func (c *ContractReader) Snapshot(queryHash util.Uint256) (*ConsensusSnapshot, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "snapshot", queryHash))
	if err != nil {
		return nil, err
	}
	return consensusSnapshotFromItem(itm)
}

// InferenceStatus invokes `inferenceStatus` method of contract.
func (c *ContractReader) InferenceStatus(queryHash util.Uint256) (*InferenceRequest, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "inferenceStatus", queryHash))
	if err != nil {
		return nil, err
	}
	return inferenceRequestFromItem(itm)
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(identity util.Uint160) (*ValidatorStake, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "stakeOf", identity))
	if err != nil {
		return nil, err
	}
	return validatorStakeFromItem(itm)
}

// Roles invokes `roles` method of contract.
func (c *ContractReader) Roles() (*RoleConfig, error) {
	itm, err := unwrap.Item(c.invoker.Call(c.hash, "roles"))
	if err != nil {
		return nil, err
	}

	arr, err := structItems(itm, 3)
	if err != nil {
		return nil, err
	}

	var res RoleConfig
	if res.Anchor, err = hash160FromItem(arr[0]); err != nil {
		return nil, fmt.Errorf("field Anchor: %w", err)
	}
	if res.Hub, err = hash160FromItem(arr[1]); err != nil {
		return nil, fmt.Errorf("field Hub: %w", err)
	}
	if res.Treasury, err = hash160FromItem(arr[2]); err != nil {
		return nil, fmt.Errorf("field Treasury: %w", err)
	}
	return &res, nil
}

// PendingCount invokes `pendingCount` method of contract.
func (c *ContractReader) PendingCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingCount"))
}

// ValidatorCount invokes `validatorCount` method of contract.
func (c *ContractReader) ValidatorCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "validatorCount"))
}

// Validators invokes `validators` method of contract.
func (c *ContractReader) Validators() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "validators"))
}

// Feeds invokes `feeds` method of contract.
func (c *ContractReader) Feeds() ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "feeds"))
}

// Endorsers invokes `endorsers` method of contract.
func (c *ContractReader) Endorsers(queryHash util.Uint256) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "endorsers", queryHash))
}

// EndorserCount invokes `endorserCount` method of contract.
func (c *ContractReader) EndorserCount(queryHash util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "endorserCount", queryHash))
}

// Claimable invokes `claimable` method of contract.
func (c *ContractReader) Claimable(queryHash util.Uint256, identity util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "claimable", queryHash, identity))
}

// Reputation invokes `reputation` method of contract.
func (c *ContractReader) Reputation(identity util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputation", identity))
}

// CurrentWeight invokes `currentWeight` method of contract.
func (c *ContractReader) CurrentWeight(feedID []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentWeight", feedID))
}

// QueryID invokes `queryID` method of contract.
func (c *ContractReader) QueryID(payload []byte) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "queryID", payload))
}

// Queries invokes `queries` method of contract, returning an iterator
// session over hashes of all registered queries.
func (c *ContractReader) Queries() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "queries"))
}

// QueriesExpanded is similar to Queries (uses the same contract method),
// but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the
// specified number of result items from the iterator right in the VM and
// return them to you.
func (c *ContractReader) QueriesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "queries", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Submit creates a transaction invoking `submit` method of the contract
// and sends it to the network.
func (c *Contract) Submit(queryHash util.Uint256, bounty, escrow int64, requester util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submit", queryHash, bounty, escrow, requester)
}

// Resolve creates a transaction invoking `resolve` method of the contract
// and sends it to the network.
func (c *Contract) Resolve(queryHash, resultDigest util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolve", queryHash, resultDigest)
}

// Anchor creates a transaction invoking `anchor` method of the contract
// and sends it to the network.
func (c *Contract) Anchor(feedID []byte, value, confidence int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "anchor", feedID, value, confidence)
}

// Stake creates a transaction invoking `stake` method of the contract
// and sends it to the network.
func (c *Contract) Stake(amount, lockDuration int64, identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", amount, lockDuration, identity)
}

// Slash creates a transaction invoking `slash` method of the contract
// and sends it to the network.
func (c *Contract) Slash(identity util.Uint160, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "slash", identity, reason)
}

// Withdraw creates a transaction invoking `withdraw` method of the
// contract and sends it to the network.
func (c *Contract) Withdraw(identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", identity)
}

// Endorse creates a transaction invoking `endorse` method of the contract
// and sends it to the network.
func (c *Contract) Endorse(queryHash util.Uint256, identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "endorse", queryHash, identity)
}

// Claim creates a transaction invoking `claim` method of the contract
// and sends it to the network.
func (c *Contract) Claim(queryHash util.Uint256, identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", queryHash, identity)
}

func structItems(itm stackitem.Item, n int) ([]stackitem.Item, error) {
	arr, ok := itm.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, fmt.Errorf("wrong number of structure elements: %d", len(arr))
	}

	return arr, nil
}

func hash160FromItem(itm stackitem.Item) (util.Uint160, error) {
	b, err := itm.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}

	return util.Uint160DecodeBytesBE(b)
}

func inferenceRequestFromItem(itm stackitem.Item) (*InferenceRequest, error) {
	arr, err := structItems(itm, 5)
	if err != nil {
		return nil, err
	}

	var res InferenceRequest
	if res.Requester, err = hash160FromItem(arr[0]); err != nil {
		return nil, fmt.Errorf("field Requester: %w", err)
	}
	if res.SubmittedAt, err = arr[1].TryInteger(); err != nil {
		return nil, fmt.Errorf("field SubmittedAt: %w", err)
	}
	if res.Bounty, err = arr[2].TryInteger(); err != nil {
		return nil, fmt.Errorf("field Bounty: %w", err)
	}
	if res.Resolved, err = arr[3].TryBool(); err != nil {
		return nil, fmt.Errorf("field Resolved: %w", err)
	}
	if res.ResultDigest, err = arr[4].TryBytes(); err != nil {
		return nil, fmt.Errorf("field ResultDigest: %w", err)
	}
	return &res, nil
}

func oracleReportFromItem(itm stackitem.Item) (*OracleReport, error) {
	arr, err := structItems(itm, 4)
	if err != nil {
		return nil, err
	}

	var res OracleReport
	if res.Value, err = arr[0].TryInteger(); err != nil {
		return nil, fmt.Errorf("field Value: %w", err)
	}
	if res.Confidence, err = arr[1].TryInteger(); err != nil {
		return nil, fmt.Errorf("field Confidence: %w", err)
	}
	if res.SubmittedAt, err = arr[2].TryInteger(); err != nil {
		return nil, fmt.Errorf("field SubmittedAt: %w", err)
	}

	// Reporter is empty until the feed sees its first report.
	b, err := arr[3].TryBytes()
	if err != nil {
		return nil, fmt.Errorf("field Reporter: %w", err)
	}
	if len(b) != 0 {
		if res.Reporter, err = util.Uint160DecodeBytesBE(b); err != nil {
			return nil, fmt.Errorf("field Reporter: %w", err)
		}
	}
	return &res, nil
}

func feedMetadataFromItem(itm stackitem.Item) (*FeedMetadata, error) {
	arr, err := structItems(itm, 4)
	if err != nil {
		return nil, err
	}

	var res FeedMetadata
	if res.UpdateCount, err = arr[0].TryInteger(); err != nil {
		return nil, fmt.Errorf("field UpdateCount: %w", err)
	}
	if res.FirstSeenAt, err = arr[1].TryInteger(); err != nil {
		return nil, fmt.Errorf("field FirstSeenAt: %w", err)
	}
	if res.MinReported, err = arr[2].TryInteger(); err != nil {
		return nil, fmt.Errorf("field MinReported: %w", err)
	}
	if res.MaxReported, err = arr[3].TryInteger(); err != nil {
		return nil, fmt.Errorf("field MaxReported: %w", err)
	}
	return &res, nil
}

func validatorStakeFromItem(itm stackitem.Item) (*ValidatorStake, error) {
	arr, err := structItems(itm, 4)
	if err != nil {
		return nil, err
	}

	var res ValidatorStake
	if res.Amount, err = arr[0].TryInteger(); err != nil {
		return nil, fmt.Errorf("field Amount: %w", err)
	}
	if res.LockedUntil, err = arr[1].TryInteger(); err != nil {
		return nil, fmt.Errorf("field LockedUntil: %w", err)
	}
	if res.Slashed, err = arr[2].TryBool(); err != nil {
		return nil, fmt.Errorf("field Slashed: %w", err)
	}
	if res.CorrectPredictions, err = arr[3].TryInteger(); err != nil {
		return nil, fmt.Errorf("field CorrectPredictions: %w", err)
	}
	return &res, nil
}

func consensusSnapshotFromItem(itm stackitem.Item) (*ConsensusSnapshot, error) {
	arr, err := structItems(itm, 3)
	if err != nil {
		return nil, err
	}

	var res ConsensusSnapshot
	if res.EndorserCount, err = arr[0].TryInteger(); err != nil {
		return nil, fmt.Errorf("field EndorserCount: %w", err)
	}
	if res.ResolvedAt, err = arr[1].TryInteger(); err != nil {
		return nil, fmt.Errorf("field ResolvedAt: %w", err)
	}
	if res.ResultDigest, err = arr[2].TryBytes(); err != nil {
		return nil, fmt.Errorf("field ResultDigest: %w", err)
	}
	return &res, nil
}
