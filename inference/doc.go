/*
Inference contract is a contract deployed in InferNet sidechain.

Inference contract coordinates three protocols on top of one GAS-backed
ledger: bounty-backed inference queries, oracle feed anchoring and
validator staking with endorsement consensus. Requesters escrow a bounty
when submitting a query; staked validators endorse outstanding queries;
the hub resolves a query, snapshotting the consensus and either refunding
the requester or allocating bounty shares that endorsers later pull via
Claim. The anchor maintains last-value-wins oracle reports per feed and
may slash misbehaving validators, forfeiting their stake to the treasury.

Every value-moving method executes under a contract-wide reentrancy guard:
a nested invocation from within a transfer callback faults immediately and
leaves the ledger untouched.

# Contract notifications

InferenceSubmitted notification. This notification is produced when a new
query is registered by invoking Submit method.

	InferenceSubmitted
	  - name: queryHash
	    type: Hash256
	  - name: requester
	    type: Hash160
	  - name: bounty
	    type: Integer

ReportAnchored notification. This notification is produced when a feed
report is accepted by invoking Anchor method.

	ReportAnchored
	  - name: feedID
	    type: ByteArray
	  - name: value
	    type: Integer
	  - name: confidence
	    type: Integer

FeedMetadataUpdated notification. This notification is produced together
with ReportAnchored and carries the widened feed aggregates.

	FeedMetadataUpdated
	  - name: feedID
	    type: ByteArray
	  - name: updateCount
	    type: Integer
	  - name: minReported
	    type: Integer
	  - name: maxReported
	    type: Integer

ValidatorStaked notification. This notification is produced when a
validator deposit is accepted by invoking Stake method.

	ValidatorStaked
	  - name: identity
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: lockedUntil
	    type: Integer

SnapshotRecorded notification. This notification is produced when a query
is finalized by invoking Resolve method.

	SnapshotRecorded
	  - name: queryHash
	    type: Hash256
	  - name: endorserCount
	    type: Integer
	  - name: resolvedAt
	    type: Integer

ConsensusReached notification. This notification is produced after the
bounty of a resolved query is refunded or allocated.

	ConsensusReached
	  - name: queryHash
	    type: Hash256
	  - name: resultDigest
	    type: Hash256
	  - name: endorserCount
	    type: Integer

ReputationUpdated notification. This notification is produced when a
validator's derived score is recomputed on endorsement or allocation.

	ReputationUpdated
	  - name: identity
	    type: Hash160
	  - name: score
	    type: Integer

SlashExecuted notification. This notification is produced when a
validator's stake is forfeited by invoking Slash method.

	SlashExecuted
	  - name: identity
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: reason
	    type: String

BountyClaimed notification. This notification is produced when an endorser
pulls an allocated share by invoking Claim method.

	BountyClaimed
	  - name: queryHash
	    type: Hash256
	  - name: identity
	    type: Hash160
	  - name: amount
	    type: Integer

StakeWithdrawn notification. This notification is produced when a stake is
returned to its validator by invoking Withdraw method.

	StakeWithdrawn
	  - name: identity
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package inference
