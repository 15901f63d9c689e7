package vote

import (
	"encoding/binary"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/izqui/govote/codec"
	"github.com/izqui/govote/pubsub"
	"github.com/izqui/govote/script"
	sdk "github.com/izqui/govote/types"
)

const scriptCacheSize = 256

// Keeper is the voting engine: it owns the vote registry, drives lifecycle
// transitions, consults the power oracle at creation time and delegates
// execution to the script executor.
type Keeper struct {
	cdc       *codec.Codec
	storeKey  sdk.StoreKey
	oracle    TokenPowerOracle
	executor  *script.Executor
	codespace sdk.CodespaceType

	// decoded scripts by vote id; scripts are validated at creation and
	// immutable afterwards
	scriptCache *lru.Cache

	pub     *pubsub.Publisher
	hooks   VoteHooks
	metrics *Metrics
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, oracle TokenPowerOracle,
	executor *script.Executor, codespace sdk.CodespaceType) Keeper {

	cache, err := lru.New(scriptCacheSize)
	if err != nil {
		panic(err)
	}
	return Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		oracle:      oracle,
		executor:    executor,
		codespace:   codespace,
		scriptCache: cache,
		metrics:     NopMetrics(),
	}
}

// SetHooks sets the lifecycle hooks. Must be called before the first
// operation.
func (keeper *Keeper) SetHooks(hooks VoteHooks) *Keeper {
	if keeper.hooks != nil {
		panic("cannot set vote hooks twice")
	}
	keeper.hooks = hooks
	return keeper
}

// SetPublisher wires the event publisher. A nil publisher disables events.
func (keeper *Keeper) SetPublisher(pub *pubsub.Publisher) *Keeper {
	keeper.pub = pub
	return keeper
}

// SetMetrics replaces the default nop metrics.
func (keeper *Keeper) SetMetrics(metrics *Metrics) *Keeper {
	keeper.metrics = metrics
	return keeper
}

//-----------------------------------------------------------
// Procedure

func (keeper Keeper) GetProcedure(ctx sdk.Context) VotingProcedure {
	kvStore := ctx.KVStore(keeper.storeKey)
	bz := kvStore.Get(ProcedureKey)
	if bz == nil {
		panic("voting procedure not set, InitGenesis was never run")
	}
	var procedure VotingProcedure
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &procedure)
	return procedure
}

func (keeper Keeper) setProcedure(ctx sdk.Context, procedure VotingProcedure) {
	kvStore := ctx.KVStore(keeper.storeKey)
	kvStore.Set(ProcedureKey, keeper.cdc.MustMarshalBinaryLengthPrefixed(procedure))
}

// ChangeProcedure overwrites the process-wide support and quorum thresholds.
// Votes already created keep their snapshotted copies.
func (keeper Keeper) ChangeProcedure(ctx sdk.Context, supportRequired, minAcceptQuorum sdk.Dec) sdk.Error {
	procedure := keeper.GetProcedure(ctx)
	procedure.SupportRequired = supportRequired
	procedure.MinAcceptQuorum = minAcceptQuorum
	if err := procedure.validate(); err != nil {
		return err
	}
	keeper.setProcedure(ctx, procedure)

	ctx.Logger().With("module", "x/vote").Info("voting procedure changed",
		"support", supportRequired.String(), "quorum", minAcceptQuorum.String())
	keeper.publish(ProcedureChangedEvent{
		SupportRequired: supportRequired,
		MinAcceptQuorum: minAcceptQuorum,
	})
	keeper.metrics.ProcedureChanges.Inc()
	return nil
}

//-----------------------------------------------------------
// Vote registry

// GetVote returns the vote with the given id.
func (keeper Keeper) GetVote(ctx sdk.Context, voteID int64) (Vote, bool) {
	kvStore := ctx.KVStore(keeper.storeKey)
	bz := kvStore.Get(buildVoteKey(voteID))
	if bz == nil {
		return Vote{}, false
	}
	var vote Vote
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &vote)
	return vote, true
}

func (keeper Keeper) setVote(ctx sdk.Context, vote Vote) {
	kvStore := ctx.KVStore(keeper.storeKey)
	kvStore.Set(buildVoteKey(vote.VoteID), keeper.cdc.MustMarshalBinaryLengthPrefixed(vote))
}

// GetVotes returns every vote ever created, ascending by id. Votes are never
// deleted; the registry is the audit log.
func (keeper Keeper) GetVotes(ctx sdk.Context) []Vote {
	kvStore := ctx.KVStore(keeper.storeKey)
	iterator := sdk.KVStorePrefixIterator(kvStore, PrefixForVoteKey)
	defer iterator.Close()

	var votes []Vote
	for ; iterator.Valid(); iterator.Next() {
		var vote Vote
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &vote)
		votes = append(votes, vote)
	}
	return votes
}

func (keeper Keeper) getNewVoteID(ctx sdk.Context) int64 {
	kvStore := ctx.KVStore(keeper.storeKey)
	voteID := int64(1)
	if bz := kvStore.Get(NextVoteIDKey); bz != nil {
		voteID = int64(binary.BigEndian.Uint64(bz))
	}
	bz := make([]byte, voteIDLength)
	binary.BigEndian.PutUint64(bz, uint64(voteID+1))
	kvStore.Set(NextVoteIDKey, bz)
	return voteID
}

// SetInitialVoteID sets the id the next created vote receives. Used by
// InitGenesis only.
func (keeper Keeper) SetInitialVoteID(ctx sdk.Context, voteID int64) sdk.Error {
	kvStore := ctx.KVStore(keeper.storeKey)
	if kvStore.Get(NextVoteIDKey) != nil {
		return ErrInvalidState(keeper.codespace, "initial vote id already set")
	}
	bz := make([]byte, voteIDLength)
	binary.BigEndian.PutUint64(bz, uint64(voteID))
	kvStore.Set(NextVoteIDKey, bz)
	return nil
}

func (keeper Keeper) peekNextVoteID(ctx sdk.Context) int64 {
	kvStore := ctx.KVStore(keeper.storeKey)
	if bz := kvStore.Get(NextVoteIDKey); bz != nil {
		return int64(binary.BigEndian.Uint64(bz))
	}
	return 1
}

//-----------------------------------------------------------
// Ballots

// GetBallot returns the principal's current ballot on the vote. Presence
// means "has voted".
func (keeper Keeper) GetBallot(ctx sdk.Context, voteID int64, voter sdk.AccAddress) (Ballot, bool) {
	kvStore := ctx.KVStore(keeper.storeKey)
	bz := kvStore.Get(buildBallotKey(voteID, voter))
	if bz == nil {
		return Ballot{}, false
	}
	var ballot Ballot
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &ballot)
	return ballot, true
}

func (keeper Keeper) setBallot(ctx sdk.Context, ballot Ballot) {
	kvStore := ctx.KVStore(keeper.storeKey)
	kvStore.Set(buildBallotKey(ballot.VoteID, ballot.Voter), keeper.cdc.MustMarshalBinaryLengthPrefixed(ballot))
}

// GetBallots returns every ballot recorded on the vote.
func (keeper Keeper) GetBallots(ctx sdk.Context, voteID int64) []Ballot {
	kvStore := ctx.KVStore(keeper.storeKey)
	iterator := sdk.KVStorePrefixIterator(kvStore, buildBallotKeyPrefix(voteID))
	defer iterator.Close()

	var ballots []Ballot
	for ; iterator.Valid(); iterator.Next() {
		var ballot Ballot
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &ballot)
		ballots = append(ballots, ballot)
	}
	return ballots
}

//-----------------------------------------------------------
// Lifecycle operations

// CreateVote validates and registers a new vote. The snapshot checkpoint is
// the most recently finalized one, not the in-flight one this very
// operation is forming. If the creator holds power at the snapshot, a
// support ballot is cast on its behalf as part of creation, which may
// execute the vote immediately.
func (keeper Keeper) CreateVote(ctx sdk.Context, creator sdk.AccAddress, scriptBz []byte, metadata string) (int64, sdk.Error) {
	decoded, err := script.Decode(scriptBz)
	if err != nil {
		return 0, err
	}

	snapshot := keeper.oracle.CurrentCheckpoint(ctx) - 1
	totalPower := keeper.oracle.TotalPowerAt(ctx, snapshot)
	if totalPower <= 0 {
		return 0, ErrInvalidState(keeper.codespace,
			fmt.Sprintf("no total power at snapshot checkpoint %d", snapshot))
	}

	procedure := keeper.GetProcedure(ctx)
	voteID := keeper.getNewVoteID(ctx)
	vote := Vote{
		VoteID:             voteID,
		Creator:            creator,
		StartTime:          ctx.BlockTime(),
		VotingPeriod:       procedure.VotingPeriod,
		SnapshotCheckpoint: snapshot,
		SupportRequired:    procedure.SupportRequired,
		MinAcceptQuorum:    procedure.MinAcceptQuorum,
		TotalPower:         totalPower,
		Script:             scriptBz,
		Metadata:           metadata,
	}
	keeper.setVote(ctx, vote)
	keeper.scriptCache.Add(voteID, decoded)

	ctx.Logger().With("module", "x/vote").Info("vote created",
		"vote-id", voteID, "creator", creator.String(), "snapshot", snapshot)
	keeper.publish(VoteCreatedEvent{VoteID: voteID, Creator: creator, Metadata: metadata})
	if hookErr := keeper.OnVoteCreated(ctx, vote); hookErr != nil {
		return 0, sdk.ErrInternal(hookErr.Error())
	}
	keeper.metrics.VotesCreated.Inc()

	if keeper.oracle.PowerOfAt(ctx, creator, snapshot) > 0 {
		if err := keeper.CastBallot(ctx, voteID, creator, true, true); err != nil {
			return 0, err
		}
	}
	return voteID, nil
}

// CastBallot records or changes a principal's ballot. A prior ballot's
// contribution is subtracted before the new one is added, so re-voting never
// double-counts. With autoExecute, a tally that decides the outcome closes
// and executes the vote synchronously in this same call.
func (keeper Keeper) CastBallot(ctx sdk.Context, voteID int64, voter sdk.AccAddress, supports bool, autoExecute bool) sdk.Error {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return ErrUnknownVote(keeper.codespace, voteID)
	}
	if !vote.IsOpen(ctx.BlockTime()) {
		return ErrVoteClosed(keeper.codespace, voteID)
	}

	power := keeper.oracle.PowerOfAt(ctx, voter, vote.SnapshotCheckpoint)
	if power == 0 {
		return ErrNoVotingPower(keeper.codespace,
			fmt.Sprintf("%s has no voting power at checkpoint %d", voter.String(), vote.SnapshotCheckpoint))
	}

	if prior, voted := keeper.GetBallot(ctx, voteID, voter); voted {
		if prior.Support {
			vote.Yea -= prior.Power
		} else {
			vote.Nay -= prior.Power
		}
	}
	if supports {
		vote.Yea += power
	} else {
		vote.Nay += power
	}

	keeper.setVote(ctx, vote)
	keeper.setBallot(ctx, Ballot{VoteID: voteID, Voter: voter, Support: supports, Power: power})

	keeper.publish(BallotCastEvent{
		VoteID:  voteID,
		Voter:   voter,
		Support: supports,
		Power:   power,
		Yea:     vote.Yea,
		Nay:     vote.Nay,
	})
	keeper.metrics.BallotsCast.Inc()

	if autoExecute && canExecuteVote(vote, ctx.BlockTime()) {
		return keeper.executeVote(ctx, vote)
	}
	return nil
}

// CanExecute reports whether the vote could be executed right now.
func (keeper Keeper) CanExecute(ctx sdk.Context, voteID int64) bool {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return false
	}
	return canExecuteVote(vote, ctx.BlockTime())
}

// ExecuteVote is the explicit execution path, callable by anyone once the
// vote is decided.
func (keeper Keeper) ExecuteVote(ctx sdk.Context, voteID int64) sdk.Error {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return ErrUnknownVote(keeper.codespace, voteID)
	}
	if vote.Executed {
		return ErrAlreadyExecuted(keeper.codespace, voteID)
	}
	if !canExecuteVote(vote, ctx.BlockTime()) {
		return ErrCannotExecute(keeper.codespace, voteID)
	}
	return keeper.executeVote(ctx, vote)
}

// executeVote closes the vote, flips the executed flag and runs the script.
// The flag flip and the script side effects are buffered in a cache context
// and written through together: a failing action leaves the vote exactly as
// it was before the call.
//
// CONTRACT: canExecuteVote already checked.
func (keeper Keeper) executeVote(ctx sdk.Context, vote Vote) sdk.Error {
	decoded, err := keeper.decodedScript(vote)
	if err != nil {
		return err
	}

	cacheCtx, writeCache := ctx.CacheContext()
	vote.Executed = true
	keeper.setVote(cacheCtx, vote)
	if err := keeper.executor.Execute(cacheCtx, decoded); err != nil {
		return err
	}
	writeCache()

	ctx.Logger().With("module", "x/vote").Info("vote executed",
		"vote-id", vote.VoteID, "yea", vote.Yea, "nay", vote.Nay)
	keeper.publish(VoteExecutedEvent{VoteID: vote.VoteID})
	if hookErr := keeper.OnVoteExecuted(ctx, vote); hookErr != nil {
		// the state change is already committed; observers must not undo it
		ctx.Logger().With("module", "x/vote").Error("vote executed hook failed",
			"vote-id", vote.VoteID, "err", hookErr.Error())
	}
	keeper.metrics.VotesExecuted.Inc()
	return nil
}

//-----------------------------------------------------------
// Query helpers

// GetVoteMetadata returns the vote's opaque descriptive string.
func (keeper Keeper) GetVoteMetadata(ctx sdk.Context, voteID int64) (string, sdk.Error) {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return "", ErrUnknownVote(keeper.codespace, voteID)
	}
	return vote.Metadata, nil
}

// GetVoteAction returns the vote's action at the given index.
func (keeper Keeper) GetVoteAction(ctx sdk.Context, voteID int64, index int) (script.Action, sdk.Error) {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return script.Action{}, ErrUnknownVote(keeper.codespace, voteID)
	}
	decoded, err := keeper.decodedScript(vote)
	if err != nil {
		return script.Action{}, err
	}
	if index < 0 || index >= len(decoded) {
		return script.Action{}, sdk.ErrUnknownRequest(
			fmt.Sprintf("vote %d has %d actions, requested index %d", voteID, len(decoded), index))
	}
	return decoded[index], nil
}

// GetVoteActionCount returns the number of actions in the vote's script.
func (keeper Keeper) GetVoteActionCount(ctx sdk.Context, voteID int64) (int, sdk.Error) {
	vote, ok := keeper.GetVote(ctx, voteID)
	if !ok {
		return 0, ErrUnknownVote(keeper.codespace, voteID)
	}
	decoded, err := keeper.decodedScript(vote)
	if err != nil {
		return 0, err
	}
	return len(decoded), nil
}

func (keeper Keeper) decodedScript(vote Vote) (script.Script, sdk.Error) {
	if cached, ok := keeper.scriptCache.Get(vote.VoteID); ok {
		return cached.(script.Script), nil
	}
	decoded, err := script.Decode(vote.Script)
	if err != nil {
		// scripts are validated at creation; reaching this means store corruption
		return nil, err
	}
	keeper.scriptCache.Add(vote.VoteID, decoded)
	return decoded, nil
}

func (keeper Keeper) publish(event pubsub.Event) {
	if keeper.pub != nil {
		keeper.pub.Publish(event)
	}
}
