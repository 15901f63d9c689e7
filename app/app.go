package app

import (
	"time"

	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/izqui/govote/auth"
	"github.com/izqui/govote/codec"
	"github.com/izqui/govote/oracle"
	"github.com/izqui/govote/pubsub"
	"github.com/izqui/govote/script"
	"github.com/izqui/govote/store"
	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

const appName = "govote"

// GovoteApp wires stores, keepers and the msg handler into one process.
// Operations run one at a time against a cache context and commit on
// success, matching the serialized single-writer execution model.
type GovoteApp struct {
	Logger log.Logger
	Cdc    *codec.Codec

	db dbm.DB
	ms *store.CommitMultiStore

	keyVote   *sdk.KVStoreKey
	keyOracle *sdk.KVStoreKey
	keyAuth   *sdk.KVStoreKey

	OracleKeeper oracle.Keeper
	AuthKeeper   auth.Keeper
	VoteKeeper   vote.Keeper
	Forwarder    vote.Forwarder
	Executor     *script.Executor
	Publisher    *pubsub.Publisher

	handler sdk.Handler
}

// MakeCodec registers every concrete type of the engine.
func MakeCodec() *codec.Codec {
	cdc := codec.New()
	vote.RegisterCodec(cdc)
	return cdc
}

func NewGovoteApp(logger log.Logger, db dbm.DB) (*GovoteApp, error) {
	cdc := MakeCodec()

	app := &GovoteApp{
		Logger:    logger,
		Cdc:       cdc,
		db:        db,
		ms:        store.NewCommitMultiStore(db),
		keyVote:   sdk.NewKVStoreKey("vote"),
		keyOracle: sdk.NewKVStoreKey("oracle"),
		keyAuth:   sdk.NewKVStoreKey("auth"),
	}

	app.ms.MountStore(app.keyVote)
	app.ms.MountStore(app.keyOracle)
	app.ms.MountStore(app.keyAuth)
	if err := app.ms.LoadLatestVersion(); err != nil {
		return nil, err
	}

	app.Executor = script.NewExecutor()
	app.Publisher = pubsub.NewPublisher(appName+"-events", logger)

	app.OracleKeeper = oracle.NewKeeper(app.keyOracle, oracle.DefaultCodespace)
	app.AuthKeeper = auth.NewKeeper(app.keyAuth)
	app.VoteKeeper = vote.NewKeeper(cdc, app.keyVote, app.OracleKeeper, app.Executor, vote.DefaultCodespace)
	app.VoteKeeper.SetPublisher(app.Publisher)
	app.Forwarder = vote.NewForwarder(app.VoteKeeper, app.AuthKeeper)

	app.handler = vote.NewHandler(app.VoteKeeper, app.AuthKeeper)
	return app, nil
}

// NewContext returns a root context at the caller-visible current time.
func (app *GovoteApp) NewContext() sdk.Context {
	return sdk.NewContext(app.ms, time.Now(), app.Logger)
}

// NewContextAt returns a root context at an explicit time, used by tests and
// replays.
func (app *GovoteApp) NewContextAt(t time.Time) sdk.Context {
	return sdk.NewContext(app.ms, t, app.Logger)
}

// InitGenesis initializes engine parameters on a fresh database and commits.
func (app *GovoteApp) InitGenesis(state vote.GenesisState) store.CommitID {
	ctx := app.NewContext()
	vote.InitGenesis(ctx, app.VoteKeeper, state)
	return app.ms.Commit()
}

// DeliverMsg validates and processes one msg to completion. State changes
// are buffered in a cache context and only committed when the handler
// succeeds; a failed operation leaves the database exactly as it was.
func (app *GovoteApp) DeliverMsg(msg sdk.Msg) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}

	ctx := app.NewContext()
	cacheCtx, writeCache := ctx.CacheContext()
	res := app.handler(cacheCtx, msg)
	if !res.IsOK() {
		return res
	}
	writeCache()
	app.ms.Commit()
	return res
}

// Commit persists pending keeper writes made directly against a root
// context (admin operations outside the msg path).
func (app *GovoteApp) Commit() store.CommitID {
	return app.ms.Commit()
}

// Query serves a read-only query path.
func (app *GovoteApp) Query(path []string, data []byte) ([]byte, sdk.Error) {
	querier := vote.NewQuerier(app.VoteKeeper)
	return querier(app.NewContext(), path, queryRequest(data))
}
