package app

import (
	"io/ioutil"
	"time"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

// Config is the on-disk engine configuration, written by `govote init` and
// read via viper afterwards.
type Config struct {
	DBBackend       string `toml:"db_backend"`
	SupportRequired string `toml:"support_required"`
	MinAcceptQuorum string `toml:"min_accept_quorum"`
	VotingPeriod    string `toml:"voting_period"`
}

func DefaultConfig() Config {
	genesis := vote.DefaultGenesisState()
	return Config{
		DBBackend:       "goleveldb",
		SupportRequired: genesis.Procedure.SupportRequired.String(),
		MinAcceptQuorum: genesis.Procedure.MinAcceptQuorum.String(),
		VotingPeriod:    genesis.Procedure.VotingPeriod.String(),
	}
}

// GenesisState converts the configured thresholds into a genesis state.
func (cfg Config) GenesisState() (vote.GenesisState, error) {
	support, err := sdk.NewDecFromStr(cfg.SupportRequired)
	if err != nil {
		return vote.GenesisState{}, errors.Wrap(err, "bad support_required")
	}
	quorum, err := sdk.NewDecFromStr(cfg.MinAcceptQuorum)
	if err != nil {
		return vote.GenesisState{}, errors.Wrap(err, "bad min_accept_quorum")
	}
	period, perr := time.ParseDuration(cfg.VotingPeriod)
	if perr != nil {
		return vote.GenesisState{}, errors.Wrap(perr, "bad voting_period")
	}
	return vote.NewGenesisState(1, vote.VotingProcedure{
		SupportRequired: support,
		MinAcceptQuorum: quorum,
		VotingPeriod:    period,
	}), nil
}

// WriteConfigFile renders the config to a toml file.
func WriteConfigFile(path string, cfg Config) error {
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, bz, 0644)
}

// LoadConfigFile parses a toml config file.
func LoadConfigFile(path string) (Config, error) {
	bz, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(bz, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
