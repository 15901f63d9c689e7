package cli

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/syndtr/goleveldb/leveldb/opt"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/izqui/govote/app"
)

const (
	FlagHome     = "home"
	FlagFrom     = "from"
	FlagMetadata = "metadata"
	FlagListen   = "laddr"
)

// AddHomeFlag registers --home on a flag set. Callers bind it to viper so
// every command resolves the same home directory.
func AddHomeFlag(fs *pflag.FlagSet) *pflag.Flag {
	fs.String(FlagHome, DefaultHome(), "directory for config and data")
	return fs.Lookup(FlagHome)
}

// DefaultHome is the fallback engine home directory.
func DefaultHome() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".govote"
	}
	return filepath.Join(home, ".govote")
}

func homeDir() string {
	home := viper.GetString(FlagHome)
	if home == "" {
		home = DefaultHome()
	}
	return home
}

// ConfigPath returns the config file location under the engine home.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.toml")
}

// DataDir returns the database directory under the engine home.
func DataDir(home string) string {
	return filepath.Join(home, "data")
}

// OpenApp opens the engine at --home. The database must already exist,
// created by the init command.
func OpenApp() (*app.GovoteApp, error) {
	home := homeDir()
	cfg, err := app.LoadConfigFile(ConfigPath(home))
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg.DBBackend, DataDir(home))
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return app.NewGovoteApp(logger, db)
}

func openDB(backend, dir string) (dbm.DB, error) {
	if backend == "" || backend == string(dbm.GoLevelDBBackend) {
		return dbm.NewGoLevelDBWithOpts("govote", dir, &opt.Options{
			OpenFilesCacheCapacity: 64,
		})
	}
	return dbm.NewDB("govote", dbm.DBBackendType(backend), dir), nil
}
