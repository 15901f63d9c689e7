package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/izqui/govote/app"
	"github.com/izqui/govote/client/cli"
	"github.com/izqui/govote/client/rest"
	"github.com/izqui/govote/vote"
)

func main() {
	cdc := app.MakeCodec()

	rootCmd := &cobra.Command{
		Use:   "govote",
		Short: "Token weighted governance voting engine",
	}
	viper.BindPFlag(cli.FlagHome, cli.AddHomeFlag(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(
		initCmd(),
		cli.GetQueryCmd(cdc),
		cli.GetTxCmd(cdc),
		cli.GetAdminCmd(cdc),
		restServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the engine home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := viper.GetString(cli.FlagHome)
			if err := common.EnsureDir(home, 0755); err != nil {
				return err
			}
			if err := common.EnsureDir(cli.DataDir(home), 0755); err != nil {
				return err
			}

			configPath := cli.ConfigPath(home)
			if common.FileExists(configPath) {
				return fmt.Errorf("%s already exists", configPath)
			}

			cfg := app.DefaultConfig()
			if err := app.WriteConfigFile(configPath, cfg); err != nil {
				return err
			}

			genesis, err := cfg.GenesisState()
			if err != nil {
				return err
			}

			eng, err := cli.OpenApp()
			if err != nil {
				return err
			}
			commitID := eng.InitGenesis(genesis)
			fmt.Printf("initialized %s at version %d\n", home, commitID.Version)
			return nil
		},
	}
}

func restServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rest-server",
		Short: "Serve the read-only HTTP API and prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := cli.OpenApp()
			if err != nil {
				return err
			}
			eng.VoteKeeper.SetMetrics(vote.PrometheusMetrics("govote"))
			if err := eng.Publisher.Start(); err != nil {
				return err
			}
			defer eng.Publisher.Stop()

			router := mux.NewRouter()
			rest.RegisterRoutes(eng, router, eng.Cdc)
			rest.RegisterTxRoutes(eng, router)

			laddr := viper.GetString(cli.FlagListen)
			eng.Logger.Info("serving HTTP API", "laddr", laddr)
			return http.ListenAndServe(laddr, router)
		},
	}
	cmd.Flags().String(cli.FlagListen, "127.0.0.1:1317", "address to listen on")
	viper.BindPFlag(cli.FlagListen, cmd.Flags().Lookup(cli.FlagListen))
	return cmd
}
