package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izqui/govote/app"
	"github.com/izqui/govote/codec"
	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

// GetTxCmd groups the state-changing commands.
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Create votes, cast ballots and execute passed votes",
	}
	cmd.AddCommand(
		getCmdCreateVote(cdc),
		getCmdCastBallot(cdc),
		getCmdExecuteVote(cdc),
		getCmdChangeProcedure(cdc),
	)
	cmd.PersistentFlags().String(FlagFrom, "", "hex address acting as the sender")
	return cmd
}

// GetAdminCmd groups the power oracle and permission commands. These act on
// the keepers directly rather than through the msg pipeline.
func GetAdminCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage voting power and role grants",
	}
	cmd.AddCommand(
		getCmdSetPower(),
		getCmdTransferPower(),
		getCmdAdvanceCheckpoint(),
		getCmdGrant(),
		getCmdRevoke(),
	)
	cmd.PersistentFlags().String(FlagFrom, "", "hex address acting as the sender")
	return cmd
}

func fromAddress() (sdk.AccAddress, error) {
	from := viper.GetString(FlagFrom)
	if from == "" {
		return nil, fmt.Errorf("--%s is required", FlagFrom)
	}
	return sdk.AccAddressFromHex(from)
}

func deliver(msg sdk.Msg) error {
	eng, err := OpenApp()
	if err != nil {
		return err
	}
	res := eng.DeliverMsg(msg)
	if !res.IsOK() {
		return fmt.Errorf("operation failed: %s", res.Log)
	}
	fmt.Println(res.Log)
	return nil
}

// withAdminContext opens the engine, runs fn against a root context and
// commits when fn succeeds.
func withAdminContext(fn func(eng *app.GovoteApp, ctx sdk.Context) error) error {
	eng, err := OpenApp()
	if err != nil {
		return err
	}
	ctx := eng.NewContext()
	if err := fn(eng, ctx); err != nil {
		return err
	}
	eng.Commit()
	return nil
}

func getCmdCreateVote(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-vote <script-hex>",
		Short: "Create a vote around an execution script",
		Long: strings.TrimSpace(`
Create a vote. The script is a hex encoded action buffer; pass an empty
string for a signalling vote with no actions. The creator's voting power at
the snapshot checkpoint is cast as an automatic yes ballot.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := fromAddress()
			if err != nil {
				return err
			}
			scriptBz, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid script hex: %v", err)
			}
			metadata := viper.GetString(FlagMetadata)
			return deliver(vote.NewMsgCreateVote(creator, scriptBz, metadata))
		},
	}
	cmd.Flags().String(FlagMetadata, "", "human readable description of the vote")
	return cmd
}

func getCmdCastBallot(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "cast <vote-id> <yes|no>",
		Short: "Cast or replace a ballot on an open vote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, err := fromAddress()
			if err != nil {
				return err
			}
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			var support bool
			switch strings.ToLower(args[1]) {
			case "yes", "yea", "true":
				support = true
			case "no", "nay", "false":
				support = false
			default:
				return fmt.Errorf("choice must be yes or no, got %q", args[1])
			}
			return deliver(vote.NewMsgCastBallot(voter, id, support, true))
		},
	}
}

func getCmdExecuteVote(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <vote-id>",
		Short: "Execute the script of a passed vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := fromAddress()
			if err != nil {
				return err
			}
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			return deliver(vote.NewMsgExecuteVote(caller, id))
		},
	}
}

func getCmdChangeProcedure(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "change-procedure <support-required> <min-accept-quorum>",
		Short: "Change the thresholds used by future votes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddress()
			if err != nil {
				return err
			}
			support, err := sdk.NewDecFromStr(args[0])
			if err != nil {
				return err
			}
			quorum, err := sdk.NewDecFromStr(args[1])
			if err != nil {
				return err
			}
			return deliver(vote.NewMsgChangeProcedure(from, support, quorum))
		},
	}
}

func getCmdSetPower() *cobra.Command {
	return &cobra.Command{
		Use:   "set-power <address> <power>",
		Short: "Set an address' voting power at the current checkpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromHex(args[0])
			if err != nil {
				return err
			}
			power, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid power %q", args[1])
			}
			return withAdminContext(func(eng *app.GovoteApp, ctx sdk.Context) error {
				if serr := eng.OracleKeeper.SetPower(ctx, addr, power); serr != nil {
					return serr
				}
				return nil
			})
		},
	}
}

func getCmdTransferPower() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "Move voting power from the sender to another address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddress()
			if err != nil {
				return err
			}
			to, err := sdk.AccAddressFromHex(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return withAdminContext(func(eng *app.GovoteApp, ctx sdk.Context) error {
				if terr := eng.OracleKeeper.Transfer(ctx, from, to, amount); terr != nil {
					return terr
				}
				return nil
			})
		},
	}
}

func getCmdAdvanceCheckpoint() *cobra.Command {
	return &cobra.Command{
		Use:   "advance-checkpoint",
		Short: "Seal the current power checkpoint and open the next one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminContext(func(eng *app.GovoteApp, ctx sdk.Context) error {
				next := eng.OracleKeeper.AdvanceCheckpoint(ctx)
				fmt.Printf("checkpoint advanced to %d\n", next)
				return nil
			})
		},
	}
}

func getCmdGrant() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <role> <address>",
		Short: "Grant a role to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromHex(args[1])
			if err != nil {
				return err
			}
			return withAdminContext(func(eng *app.GovoteApp, ctx sdk.Context) error {
				eng.AuthKeeper.Grant(ctx, args[0], addr)
				return nil
			})
		},
	}
}

func getCmdRevoke() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <role> <address>",
		Short: "Revoke a role from an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromHex(args[1])
			if err != nil {
				return err
			}
			return withAdminContext(func(eng *app.GovoteApp, ctx sdk.Context) error {
				eng.AuthKeeper.Revoke(ctx, args[0], addr)
				return nil
			})
		},
	}
}
