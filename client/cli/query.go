package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/izqui/govote/codec"
	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

// GetQueryCmd groups the read-only commands.
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query votes, ballots and the voting procedure",
	}
	cmd.AddCommand(
		getCmdQueryVote(cdc),
		getCmdQueryVotes(cdc),
		getCmdQueryBallot(cdc),
		getCmdQueryBallots(cdc),
		getCmdQueryProcedure(cdc),
		getCmdQueryCanExecute(cdc),
		getCmdQueryAction(cdc),
		getCmdQueryMetadata(cdc),
	)
	return cmd
}

func runQuery(cdc *codec.Codec, path string, params interface{}) error {
	eng, err := OpenApp()
	if err != nil {
		return err
	}

	var data []byte
	if params != nil {
		data, err = cdc.MarshalJSON(params)
		if err != nil {
			return err
		}
	}

	res, qerr := eng.Query([]string{path}, data)
	if qerr != nil {
		return qerr
	}
	fmt.Println(string(res))
	return nil
}

func parseVoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid vote id %q", arg)
	}
	return id, nil
}

func getCmdQueryVote(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <id>",
		Short: "Query a single vote with its tally and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cdc, vote.QueryVote, vote.QueryVoteParams{VoteID: id})
		},
	}
}

func getCmdQueryVotes(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "votes",
		Short: "Query every vote ever created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cdc, vote.QueryVotes, nil)
		},
	}
}

func getCmdQueryBallot(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "ballot <vote-id> <voter>",
		Short: "Query the ballot a voter cast on a vote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			voter, err := sdk.AccAddressFromHex(args[1])
			if err != nil {
				return err
			}
			return runQuery(cdc, vote.QueryBallot, vote.QueryBallotParams{VoteID: id, Voter: voter})
		},
	}
}

func getCmdQueryBallots(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "ballots <vote-id>",
		Short: "Query all ballots cast on a vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cdc, vote.QueryBallots, vote.QueryVoteParams{VoteID: id})
		},
	}
}

func getCmdQueryProcedure(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "procedure",
		Short: "Query the active voting procedure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cdc, vote.QueryProcedure, nil)
		},
	}
}

func getCmdQueryCanExecute(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "can-execute <vote-id>",
		Short: "Check whether a vote can be executed right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cdc, vote.QueryCanExecute, vote.QueryVoteParams{VoteID: id})
		},
	}
}

func getCmdQueryAction(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "action <vote-id> <index>",
		Short: "Query one action of a vote's script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid action index %q", args[1])
			}
			return runQuery(cdc, vote.QueryAction, vote.QueryActionParams{VoteID: id, Index: index})
		},
	}
}

func getCmdQueryMetadata(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata <vote-id>",
		Short: "Query the metadata string of a vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVoteID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cdc, vote.QueryMetadata, vote.QueryVoteParams{VoteID: id})
		},
	}
}
