package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/izqui/govote/app"
	"github.com/izqui/govote/codec"
	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

// RegisterRoutes mounts the read-only HTTP API and the prometheus endpoint
// on the given router.
func RegisterRoutes(eng *app.GovoteApp, r *mux.Router, cdc *codec.Codec) {
	r.HandleFunc("/procedure", procedureHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes", votesHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}", voteHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}/ballots", ballotsHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}/ballots/{voter}", ballotHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}/can-execute", canExecuteHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}/metadata", metadataHandler(eng, cdc)).Methods("GET")
	r.HandleFunc("/votes/{id}/actions/{index}", actionHandler(eng, cdc)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func writeQueryResult(w http.ResponseWriter, res []byte, err sdk.Error) {
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(res)
}

func voteIDFromRequest(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid vote id %q", raw)
	}
	return id, nil
}

func queryByVoteID(eng *app.GovoteApp, cdc *codec.Codec, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := voteIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		data, err := cdc.MarshalJSON(vote.QueryVoteParams{VoteID: id})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		res, qerr := eng.Query([]string{path}, data)
		writeQueryResult(w, res, qerr)
	}
}

func procedureHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, qerr := eng.Query([]string{vote.QueryProcedure}, nil)
		writeQueryResult(w, res, qerr)
	}
}

func votesHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, qerr := eng.Query([]string{vote.QueryVotes}, nil)
		writeQueryResult(w, res, qerr)
	}
}

func voteHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return queryByVoteID(eng, cdc, vote.QueryVote)
}

func ballotsHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return queryByVoteID(eng, cdc, vote.QueryBallots)
}

func canExecuteHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return queryByVoteID(eng, cdc, vote.QueryCanExecute)
}

func metadataHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return queryByVoteID(eng, cdc, vote.QueryMetadata)
}

func ballotHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := voteIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		voter, err := sdk.AccAddressFromHex(mux.Vars(r)["voter"])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		data, err := cdc.MarshalJSON(vote.QueryBallotParams{VoteID: id, Voter: voter})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		res, qerr := eng.Query([]string{vote.QueryBallot}, data)
		writeQueryResult(w, res, qerr)
	}
}

func actionHandler(eng *app.GovoteApp, cdc *codec.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := voteIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		index, err := strconv.Atoi(mux.Vars(r)["index"])
		if err != nil || index < 0 {
			writeError(w, http.StatusBadRequest, "invalid action index")
			return
		}
		data, err := cdc.MarshalJSON(vote.QueryActionParams{VoteID: id, Index: index})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		res, qerr := eng.Query([]string{vote.QueryAction}, data)
		writeQueryResult(w, res, qerr)
	}
}
