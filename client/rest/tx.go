package rest

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/izqui/govote/app"
	sdk "github.com/izqui/govote/types"
	"github.com/izqui/govote/vote"
)

// RegisterTxRoutes mounts the state-changing HTTP API. Deliveries are
// serialized by the engine, so concurrent posts are safe.
func RegisterTxRoutes(eng *app.GovoteApp, r *mux.Router) {
	r.HandleFunc("/votes", createVoteHandler(eng)).Methods("POST")
	r.HandleFunc("/votes/{id}/ballots", castBallotHandler(eng)).Methods("POST")
	r.HandleFunc("/votes/{id}/execute", executeVoteHandler(eng)).Methods("POST")
	r.HandleFunc("/procedure", changeProcedureHandler(eng)).Methods("PUT")
}

type createVoteReq struct {
	Creator  string `json:"creator"`
	Script   string `json:"script"`
	Metadata string `json:"metadata"`
}

type castBallotReq struct {
	Voter       string `json:"voter"`
	Support     bool   `json:"support"`
	AutoExecute bool   `json:"auto_execute"`
}

type executeVoteReq struct {
	Caller string `json:"caller"`
}

type changeProcedureReq struct {
	From            string `json:"from"`
	SupportRequired string `json:"support_required"`
	MinAcceptQuorum string `json:"min_accept_quorum"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return false
	}
	return true
}

func deliver(w http.ResponseWriter, eng *app.GovoteApp, msg sdk.Msg) {
	res := eng.DeliverMsg(msg)
	if !res.IsOK() {
		writeError(w, http.StatusBadRequest, res.Log)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	out, _ := json.Marshal(map[string]string{"log": res.Log, "data": hex.EncodeToString(res.Data)})
	w.Write(out)
}

func createVoteHandler(eng *app.GovoteApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVoteReq
		if !decodeBody(w, r, &req) {
			return
		}
		creator, err := sdk.AccAddressFromHex(req.Creator)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		scriptBz, err := hex.DecodeString(strings.TrimPrefix(req.Script, "0x"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid script hex: "+err.Error())
			return
		}
		deliver(w, eng, vote.NewMsgCreateVote(creator, scriptBz, req.Metadata))
	}
}

func castBallotHandler(eng *app.GovoteApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := voteIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var req castBallotReq
		if !decodeBody(w, r, &req) {
			return
		}
		voter, err := sdk.AccAddressFromHex(req.Voter)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		deliver(w, eng, vote.NewMsgCastBallot(voter, id, req.Support, req.AutoExecute))
	}
}

func executeVoteHandler(eng *app.GovoteApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := voteIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var req executeVoteReq
		if !decodeBody(w, r, &req) {
			return
		}
		caller, err := sdk.AccAddressFromHex(req.Caller)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		deliver(w, eng, vote.NewMsgExecuteVote(caller, id))
	}
}

func changeProcedureHandler(eng *app.GovoteApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeProcedureReq
		if !decodeBody(w, r, &req) {
			return
		}
		from, err := sdk.AccAddressFromHex(req.From)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		support, serr := sdk.NewDecFromStr(req.SupportRequired)
		if serr != nil {
			writeError(w, http.StatusBadRequest, serr.Error())
			return
		}
		quorum, qerr := sdk.NewDecFromStr(req.MinAcceptQuorum)
		if qerr != nil {
			writeError(w, http.StatusBadRequest, qerr.Error())
			return
		}
		deliver(w, eng, vote.NewMsgChangeProcedure(from, support, quorum))
	}
}
