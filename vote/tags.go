package vote

// handler result tags
var (
	TagAction = "action"
	TagVoteID = "vote-id"
	TagVoter  = "voter"

	ActionCreateVote      = []byte("create-vote")
	ActionCastBallot      = []byte("cast-ballot")
	ActionExecuteVote     = []byte("execute-vote")
	ActionChangeProcedure = []byte("change-procedure")
)
