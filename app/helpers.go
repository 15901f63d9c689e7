package app

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

func queryRequest(data []byte) abci.RequestQuery {
	return abci.RequestQuery{Data: data}
}
