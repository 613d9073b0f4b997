package funds

import (
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Balance{}, "funds/balance", nil)
	cdc.RegisterConcrete(&SendMsg{}, "funds/send", nil)
}
