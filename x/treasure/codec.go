package treasure

import (
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Treasure{}, "treasure/record", nil)
	cdc.RegisterConcrete(&Configuration{}, "treasure/configuration", nil)
	cdc.RegisterConcrete(&StoreMsg{}, "treasure/store", nil)
	cdc.RegisterConcrete(&ClaimMsg{}, "treasure/claim", nil)
	cdc.RegisterConcrete(&WithdrawFeesMsg{}, "treasure/withdraw_fees", nil)
	cdc.RegisterConcrete(&UpdateConfigurationMsg{}, "treasure/update_configuration", nil)
}
