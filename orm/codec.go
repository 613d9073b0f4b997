package orm

import (
	"github.com/tendermint/go-amino"
)

// cdc serializes the persistent helper types of this package.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&MultiRef{}, "orm/multiref", nil)
	cdc.RegisterConcrete(&Counter{}, "orm/counter", nil)
}
