package treasure

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ heirloom.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial configuration from genesis
// and save it to the database
func (*Initializer) FromGenesis(opts heirloom.Options, kv heirloom.KVStore) error {
	return gconf.InitConfig(kv, opts, pkgName, &Configuration{})
}
