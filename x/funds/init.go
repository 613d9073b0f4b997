package funds

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
)

const optKey = "funds"

// GenesisAccount is used to parse the json from genesis file
// use heirloom.Address, so address in hex, not base64
type GenesisAccount struct {
	Address heirloom.Address `json:"address"`
	Amount  coin.Amount      `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ heirloom.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts heirloom.Options, kv heirloom.KVStore) error {
	accts := []GenesisAccount{}
	err := opts.ReadOptions(optKey, &accts)
	if err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return err
		}
		wallet, err := WalletWith(acct.Address, acct.Amount)
		if err != nil {
			return err
		}
		err = bucket.Save(kv, wallet)
		if err != nil {
			return err
		}
	}
	return nil
}
