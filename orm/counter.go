package orm

import (
	"github.com/heirloom-one/heirloom/errors"
)

var _ CloneableData = (*Counter)(nil)

// Counter is a simple persistent model, mainly used to test
// bucket behavior without pulling in a domain type.
type Counter struct {
	Count int64
}

// Marshal serializes the counter.
func (c *Counter) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

// Unmarshal loads a serialized counter.
func (c *Counter) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, c)
}

// Copy produces a new copy to fulfill the CloneableData interface
func (c *Counter) Copy() CloneableData {
	return &Counter{
		Count: c.Count,
	}
}

// Validate rejects negative counters
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}
