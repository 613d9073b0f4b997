package heirloom

import (
	"github.com/heirloom-one/heirloom/errors"
)

// Metadata is attached to each persistent model to track its schema version.
type Metadata struct {
	Schema uint32
}

// Validate returns an error if the metadata content is invalid.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMsg, "missing metadata")
	}
	if m.Schema == 0 {
		return errors.Wrap(errors.ErrMsg, "invalid schema version")
	}
	return nil
}

// Copy returns a deep copy of this metadata.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
