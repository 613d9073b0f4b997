package heirloom

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from the Check method of a
// handler. GasAllocated is a hint for transaction prioritization.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform.
	GasAllocated int64
}

// DeliverResult captures any non-error response from the Deliver method of a
// handler. Tags are externally observable notifications of the state
// transition that was performed.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// Tags describe the performed operation so external observers can
	// subscribe to and index them.
	Tags []common.KVPair
}

// NewTag is a helper to build an observable key-value tag pair.
func NewTag(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
