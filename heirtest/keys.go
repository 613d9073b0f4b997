package heirtest

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/heirloom-one/heirloom"
)

// NewCondition returns a random condition. Each call returns a different
// value, so two conditions are never equal and addresses derived from them
// do not collide.
func NewCondition() heirloom.Condition {
	data := make([]byte, 20)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return heirloom.NewCondition("test", "random", data)
}

// SequenceID encodes given counter value the same way sequences serialize
// their state.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
