package orm

import (
	"encoding/binary"

	"github.com/heirloom-one/heirloom"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
//
// Values are handed out starting from zero, so the first call to
// NextInt returns 0 and the stored state is always the next unused
// value.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal returns the next unused sequence value as 8 bytes and advances
// the counter.
func (s *Sequence) NextVal(db heirloom.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db)
	return bz, err
}

// NextInt returns the next unused sequence value as int and advances the
// counter.
func (s *Sequence) NextInt(db heirloom.KVStore) (int64, error) {
	val, _, err := s.increment(db)
	return val, err
}

// Latest returns the next value the sequence will hand out. This method
// does not modify the sequence state. Use NextVal or NextInt to acquire a
// sequence value that was not given to anyone else.
func (s *Sequence) Latest(db heirloom.ReadOnlyKVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	return val, EncodeSequence(val), nil
}

func (s *Sequence) increment(db heirloom.KVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, nil, err
	}
	return val, EncodeSequence(val), nil
}

func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
