package x

import "github.com/heirloom-one/heirloom"

// Validater is any struct that can be validated. Buckets refuse to store
// models that do not validate, so every persisted model implements this.
type Validater interface {
	Validate() error
}

// MarshalValidater can be validated and serialized. Satisfied by every
// message and model in this module.
type MarshalValidater interface {
	heirloom.Marshaller
	Validater
}

// MustMarshal serializes the object or panics. For fixtures and for data
// that was already validated, where a marshalling error means a bug.
func MustMarshal(obj heirloom.Marshaller) []byte {
	bz, err := obj.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshal parses the bytes into obj or panics.
func MustUnmarshal(obj heirloom.Persistent, bz []byte) {
	if err := obj.Unmarshal(bz); err != nil {
		panic(err)
	}
}

// MustValidate panics if the object is not valid.
func MustValidate(obj Validater) {
	if err := obj.Validate(); err != nil {
		panic(err)
	}
}

// MustMarshalValid validates and serializes the object, panicking on
// either failure.
func MustMarshalValid(obj MarshalValidater) []byte {
	MustValidate(obj)
	return MustMarshal(obj)
}
