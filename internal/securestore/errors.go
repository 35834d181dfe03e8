package securestore

import "errors"

var (
	ErrSerialize = errors.New("secure store: value cannot be serialized")
	ErrEncode    = errors.New("secure store: payload encoding failed")
	ErrPersist   = errors.New("secure store: backend rejected write")

	errEmptyPayload = errors.New("empty payload")
)
