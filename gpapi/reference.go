package gpapi

import "github.com/google/uuid"

// ReferenceGenerator supplies the request reference when the caller did not
// set a client transaction id. Implementations must be safe for concurrent
// use.
type ReferenceGenerator interface {
	NewReference() string
}

// ReferenceFunc adapts a function to ReferenceGenerator.
type ReferenceFunc func() string

func (f ReferenceFunc) NewReference() string {
	return f()
}

// UUIDGenerator returns random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewReference() string {
	return uuid.NewString()
}
