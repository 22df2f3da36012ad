package service

//go:generate go tool mockery

import "perfmeter/internal/registry"

type Registries interface {
	Lookup(className string) (*registry.Registry, bool)
	ClassNames() []string
}

type Cache interface {
	Get(className string) ([]byte, bool)
	Set(className string, report []byte)
	Invalidate(className string)
}

type IDCodec interface {
	Encode(className string, seq uint64) (string, error)
	Decode(id string) (classKey, seq uint64, err error)
}
