package config

import "fmt"

type Backend int

const (
	BACKEND_C Backend = iota
	BACKEND_LLVM
)

func (b Backend) String() string {
	switch b {
	case BACKEND_C:
		return "c"
	case BACKEND_LLVM:
		return "llvm"
	}
	return "unknown"
}

func ParseBackend(name string) (Backend, error) {
	switch name {
	case "", "c":
		return BACKEND_C, nil
	case "llvm":
		return BACKEND_LLVM, nil
	}
	return BACKEND_C, fmt.Errorf("unknown backend %q, expected c or llvm", name)
}
