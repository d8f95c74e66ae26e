package ast

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loc describes where a program came from. Programs read from stdin or given
// inline have an empty Path.
type Loc struct {
	Name string
	Path string
}

func LocFromPath(fullPath string) (*Loc, error) {
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fullPath)
	}

	loc := new(Loc)
	loc.Path = fullPath
	loc.Name = filepath.Base(fullPath)
	return loc, nil
}

func InlineLoc(name string) *Loc {
	return &Loc{Name: name}
}

// Stem is the file name without its extension.
func (l Loc) Stem() string {
	return strings.TrimSuffix(l.Name, filepath.Ext(l.Name))
}

func (l Loc) String() string {
	if l.Path == "" {
		return l.Name
	}
	return l.Path
}
