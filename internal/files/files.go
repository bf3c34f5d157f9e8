// Package files resolves logical config file names to paths inside the
// install tree and loads them into pooled scratch buffers.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Group is a logical file group. Each group maps to one directory.
type Group string

const (
	// FxData holds engine-wide configuration such as creature.cfg.
	FxData Group = "fxdata"
	// CrtrData holds one model file per creature kind.
	CrtrData Group = "creatrs"
	// Data holds miscellaneous game data.
	Data Group = "data"
)

// DefaultGroups maps every group to its conventional directory name.
func DefaultGroups() map[Group]string {
	return map[Group]string{
		FxData:   "fxdata",
		CrtrData: "creatrs",
		Data:     "data",
	}
}

// Resolver turns (group, name) pairs into slash-separated paths inside FS.
type Resolver struct {
	FS     fs.FS
	Groups map[Group]string
}

// NewResolver returns a Resolver rooted at the directory root.
func NewResolver(root string, groups map[Group]string) *Resolver {
	if strings.HasPrefix(root, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[1:])
		}
	}
	if groups == nil {
		groups = DefaultGroups()
	}
	return &Resolver{FS: os.DirFS(root), Groups: groups}
}

// Path returns the location of name inside group.
func (r *Resolver) Path(group Group, name string) string {
	dir, ok := r.Groups[group]
	if !ok {
		dir = string(group)
	}
	if dir == "" || dir == "." {
		return path.Clean(name)
	}
	return path.Join(dir, name)
}

// Pathf is Path with a formatted name.
func (r *Resolver) Pathf(group Group, format string, args ...any) string {
	return r.Path(group, fmt.Sprintf(format, args...))
}
