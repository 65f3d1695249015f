// seehuhn.de/go/pseudo3d - a software renderer for 2.5D scenes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package level

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/pseudo3d"
)

// Store is a named collection of levels.
type Store interface {
	Load(ctx context.Context, name string) (*pseudo3d.Level, error)
	Save(ctx context.Context, name string, lvl *pseudo3d.Level) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// DirStore keeps levels as files in a directory.  A level called "name"
// is read from name.json, name.yaml or name.yml, and is saved as
// name.json.
type DirStore struct {
	dir string
}

// NewDirStore returns a store for the given directory.  The directory is
// created if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create level dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

var dirStoreExts = []string{".json", ".yaml", ".yml"}

// Load implements the [Store] interface.
func (s *DirStore) Load(ctx context.Context, name string) (*pseudo3d.Level, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	for _, ext := range dirStoreExts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lvl, err := LoadFile(filepath.Join(s.dir, name+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return lvl, err
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Save implements the [Store] interface.
func (s *DirStore) Save(ctx context.Context, name string, lvl *pseudo3d.Level) (err error) {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, lvl, JSON)
}

// List implements the [Store] interface.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !slices.Contains(dirStoreExts, strings.ToLower(ext)) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, ctx.Err()
}

// Close implements the [Store] interface.
func (s *DirStore) Close() error {
	return nil
}

// OpenStore opens the level store at the given location.  Locations
// starting with "postgres://" or "postgresql://" refer to a PostgreSQL
// database, everything else is taken as a directory name.
func OpenStore(ctx context.Context, location string) (Store, error) {
	if strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://") {
		return NewPostgresStore(ctx, location)
	}
	return NewDirStore(location)
}

// Source describes where a level comes from.  If File is set, the level
// is read from that file.  Otherwise, if Store is set, the level called
// Name is loaded from the store at that location; an empty Name selects
// the first level in the store.  If neither is set, the demo level is
// used.
type Source struct {
	File  string
	Store string
	Name  string
}

// Load reads the level.
func (src Source) Load(ctx context.Context) (*pseudo3d.Level, error) {
	switch {
	case src.File != "":
		return LoadFile(src.File)

	case src.Store != "":
		st, err := OpenStore(ctx, src.Store)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		name := src.Name
		if name == "" {
			names, err := st.List(ctx)
			if err != nil {
				return nil, err
			}
			if len(names) == 0 {
				return nil, fmt.Errorf("%s: empty store: %w", src.Store, ErrNotFound)
			}
			name = names[0]
		}
		pseudo3d.Logger().Info("loading level", "store", src.Store, "name", name)
		return st.Load(ctx, name)

	default:
		pseudo3d.Logger().Info("no level given, using the demo level")
		return Demo(), nil
	}
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid level name %q", name)
	}
	return nil
}

var (
	_ Store = (*DirStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
