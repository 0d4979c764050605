package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/milk9111/catburglar/component"
)

// TableSpec names one asset directory and the states it must provide.
type TableSpec struct {
	Dir      string
	Required []component.AnimState
}

// DefaultTables are the directories the game ships.
var DefaultTables = []TableSpec{
	{Dir: "cat", Required: component.ActorStates},
	{Dir: "cop", Required: component.ActorStates},
	{Dir: "drone", Required: component.ActorStates},
	{Dir: "ground", Required: component.GroundStates},
}

// Library holds loaded animation tables by directory name.
type Library struct {
	tables map[string]component.AnimationTable
}

// LoadLibrary loads every table up front so a broken asset fails before the game starts.
func LoadLibrary(fsys fs.FS, specs []TableSpec, opts ...Option) (*Library, error) {
	lib := &Library{tables: make(map[string]component.AnimationTable, len(specs))}
	for _, spec := range specs {
		table, err := LoadAnimationTable(fsys, spec.Dir, spec.Required, opts...)
		if err != nil {
			return nil, fmt.Errorf("assets: load %s: %w", spec.Dir, err)
		}
		lib.tables[spec.Dir] = table
	}
	return lib, nil
}

func (l *Library) Table(name string) (component.AnimationTable, bool) {
	if l == nil {
		return nil, false
	}
	t, ok := l.tables[name]
	return t, ok
}

// Names lists the loaded tables, sorted.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.tables))
	for name := range l.tables {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
