package grid

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed maps.yaml
var builtinYAML []byte

// Spec is one named map as stored in a library file.
type Spec struct {
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
	Scale       int      `yaml:"scale"`
	Castle      *Point   `yaml:"castle"`
}

// Library is a set of named, pre-validated maps.
type Library struct {
	specs map[string]Spec
	maps  map[string]*Map
}

type libraryFile struct {
	Maps map[string]Spec `yaml:"maps"`
}

// LoadLibrary decodes a YAML library from r and parses every map in it.
// Unknown keys are rejected.
func LoadLibrary(r io.Reader) (*Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f libraryFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &Library{specs: map[string]Spec{}, maps: map[string]*Map{}}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrBadLibrary, err)
	}
	lib := &Library{specs: make(map[string]Spec, len(f.Maps)), maps: make(map[string]*Map, len(f.Maps))}
	for name, spec := range f.Maps {
		if spec.Scale == 0 {
			spec.Scale = 1
		}
		m, err := Parse(spec.Rows, WithScale(spec.Scale))
		if err != nil {
			return nil, fmt.Errorf("%w: map %q: %w", ErrBadLibrary, name, err)
		}
		if spec.Castle != nil && !m.Passable(*spec.Castle) {
			return nil, fmt.Errorf("%w: map %q: castle %v is not on a passable cell", ErrBadLibrary, name, *spec.Castle)
		}
		if spec.Castle != nil && !castleReachable(m, *spec.Castle) {
			return nil, fmt.Errorf("%w: map %q: no walkable cell reaches castle %v", ErrBadLibrary, name, *spec.Castle)
		}
		if tree, ok := isolatedTree(m); ok {
			return nil, fmt.Errorf("%w: map %q: no walkable cell reaches tree %v", ErrBadLibrary, name, tree)
		}
		lib.specs[name] = spec
		lib.maps[name] = m
	}
	return lib, nil
}

func walkable(c Cell) bool { return c == Floor || c.IsTerrain() }

// castleReachable reports whether some walkable cell other than the
// castle's own lies in the castle's region.
func castleReachable(m *Map, castle Point) bool {
	cc, cr := m.CellOf(castle)
	for _, p := range m.Points(walkable) {
		if c, r := m.CellOf(p); c == cc && r == cr {
			continue
		}
		if m.Connected(p, castle) {
			return true
		}
	}
	return false
}

// isolatedTree returns a tree whose region holds no walkable cell.
func isolatedTree(m *Map) (Point, bool) {
	for _, region := range m.Regions() {
		var tree *Point
		reached := false
		for i, p := range region {
			if m.IsTree(p) {
				if tree == nil {
					tree = &region[i]
				}
				continue
			}
			reached = true
		}
		if tree != nil && !reached {
			return *tree, true
		}
	}
	return Point{}, false
}

var builtin = sync.OnceValue(func() *Library {
	lib, err := LoadLibrary(bytes.NewReader(builtinYAML))
	if err != nil {
		panic(err)
	}
	return lib
})

// Builtin returns the maps shipped with the workshop: simple-1..3 and
// terrain-1..3 for the closest-tree exercise, castle-simple-1..3 and
// castle-terrain-1..3 for the castle exercise.
func Builtin() *Library { return builtin() }

// Names returns the map names in lexical order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.specs))
	for name := range l.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spec returns the stored description of name.
func (l *Library) Spec(name string) (Spec, error) {
	spec, ok := l.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return spec, nil
}

// Map returns the parsed map called name and its castle, which is nil for
// maps without one.
func (l *Library) Map(name string) (*Map, *Point, error) {
	m, ok := l.maps[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	var castle *Point
	if c := l.specs[name].Castle; c != nil {
		p := *c
		castle = &p
	}
	return m, castle, nil
}
