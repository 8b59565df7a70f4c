package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
)

type file struct {
	Container *geom.Rect `toml:"container,omitempty" yaml:"container,omitempty"`
	Groups    []group    `toml:"groups" yaml:"groups"`
}

type group struct {
	ID           string     `toml:"id" yaml:"id"`
	Rect         *geom.Rect `toml:"rect,omitempty" yaml:"rect,omitempty"`
	Lock         string     `toml:"lock,omitempty" yaml:"lock,omitempty"`
	HeaderHidden bool       `toml:"header_hidden,omitempty" yaml:"header_hidden,omitempty"`
	Panels       int        `toml:"panels" yaml:"panels"`
}

// Read decodes a snapshot in the given format from r and validates it.
//
// Unknown keys are rejected so that typos such as "heder_hidden" do not
// silently produce an eligible group. Read does not close r.
func Read(r io.Reader, format Format) (*Snapshot, error) {
	var f file
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidSnapshot, err, "decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			return nil, errs.New(errs.ErrCodeInvalidSnapshot, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, errs.Wrap(errs.ErrCodeInvalidSnapshot, err, "decode yaml")
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown snapshot format %q", format)
	}
	return build(f)
}

// Load reads a snapshot file, choosing the format from its extension.
func Load(path string) (*Snapshot, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func build(f file) (*Snapshot, error) {
	s := &Snapshot{byID: make(map[string]*Group, len(f.Groups))}
	if f.Container != nil {
		if !f.Container.Valid() {
			return nil, errs.New(errs.ErrCodeInvalidSnapshot, "container %s is inverted", *f.Container)
		}
		s.container, s.mounted = *f.Container, true
	}

	for i, e := range f.Groups {
		if err := errs.ValidateID("group", e.ID); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidSnapshot, err, "group %d", i)
		}
		if _, dup := s.byID[e.ID]; dup {
			return nil, errs.New(errs.ErrCodeInvalidSnapshot, "group %s: duplicate id", e.ID)
		}
		lock, ok := dock.ParseLockMode(e.Lock)
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidSnapshot, "group %s: unknown lock mode %q", e.ID, e.Lock)
		}
		if e.Panels < 0 {
			return nil, errs.New(errs.ErrCodeInvalidSnapshot, "group %s: negative panel count %d", e.ID, e.Panels)
		}

		g := &Group{id: e.ID, lock: lock, headerHidden: e.HeaderHidden, panels: e.Panels}
		if e.Rect != nil {
			if !e.Rect.Valid() {
				return nil, errs.New(errs.ErrCodeInvalidSnapshot, "group %s: rect %s is inverted", e.ID, *e.Rect)
			}
			g.rect, g.rendered = *e.Rect, true
		}
		s.groups = append(s.groups, g)
		s.byID[g.id] = g
	}
	return s, nil
}
