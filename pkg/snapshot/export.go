package snapshot

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
)

// Write encodes s to w. The output can be read back with [Read].
func Write(s *Snapshot, w io.Writer, format Format) error {
	f := file{Groups: make([]group, len(s.groups))}
	if s.mounted {
		c := s.container
		f.Container = &c
	}
	for i, g := range s.groups {
		e := group{ID: g.id, HeaderHidden: g.headerHidden, Panels: g.panels}
		if g.lock != dock.Unlocked {
			e.Lock = g.lock.String()
		}
		if g.rendered {
			r := g.rect
			e.Rect = &r
		}
		f.Groups[i] = e
	}

	switch format {
	case TOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown snapshot format %q", format)
	}
	return nil
}
