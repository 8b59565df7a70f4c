package snapshot

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/tiledock/pkg/errors"
)

// Format is a snapshot file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ParseFormat accepts "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown snapshot format %q (want toml or yaml)", s)
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "%s: missing extension (want .toml, .yaml or .yml)", path)
	}
	return ParseFormat(ext)
}
