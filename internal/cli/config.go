package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
)

// Config holds defaults read from the config file. Flags override it.
//
//	[workspace]
//	width = 1600
//	height = 900
//
//	[serve]
//	addr = "127.0.0.1:9000"
//
//	[log]
//	level = "debug"
type Config struct {
	Workspace struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"workspace"`
	Serve struct {
		Addr string `toml:"addr"`
	} `toml:"serve"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Workspace.Width = defaultWidth
	cfg.Workspace.Height = defaultHeight
	cfg.Serve.Addr = defaultAddr
	return cfg
}

// Container returns the configured container rectangle.
func (cfg Config) Container() geom.Rect {
	return geom.XYWH(0, 0, cfg.Workspace.Width, cfg.Workspace.Height)
}

// configFile returns the config path using XDG standard (~/.config/tiledock/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// readConfig decodes path over the defaults. A missing file is only an
// error when the path was given explicitly.
func readConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return cfg, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown key %s", path, extra[0])
	}
	if err := errs.ValidateDimension("workspace.width", cfg.Workspace.Width); err != nil {
		return cfg, err
	}
	if err := errs.ValidateDimension("workspace.height", cfg.Workspace.Height); err != nil {
		return cfg, err
	}
	return cfg, nil
}
