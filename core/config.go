package core

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ApplicationName is reported to the API and used as the window title.
const ApplicationName = "Bloqs"

// Environment variables read by LoadConfig.
const (
	EnvDebug  = "BLOQS_DEBUG"
	EnvWidth  = "BLOQS_WIDTH"
	EnvHeight = "BLOQS_HEIGHT"
)

type InstanceConfig struct {
	ApplicationName    string
	ApplicationVersion ApplicationVersion
	EngineName         string
	EngineVersion      ApplicationVersion
	APIVersion         uint32
}

func DefaultInstanceConfig() InstanceConfig {
	return InstanceConfig{
		ApplicationName:    ApplicationName,
		ApplicationVersion: ZeroVersion,
		EngineName:         "",
		EngineVersion:      ZeroVersion,
		APIVersion:         APIVersion11,
	}
}

// WindowConfig is only read when the window is created, after bring-up.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:     ApplicationName,
		Width:     800,
		Height:    600,
		Resizable: false,
	}
}

// Config is everything the process reads at start.
type Config struct {
	Instance InstanceConfig
	Window   WindowConfig

	// Validation requests the standard validation layer.
	Validation bool
}

func DefaultConfig() Config {
	return Config{
		Instance: DefaultInstanceConfig(),
		Window:   DefaultWindowConfig(),
	}
}

// LoadConfig applies environment overrides on top of DefaultConfig.
// lookup is normally os.LookupEnv.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", EnvDebug)
		}
		cfg.Validation = b
	}

	var err error
	if cfg.Window.Width, err = lookupSize(lookup, EnvWidth, cfg.Window.Width); err != nil {
		return Config{}, err
	}
	if cfg.Window.Height, err = lookupSize(lookup, EnvHeight, cfg.Window.Height); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func lookupSize(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if n <= 0 {
		return 0, errors.Newf("invalid %s: %d is not a positive size", key, n)
	}
	return n, nil
}
