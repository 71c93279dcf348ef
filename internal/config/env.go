package config

import (
	"os"
	"strconv"

	"github.com/jinzhu/copier"
)

// Environment variables read by FromEnv.
const (
	EnvModel       = "GARAGE_MODEL"
	EnvFont        = "GARAGE_FONT"
	EnvShowFPS     = "GARAGE_SHOW_FPS"
	EnvClampScroll = "GARAGE_CLAMP_SCROLL"
	EnvLogFile     = "GARAGE_LOG_FILE"
)

// Overrides are values set outside the config file. Field names match the config structs they
// land in; empty strings and nil pointers leave the config untouched.
type Overrides struct {
	Model    string
	FontPath string
	File     string
	ShowFPS  *bool
	Clamp    *bool
}

// FromEnv reads overrides from the process environment. Unparseable booleans are ignored.
func FromEnv() Overrides {
	return Overrides{
		Model:    os.Getenv(EnvModel),
		FontPath: os.Getenv(EnvFont),
		File:     os.Getenv(EnvLogFile),
		ShowFPS:  envBool(EnvShowFPS),
		Clamp:    envBool(EnvClampScroll),
	}
}

func envBool(key string) *bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// Apply merges o onto c.
func (c *Config) Apply(o Overrides) error {
	opt := copier.Option{IgnoreEmpty: true}
	for _, dst := range []any{c, &c.Overlay, &c.Log, &c.Debug, &c.Scroll} {
		if err := copier.CopyWithOption(dst, &o, opt); err != nil {
			return err
		}
	}
	return nil
}
