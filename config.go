package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds app settings read from a TOML file. Zero fields keep the
// defaults.
//
//	frame_rate = 30
//	queue_size = 512
//	max_tasks  = 4
//	backend    = "tcell"
//	debug_log  = "/tmp/tuicss.log"
//	dark       = true
type Config struct {
	FrameRate int    `toml:"frame_rate"`
	QueueSize int    `toml:"queue_size"`
	MaxTasks  int    `toml:"max_tasks"`
	Backend   string `toml:"backend"`
	DebugLog  string `toml:"debug_log"`
	Dark      *bool  `toml:"dark"`
}

// ErrUnknownConfigKey is wrapped by LoadConfig errors for keys Config does
// not define.
var ErrUnknownConfigKey = errors.New("unknown config key")

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, checkUndecoded(path, md)
}

// ParseConfig decodes TOML text.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, checkUndecoded("config", md)
}

func checkUndecoded(source string, md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%s: %w: %s", source, ErrUnknownConfigKey, strings.Join(keys, ", "))
}
