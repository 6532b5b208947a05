package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CARDGRAPH_DB_PATH.
const EnvPrefix = "CARDGRAPH_"

// Config holds cardgraph settings stored at ~/.cardgraph/config.yaml.
type Config struct {
	DBPath       string `koanf:"db_path" yaml:"db_path" validate:"required"`
	LogLevel     string `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogPath      string `koanf:"log_path" yaml:"log_path,omitempty"`
	GeminiAPIKey string `koanf:"gemini_api_key" yaml:"gemini_api_key,omitempty"`
	GeminiModel  string `koanf:"gemini_model" yaml:"gemini_model,omitempty"`
	Theme        string `koanf:"theme" yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"db":           "db_path",
	"log-level":    "log_level",
	"log-file":     "log_path",
	"gemini-model": "gemini_model",
	"theme":        "theme",
}

var validate = validator.New()

// Dir returns the directory holding config, database and log.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cardgraph")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		DBPath:   filepath.Join(Dir(), "cards.db"),
		LogLevel: "info",
		LogPath:  filepath.Join(Dir(), "cardgraph.log"),
		Theme:    "dark",
	}
}

// Load layers defaults, the config file, CARDGRAPH_ environment variables
// and changed flags from fs, in that order. A missing file is not an error,
// but an existing one must not be readable by other users. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Defaults()
	for key, val := range map[string]string{
		"db_path":   def.DBPath,
		"log_level": def.LogLevel,
		"log_path":  def.LogPath,
		"theme":     def.Theme,
	} {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if err := loadFile(k, Path()); err != nil {
		return nil, err
	}

	envCB := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envCB), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if fs != nil {
		flagCB := func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		}
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagCB), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat config: %w", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SuggestionsEnabled reports whether a Gemini key is configured.
func (c *Config) SuggestionsEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
