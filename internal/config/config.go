package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/impa-jovem/impa/internal/llm"
)

// EnvPrefix is the prefix of environment overrides. Nested keys are
// separated by a double underscore: IMPA_AUTH__BCRYPTCOST=12.
const EnvPrefix = "IMPA_"

type Config struct {
	DB         DBConfig         `koanf:"db"`
	Log        LogConfig        `koanf:"log"`
	Auth       AuthConfig       `koanf:"auth"`
	Assessment AssessmentConfig `koanf:"assessment"`
	LLM        llm.Config       `koanf:"llm"`
}

type DBConfig struct {
	// Path of the SQLite file. Empty means the default data directory.
	Path string `koanf:"path"`
}

type LogConfig struct {
	Mode  string `koanf:"mode" validate:"omitempty,oneof=dev development prod production"`
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AuthConfig defines account-related configuration.
type AuthConfig struct {
	BcryptCost        int    `koanf:"bcryptCost" validate:"min=4,max=31"`
	MentorAccessCode  string `koanf:"mentorAccessCode" validate:"required"`
	MinPasswordLength int    `koanf:"minPasswordLength" validate:"min=1"`
}

// AssessmentConfig bounds the potential-map generator call.
type AssessmentConfig struct {
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxTokens   int           `koanf:"maxTokens" validate:"gt=0"`
	Temperature float64       `koanf:"temperature" validate:"gte=0,lte=2"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Log: LogConfig{Mode: "dev", Level: "warn"},
		Auth: AuthConfig{
			BcryptCost:        10,
			MentorAccessCode:  "ImproveSkills",
			MinPasswordLength: 6,
		},
		Assessment: AssessmentConfig{
			Timeout:     30 * time.Second,
			MaxTokens:   1024,
			Temperature: 0.7,
		},
		LLM: llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/impa/config.yaml, falling back to
// ~/.config/impa/config.yaml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "impa", "config.yaml"), nil
}

// Load layers defaults, the YAML file at path and IMPA_ environment
// variables, in that order. An explicit path must exist; when path is
// empty the default location is used if present.
func Load(path string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(p); err == nil {
			path = p
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, v string) (string, any) {
			return envKey(key, existing), v
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LLM = llm.Discover(cfg.LLM)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps IMPA_AUTH__BCRYPTCOST to auth.bcryptCost, reusing the
// spelling of keys already loaded from the file so both sources merge.
// Variables without a section separator (IMPA_DB, for instance) are
// skipped; the code that owns them reads them directly.
func envKey(raw string, existing map[string]any) string {
	raw = strings.TrimPrefix(raw, EnvPrefix)
	if !strings.Contains(raw, "__") {
		return ""
	}

	segments := strings.Split(strings.ToLower(raw), "__")
	canonical := make([]string, 0, len(segments))
	current := existing
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		matched := seg
		var next map[string]any
		for key, val := range current {
			if strings.EqualFold(key, seg) {
				matched = key
				next, _ = val.(map[string]any)
				break
			}
		}
		canonical = append(canonical, matched)
		current = next
	}
	return strings.Join(canonical, ".")
}

var validate = validator.New()

// Validate checks value ranges and the selected LLM provider.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.LLM.Provider != "" {
		if err := c.LLM.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
