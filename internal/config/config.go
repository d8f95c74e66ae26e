package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/logger"
)

const (
	APP_NAME    = "sexpc"
	CONFIG_FILE = "config.yaml"
	ENV_PREFIX  = "SEXPC_"
)

// Settings is the raw, string-typed configuration as found in the config file
// and the environment. Environment values win over the file.
type Settings struct {
	Backend    string `yaml:"backend" env:"SEXPC_BACKEND"`
	OnInvalid  string `yaml:"on_invalid" env:"SEXPC_ON_INVALID"`
	Whitespace string `yaml:"whitespace" env:"SEXPC_WHITESPACE"`
	LogLevel   string `yaml:"log_level" env:"SEXPC_LOG_LEVEL"`
}

type Config struct {
	Backend    Backend
	Policy     lexer.Policy
	Whitespace lexer.Whitespace
	LogLevel   logger.LogLevel
}

func Default() *Config {
	return &Config{
		Backend:    BACKEND_C,
		Policy:     lexer.TRUNCATE,
		Whitespace: lexer.SPACE_ONLY,
		LogLevel:   logger.LevelWarn,
	}
}

// Load reads $XDG_CONFIG_HOME/sexpc/config.yaml, if any, and applies SEXPC_*
// environment overrides on top of it.
func Load() (*Config, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, CONFIG_FILE), envFromOS())
}

// LoadFile is Load with an explicit file path and environment. A missing file
// is not an error.
func LoadFile(path string, env map[string]string) (*Config, error) {
	settings := Settings{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &settings)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	err = MapEnvToStruct(env, &settings)
	if err != nil {
		return nil, err
	}

	cfg, err := settings.Resolve()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}
	return cfg, nil
}

func (s Settings) Resolve() (*Config, error) {
	cfg := Default()

	backend, err := ParseBackend(s.Backend)
	if err != nil {
		return nil, err
	}
	cfg.Backend = backend

	switch s.OnInvalid {
	case "", "truncate":
		cfg.Policy = lexer.TRUNCATE
	case "strict":
		cfg.Policy = lexer.STRICT
	default:
		return nil, fmt.Errorf("unknown on_invalid %q, expected truncate or strict", s.OnInvalid)
	}

	switch s.Whitespace {
	case "", "space":
		cfg.Whitespace = lexer.SPACE_ONLY
	case "any":
		cfg.Whitespace = lexer.ANY_WHITESPACE
	default:
		return nil, fmt.Errorf("unknown whitespace %q, expected space or any", s.Whitespace)
	}

	switch s.LogLevel {
	case "debug":
		cfg.LogLevel = logger.LevelDebug
	case "info":
		cfg.LogLevel = logger.LevelInfo
	case "", "warn":
		cfg.LogLevel = logger.LevelWarn
	case "error":
		cfg.LogLevel = logger.LevelError
	default:
		return nil, fmt.Errorf("unknown log_level %q", s.LogLevel)
	}

	return cfg, nil
}

func (c *Config) ShowAll(w io.Writer) {
	fmt.Fprintf(w, "%sBACKEND='%s'\n", ENV_PREFIX, c.Backend)
	fmt.Fprintf(w, "%sON_INVALID='%s'\n", ENV_PREFIX, c.Policy)
	fmt.Fprintf(w, "%sWHITESPACE='%s'\n", ENV_PREFIX, c.Whitespace)
	fmt.Fprintf(w, "%sLOG_LEVEL='%s'\n", ENV_PREFIX, c.LogLevel)
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	return configDir, nil
}

func envFromOS() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, ENV_PREFIX) {
			env[key] = value
		}
	}
	return env
}

func MapEnvToStruct(data map[string]string, result any) error {
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", result)
	}
	v = v.Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}
		if value, ok := data[envTag]; ok {
			if fieldValue.CanSet() && fieldValue.Kind() == reflect.String {
				fieldValue.SetString(value)
			}
		}
	}

	return nil
}
