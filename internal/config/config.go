// Package config resolves filemanip settings from defaults, an optional YAML
// file, environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
	"filemanip/internal/logging"
	"filemanip/internal/transform"
)

// EnvPrefix is prepended to every environment variable, e.g. FILEMANIP_WRITE_MODE.
const EnvPrefix = "FILEMANIP"

// Setting keys shared by the YAML file, environment and viper.
const (
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyWriteMode      = "write_mode"
	KeyReverseUnit    = "reverse_unit"
	KeyMaxOutputBytes = "max_output_bytes"
)

// DefaultMaxOutputBytes caps the size of a duplicated file (1 GiB).
const DefaultMaxOutputBytes int64 = 1 << 30

// Settings holds the resolved configuration.
type Settings struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	WriteMode      string `yaml:"write_mode"`
	ReverseUnit    string `yaml:"reverse_unit"`
	MaxOutputBytes int64  `yaml:"max_output_bytes"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:       string(logging.LevelWarn),
		LogFormat:      string(logging.FormatAuto),
		WriteMode:      string(domain.WriteModeAtomic),
		ReverseUnit:    string(transform.UnitRune),
		MaxOutputBytes: DefaultMaxOutputBytes,
	}
}

// DefaultPath returns the path to the user configuration file.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "filemanip", "config.yaml"), nil
}

// NewViper returns a viper instance reading FILEMANIP_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// flagKeys maps persistent flag names onto setting keys.
//
//nolint:gochecknoglobals // Static flag binding table
var flagKeys = map[string]string{
	"log-level":        KeyLogLevel,
	"log-format":       KeyLogFormat,
	"write-mode":       KeyWriteMode,
	"reverse-unit":     KeyReverseUnit,
	"max-output-bytes": KeyMaxOutputBytes,
}

// BindFlags binds the setting flags present in flags to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Loader reads settings from a config file and overlays viper values.
type Loader struct {
	fs afero.Fs
	v  *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader(fs afero.Fs, v *viper.Viper) *Loader {
	return &Loader{
		fs: fs,
		v:  v,
	}
}

// Load resolves the settings. An empty path means the default location,
// which may be absent; an explicit path must exist.
func (l *Loader) Load(path string) (*Settings, error) {
	settings := Defaults()

	explicit := path != ""
	if explicit {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.NewConfigurationError("config_path", path, "failed to expand path", err)
		}
		path = expanded
	} else if defaultPath, err := DefaultPath(); err == nil {
		path = defaultPath
	}

	if path != "" {
		if err := l.readFile(path, explicit, &settings); err != nil {
			return nil, err
		}
	}

	l.applyOverrides(&settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (l *Loader) readFile(path string, explicit bool, settings *Settings) error {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.NewConfigurationError("config_path", path, "failed to read config file", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.NewConfigurationError("config_format", "yaml", "failed to parse "+path, err)
	}
	return nil
}

func (l *Loader) applyOverrides(settings *Settings) {
	if l.v == nil {
		return
	}
	if l.v.IsSet(KeyLogLevel) {
		settings.LogLevel = l.v.GetString(KeyLogLevel)
	}
	if l.v.IsSet(KeyLogFormat) {
		settings.LogFormat = l.v.GetString(KeyLogFormat)
	}
	if l.v.IsSet(KeyWriteMode) {
		settings.WriteMode = l.v.GetString(KeyWriteMode)
	}
	if l.v.IsSet(KeyReverseUnit) {
		settings.ReverseUnit = l.v.GetString(KeyReverseUnit)
	}
	if l.v.IsSet(KeyMaxOutputBytes) {
		settings.MaxOutputBytes = l.v.GetInt64(KeyMaxOutputBytes)
	}
}

// Validate checks every setting against its allowed values.
func (s *Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return errors.NewConfigurationError(KeyLogLevel, s.LogLevel, err.Error(), err)
	}
	if _, err := logging.ParseFormat(s.LogFormat); err != nil {
		return errors.NewConfigurationError(KeyLogFormat, s.LogFormat, err.Error(), err)
	}
	switch domain.WriteMode(s.WriteMode) {
	case domain.WriteModeAtomic, domain.WriteModeDirect:
	default:
		return errors.NewConfigurationError(KeyWriteMode, s.WriteMode,
			fmt.Sprintf("unknown write mode %q (supported: atomic, direct)", s.WriteMode), nil)
	}
	if _, err := transform.ParseUnit(s.ReverseUnit); err != nil {
		return errors.NewConfigurationError(KeyReverseUnit, s.ReverseUnit, err.Error(), err)
	}
	if s.MaxOutputBytes < 0 {
		return errors.NewConfigurationError(KeyMaxOutputBytes, fmt.Sprint(s.MaxOutputBytes),
			"must not be negative", nil)
	}
	return nil
}
