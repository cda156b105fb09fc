// Package config loads webidl2wit settings from defaults, an optional TOML
// file, WEBIDL2WIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "webidl2wit.toml"

// EnvPrefix prefixes every environment variable, e.g. WEBIDL2WIT_OUTPUT_DIR.
const EnvPrefix = "WEBIDL2WIT"

// Keys shared by the config file, the environment and the flags.
const (
	KeyOutputDir     = "output_dir"
	KeyInterfaceName = "interface_name"
	KeyStdout        = "stdout"
	KeyAllErrors     = "all_errors"
	KeyDumpTree      = "dump_tree"
	KeyJSONLogs      = "json_logs"
	KeyVerbose       = "verbose"
)

// Config is the resolved configuration of one run.
type Config struct {
	// OutputDir receives <name>.wit for every input.
	OutputDir string `mapstructure:"output_dir"`
	// InterfaceName overrides the WIT interface name derived from the file name.
	InterfaceName string `mapstructure:"interface_name"`
	// Stdout writes WIT to standard output instead of OutputDir.
	Stdout bool `mapstructure:"stdout"`
	// AllErrors reports every unsupported construct instead of the first.
	AllErrors bool `mapstructure:"all_errors"`
	DumpTree  bool `mapstructure:"dump_tree"`
	JSONLogs  bool `mapstructure:"json_logs"`
	Verbose   int  `mapstructure:"verbose"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyInterfaceName, "")
	v.SetDefault(KeyStdout, false)
	v.SetDefault(KeyAllErrors, false)
	v.SetDefault(KeyDumpTree, false)
	v.SetDefault(KeyJSONLogs, false)
	v.SetDefault(KeyVerbose, 0)
}

// New returns a viper instance with defaults and environment binding set
// up, reading configFile from fs when given. Without configFile, FileName
// is read from the working directory if it exists.
func New(fs afero.Fs, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
		return v, nil
	}

	if ok, _ := afero.Exists(fs, FileName); ok {
		v.SetConfigFile(FileName)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", FileName)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var witIdent = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z][a-z0-9]*)*$`)

// Validate checks option values that cannot be caught by the flag parser.
func (c *Config) Validate() error {
	if c.InterfaceName != "" && !witIdent.MatchString(c.InterfaceName) {
		return errors.WithHint(
			errors.Newf("invalid interface name %q", c.InterfaceName),
			"WIT identifiers are lower-case words separated by single dashes, e.g. url-search-params",
		)
	}
	if c.OutputDir == "" && !c.Stdout {
		return errors.New("output directory must not be empty")
	}
	if c.Verbose < 0 {
		return errors.Newf("verbosity must not be negative, got %d", c.Verbose)
	}
	return nil
}
