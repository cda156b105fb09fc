// Package commands defines the webidl2wit command line.
package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dennwc/webidl2wit/internal/config"
	"github.com/dennwc/webidl2wit/internal/driver"
	"github.com/dennwc/webidl2wit/internal/logger"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"output":     config.KeyOutputDir,
	"name":       config.KeyInterfaceName,
	"stdout":     config.KeyStdout,
	"all-errors": config.KeyAllErrors,
	"dump-tree":  config.KeyDumpTree,
	"json-logs":  config.KeyJSONLogs,
	"verbose":    config.KeyVerbose,
}

// NewRootCmd returns the webidl2wit command. Files are read from and
// written to fs; generated WIT goes to stdout with --stdout.
func NewRootCmd(fs afero.Fs, stdout io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "webidl2wit [flags] <file.webidl>...",
		Short: "Convert WebIDL interfaces to WIT",
		Long: `Convert WebIDL interface definitions to a WIT interface.

Each interface becomes a resource: a u32 handle type, a drop function and
one function per constructor, attribute and operation. The WIT interface is
named after the input file in kebab-case and written to <output>/<name>.wit.

Settings are read from webidl2wit.toml in the working directory (or the file
given with --config) and WEBIDL2WIT_* environment variables; flags override
both.

Examples:
  webidl2wit URLSearchParams.webidl            # writes ./url-search-params.wit
  webidl2wit -o wit/ idl/*.webidl              # one .wit file per input
  webidl2wit --stdout --all-errors Foo.webidl  # report every unsupported construct`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(fs, configFile)
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.JSONLogs, cfg.Verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Logger.Debugw("Configuration loaded", "config", v.ConfigFileUsed(), "settings", cfg)

			return driver.New(fs, stdout, logger.Logger, cfg).Run(args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", ".", "Directory to write .wit files to")
	flags.StringP("name", "n", "", "WIT interface name (default: kebab-case input file name)")
	flags.Bool("stdout", false, "Write WIT to standard output instead of files")
	flags.Bool("all-errors", false, "Report every unsupported construct instead of stopping at the first")
	flags.Bool("dump-tree", false, "Print the WebIDL parse tree to standard output")
	flags.Bool("json-logs", false, "Log as JSON")
	flags.CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	flags.StringVar(&configFile, "config", "", "Config file (default: ./"+config.FileName+")")
	return cmd
}

// bindFlags makes every flag in flagKeys override its configuration key,
// but only when set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			return errors.AssertionFailedf("flag %q is not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %q", name)
		}
	}
	return nil
}
