// Package commands implements the hashfn command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that set flag defaults,
// e.g. HASHFN_SEED=42 or HASHFN_LOG_LEVEL=debug.
const EnvPrefix = "HASHFN"

// DefaultTimeout bounds the time a command may spend hashing.
const DefaultTimeout = 5 * time.Minute

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// RootOptions are the flags shared by every subcommand.
type RootOptions struct {
	LogLevel  string
	LogFormat string
	Timeout   time.Duration
}

func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "warn",
		"minimum log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"log output format (text, json)")
	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for hashing all inputs")
}

// NewLogger builds a logger writing to w.
func (o *RootOptions) NewLogger(w io.Writer) (*slog.Logger, error) {
	if !slices.Contains(validLogLevels, o.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q, want one of %s", o.LogLevel, strings.Join(validLogLevels, ", "))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch o.LogFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q, want one of %s", o.LogFormat, strings.Join(validLogFormats, ", "))
	}
}

// New creates the root command.
func New() *cobra.Command {
	ro := &RootOptions{}
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "hashfn",
		Short: "Non-cryptographic hashes and checksums.",
		Long: `hashfn computes Adler checksums, MurmurHash, xxHash and SipHash digests of
files or text.

Every flag can also be set through the environment with the HASHFN_ prefix,
for example HASHFN_ALGORITHM=murmur3-128 or HASHFN_SEED=42.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyEnv(v, cmd)
		},
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(newList())
	cmd.AddCommand(newSum(ro))
	return cmd
}

// applyEnv sets every flag the user did not pass on the command line from
// its environment variable, if present.
func applyEnv(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		val := v.GetString(f.Name)
		if val == f.DefValue {
			return
		}
		if err := cmd.Flags().Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("setting %s from environment: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
