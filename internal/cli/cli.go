package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vk/hepnos-wizard/internal/app"
	"github.com/vk/hepnos-wizard/internal/config"
	"github.com/vk/hepnos-wizard/internal/render"
)

// EnvPrefix prefixes the environment variable of every flag, e.g.
// --num-providers is read from HEPNOS_NUM_PROVIDERS.
const EnvPrefix = "HEPNOS"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var result *app.Config
	cmd := &cobra.Command{
		Use:   "hepnos-gen-config",
		Short: "Generate a configuration file for HEPnOS",
		Long: `Generate the Bedrock configuration of a HEPnOS service: Argobots pools and
execution streams, Yokan databases for each kind of object, and the providers
serving them.

Every flag can also be given as an environment variable, e.g. --num-providers
as HEPNOS_NUM_PROVIDERS. Flags take precedence over the environment, which
takes precedence over the --profile file.`,
		Example:       "  hepnos-gen-config --address ofi+tcp --num-providers 4 --output hepnos.json",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	defineFlags(cmd.Flags())

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, false, err
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := buildConfig(v)
		if err != nil {
			return err
		}
		result = cfg
		return nil
	}

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, usageError(err)
	}
	if result == nil {
		// Help was requested.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", result)
	return result, false, nil
}

func defineFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output file name (default: standard output)")
	fs.String("address", "", "Mercury protocol or address (e.g. na+sm)")
	fs.Bool("use-progress-xstream", false, "Have mercury use a dedicated progress ES")
	fs.Int("num-rpc-xstreams", 0, "Number of ES for RPC handling")
	fs.Int("num-rpc-pools", 0, "Number of RPC pools")
	fs.Int("num-providers", 1, "Number of providers for databases")
	fs.Int("num-queue-providers", 0, "Number of providers for queues")
	fs.Int("num-dataset-databases", 1, "Number of databases for datasets")
	fs.Int("num-run-databases", 1, "Number of databases for runs")
	fs.Int("num-subrun-databases", 1, "Number of databases for subruns")
	fs.Int("num-event-databases", 1, "Number of databases for events")
	fs.Int("num-product-databases", 1, "Number of databases for products")
	fs.String("database-type", "", "Type of database (default: map for datasets/products, set for runs/subruns/events)")
	fs.String("database-path-prefix", "", "Path to databases, if required by the backend")
	fs.String("ssg-group-file", "hepnos.ssg", "SSG file name")
	fs.Bool("jx9", false, "Produce a jx9 output instead of json")
	fs.String("profile", "", "HCL profile file or directory providing default values")
	fs.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
}

// buildConfig reads the values set by flag or environment.
func buildConfig(v *viper.Viper) (*app.Config, error) {
	overrides := &config.Profile{}
	var errs []string
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	overrides.Address = lookupString(v, "address")
	overrides.DatabaseType = lookupString(v, "database-type")
	overrides.DatabasePathPrefix = lookupString(v, "database-path-prefix")
	overrides.GroupFile = lookupString(v, "ssg-group-file")

	var err error
	overrides.UseProgressXStream, err = lookupBool(v, "use-progress-xstream")
	collect(err)

	ints := []struct {
		key string
		dst **int
	}{
		{"num-rpc-xstreams", &overrides.NumRPCXStreams},
		{"num-rpc-pools", &overrides.NumRPCPools},
		{"num-providers", &overrides.NumProviders},
		{"num-queue-providers", &overrides.NumQueueProviders},
		{"num-dataset-databases", &overrides.NumDatasetDatabases},
		{"num-run-databases", &overrides.NumRunDatabases},
		{"num-subrun-databases", &overrides.NumSubrunDatabases},
		{"num-event-databases", &overrides.NumEventDatabases},
		{"num-product-databases", &overrides.NumProductDatabases},
	}
	for _, i := range ints {
		*i.dst, err = lookupInt(v, i.key)
		collect(err)
	}

	jx9, err := lookupBool(v, "jx9")
	collect(err)

	if len(errs) > 0 {
		return nil, &ExitError{Code: 2, Message: strings.Join(errs, "\n")}
	}

	format := render.FormatJSON
	if jx9 != nil && *jx9 {
		format = render.FormatJx9
	}

	cfg, err := app.NewConfig(app.Config{
		ProfilePath: v.GetString("profile"),
		OutputPath:  v.GetString("output"),
		Format:      format,
		Overrides:   overrides,
		LogLevel:    strings.ToLower(v.GetString("log-level")),
		LogFormat:   strings.ToLower(v.GetString("log-format")),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// lookupString returns nil unless key was set by flag or environment.
func lookupString(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}
	s := v.GetString(key)
	return &s
}

func lookupInt(v *viper.Viper, key string) (*int, error) {
	s := lookupString(v, key)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for --%s (%s): must be an integer", *s, key, envName(key))
	}
	return &n, nil
}

func lookupBool(v *viper.Viper, key string) (*bool, error) {
	s := lookupString(v, key)
	if s == nil {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for --%s (%s): must be a boolean", *s, key, envName(key))
	}
	return &b, nil
}
