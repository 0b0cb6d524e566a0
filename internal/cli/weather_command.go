package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/config"
	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/repository"
	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/service"
	"github.com/spf13/cobra"
)

// UnexpectedErrorMessage is printed for failures that carry no usable message.
const UnexpectedErrorMessage = "An unexpected error occurred"

// Options wires the command to its environment. Tests replace LoadConfig and HTTPClient.
type Options struct {
	LoadConfig func() (*config.Config, error)
	// HTTPClient overrides the client built from the config timeout.
	HTTPClient *http.Client
	Stdout     io.Writer
	Stderr     io.Writer
}

// DefaultOptions reads configuration from the working directory and the executable's
// directory and talks to the real process streams.
func DefaultOptions() Options {
	return Options{
		LoadConfig: func() (*config.Config, error) {
			return config.Load(config.DefaultSearchDirs()...)
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewRootCommand builds the weather command. Errors are returned, not printed.
func NewRootCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `weather "<city name>"`,
		Short: "Print the current weather for a city",
		Long: `Looks up the current weather for a city on OpenWeatherMap and prints
the temperature in degrees Celsius with a short description.

The API key is read from OPENWEATHERMAP_API_KEY, which may be set in a .env file
next to the program or in the working directory.`,
		Example: `  weather London
  weather "New York"`,
		Args: cobra.ArbitraryArgs,
		// only the first positional argument matters; stray flags are dropped like extra args
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var city string
			if len(args) > 0 {
				city = args[0]
			}
			return run(cmd, opts, city)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	return cmd
}

func run(cmd *cobra.Command, opts Options, city string) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logger.Debugw("configuration loaded", "api_url", cfg.APIURL, "api_key_set", cfg.HasAPIKey(), "timeout", cfg.Timeout)
	for _, skipped := range cfg.SkippedEnvFiles {
		logger.Debugw("ignoring unreadable .env file", "error", skipped)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	repo := repository.NewWeatherRepository(cfg.APIURL, httpClient, logger)
	svc := service.NewWeatherService(repo, cfg.APIKey, logger)

	report, err := svc.GetReport(cmd.Context(), city)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), report.String())
	return err
}

// Execute runs the command with args and reports the outcome: on failure exactly one
// line goes to opts.Stderr. The result is the process exit status.
func Execute(ctx context.Context, args []string, opts Options) int {
	cmd := NewRootCommand(opts)
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorMessage(err))
		return 1
	}
	return 0
}

// ErrorMessage selects the line printed for err.
func ErrorMessage(err error) string {
	var (
		cfgErr       *repository.ConfigurationError
		notFoundErr  *repository.CityNotFoundError
		apiErr       *repository.APIError
		transportErr *repository.TransportError
		unknownErr   *repository.UnknownError
	)

	switch {
	case errors.As(err, &cfgErr):
		return "Error: " + cfgErr.Message
	case errors.As(err, &notFoundErr):
		return fmt.Sprintf(`Error: City "%s" not found`, notFoundErr.City)
	case errors.As(err, &apiErr):
		return "Error: " + apiErr.Message
	case errors.As(err, &transportErr):
		return "Error: " + transportErr.Err.Error()
	case errors.As(err, &unknownErr):
		return UnexpectedErrorMessage
	default:
		return "Error: " + err.Error()
	}
}
