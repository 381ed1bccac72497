package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/config"
	"github.com/promoshop/storefront/internal/api"
	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/clicks"
	"github.com/promoshop/storefront/internal/panel"
	"github.com/promoshop/storefront/internal/session"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger

	adminPanel *panel.Panel
	store      *catalog.Store
	tracker    *clicks.Tracker
	sess       *session.Store
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promoshop",
	Short: "PromoShop admin panel - manage promotions, coupons and accounts",
	Long: `Back-office tool for the PromoShop storefront. Authenticates against the
backend, manages promotions and coupons, registers administrator accounts and
shows dashboard statistics.`,
	PersistentPreRunE: persistentPreRun,
	SilenceUsage:      true,
	// The notifier already prints the user-facing message; cobra would
	// repeat the raw error underneath it.
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and wires the panel dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	logger = initLogger()

	if cfg == nil {
		return fmt.Errorf("config required for %s command but not loaded", cmd.Name())
	}

	sess = session.NewStore(cfg.Storage.SessionPath)
	client := api.NewClient(api.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	}, sess)

	tracker = clicks.NewTracker(cfg.Storage.ClicksPath)
	store = catalog.NewStore(&api.StoreSource{Client: client, Clicks: tracker})
	adminPanel = panel.New(client, store, sess, consoleNotifier{})

	return nil
}

// consoleNotifier prints operation outcomes the way the panel UI used to
// flash them.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println(msg) }
func (consoleNotifier) Failure(msg string) { fmt.Fprintln(os.Stderr, msg) }

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Always use console format for CLI
	var output io.Writer
	if cfg != nil && cfg.Logging.Format == "json" {
		output = os.Stdout
	} else {
		noColor := false
		if cfg != nil {
			noColor = cfg.Logging.NoColor
		}
		output = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = l
	return &l
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
