package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oleg78/yadirect/config"
	"github.com/oleg78/yadirect/direct"
	"github.com/oleg78/yadirect/directv4"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *direct.Client
	clientV4 *directv4.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "yadirect",
	Short: "A client for the Yandex Direct advertising API",
	Long: `yadirect wraps the Yandex Direct API (version 5) for campaign, group
and keyword bid management, plus the legacy v4 API for account balance
and Wordstat keyword reports.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(bidsCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(wordstatCmd)
}

// skipsClientInit reports whether a command runs without configuration
// or API credentials. Completion shell subcommands (bash, zsh, ...) are
// matched through their parent.
func skipsClientInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "upgrade", "version", "help", "completion":
		return true
	}
	if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
		return true
	}
	return false
}

// initializeApp initializes the configuration and API clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if skipsClientInit(cmd) {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Direct v5 client
	var opts []direct.Option
	switch {
	case cfg.Direct.Endpoint != "":
		opts = append(opts, direct.WithEndpoint(cfg.Direct.Endpoint))
	case cfg.Direct.Sandbox:
		opts = append(opts, direct.WithEndpoint(direct.SandboxEndpoint))
	}

	client, err = direct.NewClient(cfg.Direct.Login, cfg.Direct.Token, cfg.Direct.MaxClients, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Direct client: %w", err)
	}

	// Create Direct v4 client (balance and wordstat)
	var v4opts []directv4.Option
	if cfg.Direct.EndpointV4 != "" {
		v4opts = append(v4opts, directv4.WithEndpoint(cfg.Direct.EndpointV4))
	}

	clientV4, err = directv4.NewClient(cfg.Direct.Login, cfg.Direct.Token, logger, v4opts...)
	if err != nil {
		return fmt.Errorf("failed to create Direct v4 client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when not writing to a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the Direct API",
	Long:  `Test the connection to the Yandex Direct API with the configured credentials.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection for login %s...\n", cfg.Direct.Login)

	if err := client.TestConnection(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	if units := client.Units(); units != "" {
		fmt.Printf("API units: %s\n", units)
	}
	return nil
}
