// Package main provides the termfolio CLI: the full-screen portfolio
// terminal, its plain line mode, script batches and the content server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"termfolio/internal/config"
	"termfolio/internal/content"
	"termfolio/internal/logger"
	"termfolio/internal/output"
	"termfolio/internal/server"
	"termfolio/internal/services"
	"termfolio/internal/shell"
	"termfolio/internal/terminal"
	"termfolio/internal/version"
)

var (
	cfgFile  string
	testMode bool
	cfg      *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "termfolio - a portfolio you explore from a terminal",
	Long: `termfolio presents a personal portfolio as a simulated terminal.
Browse the blog and portfolio as directories, read the resume and send a
message with the contact form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

// plainCmd runs the line-oriented shell
var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Start the line-oriented shell",
	Long:  `Start termfolio as a plain line-oriented shell. This mode is used automatically when the standard streams are not a terminal.`,
	RunE:  runPlain,
}

// batchCmd runs a file of terminal commands
var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Run a file of terminal commands",
	Long:  `Run every line of a script as if it was typed into the terminal and print the output.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

// serveCmd runs the content server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content API",
	Long:  `Serve blog, portfolio, resume and contact endpoints over HTTP from a content directory or the bundled sample content.`,
	RunE:  runServe,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Formatted())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/termfolio/config.yaml)")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("api-url", "", "Content API base URL (default: bundled content)")
	flags.String("profile", "", "Terminal profile (basic|enhanced)")
	flags.String("speed", "", "Typing speed (instant|fast|medium|slow)")
	flags.String("theme", "", "Color theme")

	bindFlag("log.level", flags, "log-level")
	bindFlag("log.file", flags, "log-file")
	bindFlag("api.url", flags, "api-url")
	bindFlag("terminal.profile", flags, "profile")
	bindFlag("terminal.speed", flags, "speed")
	bindFlag("terminal.theme", flags, "theme")

	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
	serveCmd.Flags().String("content-dir", "", "Content directory (default: bundled sample content)")
	bindFlag("server.addr", serveCmd.Flags(), "addr")
	bindFlag("server.content_dir", serveCmd.Flags(), "content-dir")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Load configuration and configure the logger before any command runs
	cobra.OnInitialize(initConfig)
}

func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
		os.Exit(1)
	}
}

func initConfig() {
	loaded, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logger.Configure(cfg.Log.Level, cfg.Log.File, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func bootstrap() (*shell.Shell, error) {
	sh, err := shell.Bootstrap(cfg, shell.Options{TestMode: testMode})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logger.Debug("Services initialized successfully")
	return sh, nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		logger.Debug("Standard streams are not a terminal, using plain mode")
		return runPlain(cmd, args)
	}

	logger.Info("Starting termfolio", "version", version.Version)
	sh, err := bootstrap()
	if err != nil {
		return err
	}
	services.ConfigureColor(true)
	logger.Discard(cfg.Log.File)

	ctx, stop := signalContext()
	defer stop()
	return terminal.Run(ctx, sh)
}

func runPlain(_ *cobra.Command, _ []string) error {
	logger.Info("Starting termfolio plain shell", "version", version.Version)
	sh, err := bootstrap()
	if err != nil {
		return err
	}
	services.ConfigureColor(isTerminal(os.Stdout))

	ctx, stop := signalContext()
	defer stop()
	return sh.RunPlain(ctx)
}

func runBatch(_ *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting termfolio batch mode", "version", version.Version, "script", scriptPath)

	file, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	sh, err := bootstrap()
	if err != nil {
		return err
	}
	services.ConfigureColor(isTerminal(os.Stdout))
	sh.Output = output.ModeBatch

	ctx, stop := signalContext()
	defer stop()
	sh.Startup(ctx)
	if err := runScript(ctx, sh, file, os.Stdout); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}
	logger.Info("Script executed successfully", "script", scriptPath)
	return nil
}

// runScript interprets every line of r. Lines starting with "#" are comments.
func runScript(ctx context.Context, sh *shell.Shell, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		sh.RunLine(ctx, w, line)
	}
	return scanner.Err()
}

func runServe(_ *cobra.Command, _ []string) error {
	store, err := content.NewStore(shell.ContentFS(cfg.Server.ContentDir))
	if err != nil {
		return fmt.Errorf("failed to open content: %w", err)
	}

	opts := server.Options{Hostname: cfg.Server.Hostname, Mailer: newMailer(cfg.SMTP)}
	srv := server.New(store, opts)

	ctx, stop := signalContext()
	defer stop()

	logger.Info("Starting content server", "addr", cfg.Server.Addr, "version", version.Version,
		"content", contentSource(cfg.Server.ContentDir), "mail", opts.Mailer != nil)
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

// newMailer returns the SMTP mailer, or nil when mail is not configured.
func newMailer(smtp config.SMTP) server.Mailer {
	if mailer := server.NewSMTPMailer(smtp); mailer != nil {
		return mailer
	}
	return nil
}

func contentSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
