package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shopping-assistant/config"
	"shopping-assistant/internal/app"
	"shopping-assistant/internal/assistant/delivery/console"
	"shopping-assistant/pkg/log"
)

var (
	backend  string
	plain    bool
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shopping-assistant",
	Short: "Interactive shopping assistant chat",
	Long: `Shopping Assistant answers product comparison, recommendation, feature,
price and review questions in a terminal chat.

Answers come from an LLM provider (backend "llm") or from a browser-driven
web search summarised by the LLM (backend "search"). When the live answer is
unavailable the assistant falls back to built-in offline advice.`,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", `Answer backend: "llm" or "search" (overrides config)`)
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print answers as plain text instead of rendered markdown")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level for diagnostics written to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	if backend != "" {
		if err := os.Setenv("ASSISTANT_BACKEND", backend); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	fmt.Println(color.CyanString("🔄 Initializing %s backend...", cfg.Assistant.Backend))
	asst, err := app.NewAssistant(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer asst.Close()
	fmt.Println(color.GreenString("✅ Shopping Assistant initialized successfully!"))

	h, err := console.New(logger, asst.UseCase, asst.Sessions, console.Config{
		In:         os.Stdin,
		Out:        os.Stdout,
		Backend:    cfg.Assistant.Backend,
		Plain:      plain,
		Interrupts: interrupts,
	})
	if err != nil {
		return err
	}

	return h.Run(ctx)
}
