// Package main provides the semlex binary entry point.
// Semlex fetches RDF descriptions of words and concepts, picks
// language-specific labels out of them, and exposes the lexical helper
// tables used by NLP pipelines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semlex"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cmd, closeApp := rootCmd()
	err := cmd.ExecuteContext(ctx)
	closeApp()
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootCmd builds the command tree. The returned func releases the app and
// must run after Execute, whether or not the command failed.
func rootCmd() (*cobra.Command, func()) {
	var (
		opts appOptions
		a    *app
	)
	current := func() *app { return a }
	closeApp := func() {
		if a != nil {
			a.close()
			a = nil
		}
	}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Linguistic linked-data helper",
		Long: `Semlex retrieves RDF graphs for linked-data resources using HTTP
content negotiation and extracts language-specific attributes from them.

It also exposes the word sanitizer and the language code and
part-of-speech tables used when preparing tokens for WordNet and spaCy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(opts, cmd.ErrOrStderr())
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	cmd.AddCommand(
		newFetchCmd(current),
		newAttrCmd(current),
		newFormatsCmd(),
		newSanitizeCmd(),
		newLookupCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd, closeApp
}
