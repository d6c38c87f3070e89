// Package main provides the resumate CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/resumate/resumate/pkg/config"
)

var version = "dev"

// errReported is returned after a command has already rendered its
// outcome, so main only sets the exit code.
var errReported = errors.New("reported")

func main() {
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "resumate",
		Short: "Evidence-based resume validation and scoring",
		Long: `Resumate checks whether a plain-text document is a resume and scores it
against the requirements of a job role, explaining every point awarded or lost.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search for .resumate/config.yaml)")

	load := func() (*config.Config, error) {
		return loadConfig(configPath)
	}
	rootCmd.AddCommand(
		newValidateCmd(load),
		newAnalyzeCmd(load),
		newRolesCmd(),
	)
	return rootCmd
}

// loadConfig reads path, or the nearest .resumate/config.yaml when path is
// empty. A missing file yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// readInput reads the resume text from the file named by args[0], or from
// stdin when no file or "-" is given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// checkLength rejects text too short to have come from a real document.
func checkLength(text string, minLength int) error {
	if len([]rune(strings.TrimSpace(text))) < minLength {
		return fmt.Errorf("could not extract enough text from the resume (need at least %d characters)", minLength)
	}
	return nil
}

func readsStdin(args []string) bool {
	return len(args) == 0 || args[0] == "-"
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
