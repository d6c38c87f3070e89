package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/resumate/resumate/pkg/config"
	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/surface"
	"github.com/resumate/resumate/pkg/validation"
)

type analyzeOpts struct {
	role           string
	mode           string
	outputFmt      string
	skipValidation bool
	save           bool
}

func newAnalyzeCmd(load func() (*config.Config, error)) *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Score a resume against a job role",
		Long: `Validates the document, then scores it against the chosen role's requirements.
When --role is omitted on a terminal, an interactive role picker is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			text, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if opts.role == "" {
				interactive := !readsStdin(args) && isTerminal(os.Stdin) && isTerminal(os.Stdout)
				opts.role, err = chooseRole(cfg.Scoring.DefaultRole, interactive, pickRole)
				if err != nil {
					return err
				}
			}
			return runAnalyze(cmd.OutOrStdout(), cfg, text, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.role, "role", "r", "", "Role to score against (see 'resumate roles')")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Role mode: core or extended (default: the role's own mode)")
	cmd.Flags().StringVarP(&opts.outputFmt, "output", "o", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&opts.skipValidation, "skip-validation", false, "Score even if the document does not look like a resume")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the JSON report under the user cache directory")

	return cmd
}

// chooseRole resolves the role when --role was not given: the interactive
// picker on a terminal, else the configured default.
func chooseRole(defaultRole string, interactive bool, pick func() (string, error)) (string, error) {
	if interactive {
		return pick()
	}
	if defaultRole != "" {
		return defaultRole, nil
	}
	return "", fmt.Errorf("--role is required (see 'resumate roles')")
}

func pickRole() (string, error) {
	all := roles.All()
	items := make([]string, len(all))
	for i, info := range all {
		items[i] = fmt.Sprintf("%s (%s) - %s", info.Label, info.Mode(), info.Description)
	}

	prompt := promptui.Select{
		Label: "Choose the role to score against",
		Items: items,
		Size:  10,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("role selection: %w", err)
	}
	return string(all[idx].ID), nil
}

func runAnalyze(w io.Writer, cfg *config.Config, text string, opts analyzeOpts) error {
	role, err := roles.Parse(opts.role)
	if err != nil {
		return err
	}
	mode, err := roles.ParseMode(opts.mode, role)
	if err != nil {
		return err
	}
	renderer, err := surface.ForFormat(opts.outputFmt)
	if err != nil {
		return err
	}
	if err := checkLength(text, cfg.Scoring.MinTextLength); err != nil {
		return err
	}

	if !opts.skipValidation {
		if v := validation.Validate(text); !v.IsValid {
			if err := renderer.RenderValidation(w, v); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			return errReported
		}
	}

	weights, err := cfg.Weights()
	if err != nil {
		return err
	}
	result, err := scoring.NewEngine(weights).Analyze(scoring.Request{
		ResumeText: text,
		Role:       role,
		RoleMode:   mode,
	})
	if err != nil {
		return err
	}

	if err := renderer.Render(w, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if opts.save {
		saveReport(config.ReportDir(), result)
	}
	return nil
}

// saveReport persists a report to dir. Failures are warnings only.
func saveReport(dir string, result *scoring.AnalysisResult) string {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create report dir: %v\n", err)
		return ""
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal report: %v\n", err)
		return ""
	}

	name := fmt.Sprintf("%s_%s.json", result.Metadata.Role,
		result.Metadata.AnalyzedAt.UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save report: %v\n", err)
		return ""
	}
	fmt.Fprintf(os.Stderr, "Report saved: %s\n", path)
	return path
}
