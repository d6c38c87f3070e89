package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/resumate/resumate/pkg/config"
	"github.com/resumate/resumate/pkg/surface"
	"github.com/resumate/resumate/pkg/validation"
)

func newValidateCmd(load func() (*config.Config, error)) *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check whether a document is a resume",
		Long: `Looks for standard resume sections and contact identifiers. Exits non-zero
when the document does not qualify as a resume.`,
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
			return runValidate(cmd.OutOrStdout(), text, outputFmt, cfg.Scoring.MinTextLength)
		},
	}

	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json or markdown")
	return cmd
}

func runValidate(w io.Writer, text, outputFmt string, minLength int) error {
	renderer, err := surface.ForFormat(outputFmt)
	if err != nil {
		return err
	}
	if err := checkLength(text, minLength); err != nil {
		return err
	}

	result := validation.Validate(text)
	if err := renderer.RenderValidation(w, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if !result.IsValid {
		return errReported
	}
	return nil
}
