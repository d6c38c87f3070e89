package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/resumate/resumate/pkg/roles"
)

func newRolesCmd() *cobra.Command {
	var (
		mode      string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List the roles resumes can be scored against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(cmd.OutOrStdout(), mode, outputFmt)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Only list core or extended roles")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text or json")
	return cmd
}

func runRoles(w io.Writer, mode, outputFmt string) error {
	var infos []roles.Info
	switch roles.Mode(mode) {
	case "":
		infos = roles.All()
	case roles.ModeCore:
		infos = roles.Core()
	case roles.ModeExtended:
		infos = roles.Extended()
	default:
		return fmt.Errorf("unknown mode %q (want core or extended)", mode)
	}

	switch outputFmt {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ROLE\tMODE\tDESCRIPTION")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", info.ID, info.Mode(), info.Description)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", outputFmt)
	}
}
