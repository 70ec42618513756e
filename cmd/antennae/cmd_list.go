package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list PAGE",
		Short: "List templates discovered in an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			if err := tpl.LoadFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := lipgloss.NewRenderer(out)
			nameStyle := renderer.NewStyle().Bold(true)
			faint := renderer.NewStyle().Faint(true)

			names := tpl.Names()
			if len(names) == 0 {
				_, err := fmt.Fprintln(out, faint.Render("no templates found"))
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(out, nameStyle.Render(name)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(out, faint.Render(fmt.Sprintf("%d template(s), engine %s", len(names), tpl.Engine().Name())))
			return err
		},
	}
}
