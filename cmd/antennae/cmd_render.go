package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-antennae/internal/prompt"
)

func newRenderCmd(a app, flags *rootFlags) *cobra.Command {
	var (
		dataPath   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "render PAGE [NAME]",
		Short: "Render a template discovered in an HTML page",
		Long: "Render a template discovered in an HTML page. Every other template on the\n" +
			"page is available as a partial. When NAME is omitted on an interactive\n" +
			"terminal, the template is picked from a list.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			if err := tpl.LoadFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			var name string
			if len(args) > 1 {
				name = args[1]
			}
			if name == "" {
				name, err = chooseTemplate(cmd, a, tpl.Names())
				if err != nil {
					return err
				}
			}

			data, err := loadData(dataPath)
			if err != nil {
				return err
			}

			out, err := tpl.Render(name, data)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Template %q written to %s\n", name, outputPath)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON or YAML file with render data")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func chooseTemplate(cmd *cobra.Command, a app, names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no templates found")
	}
	if a.driver == nil || a.interactive == nil || !a.interactive() {
		return "", fmt.Errorf("template name is required (available: %s)", strings.Join(names, ", "))
	}
	return prompt.SelectString(cmd.Context(), a.driver, "Template to render", names)
}
