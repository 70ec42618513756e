// Command antennae lists and renders templates embedded in HTML pages.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-antennae/internal/prompt"
)

const appName = "antennae"

func main() {
	rootCmd := newRootCmd(app{
		driver:      prompt.NewSurveyDriver(),
		interactive: stdinIsTerminal,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
