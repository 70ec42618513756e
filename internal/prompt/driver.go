// Package prompt wraps the interactive questions the CLI asks. The survey
// backed driver is hidden behind Driver so command logic can be tested with
// scripted answers.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver asks questions on a terminal.
type Driver interface {
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// NewSurveyDriver returns a Driver backed by survey/v2.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

type surveyDriver struct{}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

// SelectString asks the user to pick one of options and returns the choice.
func SelectString(ctx context.Context, driver Driver, message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("prompt: nothing to select")
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message: message,
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", errors.New("prompt: selection out of range")
	}
	return options[idx], nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
