package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyDriver is the production Driver, backed by survey prompts on the
// process terminal.
type SurveyDriver struct {
	styler Styler
	out    io.Writer
}

// SurveyOption configures a SurveyDriver.
type SurveyOption func(*SurveyDriver)

// WithStyler overrides the terminal formatting used for messages.
func WithStyler(styler Styler) SurveyOption {
	return func(d *SurveyDriver) {
		if styler != nil {
			d.styler = styler
		}
	}
}

// WithOutput redirects message output away from stdout.
func WithOutput(w io.Writer) SurveyOption {
	return func(d *SurveyDriver) {
		if w != nil {
			d.out = w
		}
	}
}

// NewSurveyDriver constructs the default terminal driver.
func NewSurveyDriver(options ...SurveyOption) *SurveyDriver {
	d := &SurveyDriver{
		styler: NewANSIStyler(),
		out:    os.Stdout,
	}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Password{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func (d *SurveyDriver) Banner(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, d.styler.Bold(msg))
	return err
}

func (d *SurveyDriver) Error(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, d.styler.Attention(msg))
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
