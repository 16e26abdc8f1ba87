// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string

	cmd *cobra.Command
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	po.cmd = cmd
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().VarP(&formatValue{p: &po.Output}, "output", "o",
		"Output format. One of 'json' or 'yaml'.")
}

// AddErrorJSONArg is for commands whose output is not a board: only errors
// can be printed as JSON.
func AddErrorJSONArg(cmd *cobra.Command, po *OutputOptions) {
	po.cmd = cmd
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Print errors as JSON.")
}

// Format returns the structured output format, or "" for the pretty printer.
func (o *OutputOptions) Format() string {
	if o.Output != "" {
		return o.Output
	}
	if o.JSON {
		return printers.FormatJSON
	}
	return ""
}

// HandleError prints err as {"error": ...} when a structured format was
// asked for. The returned error still fails the command, but cobra will not
// print it a second time.
func (o *OutputOptions) HandleError(err error) error {
	if o.Format() == "" || err == nil {
		return err
	}
	b, jerr := json.Marshal(map[string]string{
		"error": err.Error(),
	})
	if jerr != nil {
		return err
	}
	_, _ = fmt.Fprintln(o.out(), string(b))
	if o.cmd != nil {
		o.cmd.SilenceErrors = true
		o.cmd.SilenceUsage = true
	}
	return &reportedError{err: err}
}

func (o *OutputOptions) out() io.Writer {
	if o.cmd != nil {
		return o.cmd.OutOrStdout()
	}
	return color.Output
}

// reportedError is an error the user has already seen on stdout.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported is true when err was already printed by HandleError.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// formatValue rejects unknown formats while flags are parsed.
type formatValue struct {
	p *string
}

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return *f.p
}

func (f *formatValue) Set(s string) error {
	switch s {
	case printers.FormatJSON, printers.FormatYAML:
		*f.p = s
		return nil
	}
	return fmt.Errorf("unknown format %q, use %q or %q", s, printers.FormatJSON, printers.FormatYAML)
}

func (f *formatValue) Type() string { return "format" }
