package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/pkg/client"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()

	greenCheck = color.GreenString("✔")
	redCross   = color.RedString("✘")
)

// BeQuietError is returned when the failure was already reported to the user.
type BeQuietError struct{}

func (BeQuietError) Error() string {
	return "command failed"
}

func logSuccess(format string, args ...any) {
	log.Info().Msgf("%s %s", greenCheck, fmt.Sprintf(format, args...))
}

// logError reports a failed API call with its correlation ID and returns a
// BeQuietError so the root command does not print it again.
func logError(err error, msg string) error {
	correlation := ""
	var apiErr client.APIError
	if errors.As(err, &apiErr) {
		correlation = apiErr.CorrelationID
	}

	if reason := failureReason(err); reason != "" {
		log.Error().Msgf("%s %s: %s", redCross, msg, reason)
	} else {
		log.Error().Msgf("%s %s", redCross, msg)
	}
	if correlation != "" {
		log.Error().Msgf("error: %v (correlation ID: %s)", err, correlation)
	} else {
		log.Error().Msgf("error: %v", err)
	}
	return BeQuietError{}
}

func failureReason(err error) string {
	switch {
	case client.SessionEnded(err):
		return "not logged in"
	case errors.Is(err, client.ErrAuthRequired):
		return "unauthorized"
	case errors.Is(err, client.ErrValidation):
		return "invalid input"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, client.ErrNetwork):
		return "server unreachable"
	}
	return ""
}

func applyTableFormat(t table.Writer) {
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	applyTableFormat(t)
	return t
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatTimePtr(t *core.Timestamp) string {
	if t == nil {
		return "-"
	}
	return formatTime(t.Time)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id '%s'", arg)
	}
	return id, nil
}

// readPayloadFile decodes a YAML (or JSON) payload file into v.
func readPayloadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading payload file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing payload file '%s': %w", path, err)
	}
	return nil
}

func bindWhereFlag(flags *pflag.FlagSet, target *string, fields string) {
	flags.StringVarP(target, "where", "w", "", "Filter expression (fields: "+fields+")")
}

// anyChanged reports whether the user set at least one of the named flags.
func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
