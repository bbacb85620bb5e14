package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Flyrell/ulidkit/internal/config"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// settings is the per-invocation state resolved by the root command.
type settings struct {
	cfg    config.Config
	output string
}

type settingsKey struct{}

func withSettings(ctx context.Context, s settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFrom returns the settings stored on the command context, or the
// defaults when the command runs outside the root command.
func settingsFrom(cmd *cobra.Command) settings {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(settings); ok {
			return s
		}
	}
	cfg := config.Default()
	return settings{cfg: cfg, output: cfg.Output}
}

// render writes v to the command's stdout in the selected output format.
func render(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	switch settingsFrom(cmd).output {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return withLabel("Output failed", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return withLabel("Output failed", err)
		}
		return enc.Close()
	default:
		writeText(out, v, 0)
		return nil
	}
}

// writeBytes writes raw bytes to stdout, bypassing the output format.
func writeBytes(cmd *cobra.Command, data []byte) error {
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func writeText(w io.Writer, v any, indent int) {
	pad := strings.Repeat("  ", indent)
	switch t := v.(type) {
	case value.Record:
		for _, f := range t {
			if isScalar(f.Value) {
				_, _ = fmt.Fprintf(w, "%s%s %s\n", pad, Primary(f.Key+":"), formatScalar(f.Value))
				continue
			}
			_, _ = fmt.Fprintf(w, "%s%s\n", pad, Primary(f.Key+":"))
			writeText(w, f.Value, indent+1)
		}
	case []value.Record:
		for i, r := range t {
			if i > 0 && indent == 0 {
				_, _ = fmt.Fprintln(w)
			}
			writeListItem(w, r, indent)
		}
	case []any:
		for i, item := range t {
			if i > 0 && indent == 0 && !isScalar(item) {
				_, _ = fmt.Fprintln(w)
			}
			writeListItem(w, item, indent)
		}
	case []string:
		for _, s := range t {
			writeListItem(w, s, indent)
		}
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", pad, formatScalar(v))
	}
}

// writeListItem prints one list element. Top-level scalars are bare lines so
// the output can be piped; nested ones are bulleted.
func writeListItem(w io.Writer, item any, indent int) {
	pad := strings.Repeat("  ", indent)
	if isScalar(item) {
		if indent == 0 {
			_, _ = fmt.Fprintln(w, formatScalar(item))
			return
		}
		_, _ = fmt.Fprintf(w, "%s- %s\n", pad, formatScalar(item))
		return
	}
	if indent == 0 {
		writeText(w, item, indent)
		return
	}
	_, _ = fmt.Fprintf(w, "%s-\n", pad)
	writeText(w, item, indent+1)
}

func isScalar(v any) bool {
	switch v.(type) {
	case value.Record, []value.Record, []any, []string:
		return false
	}
	return true
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case map[string]any:
		data, _ := json.Marshal(t)
		return string(data)
	}
	return fmt.Sprint(v)
}
