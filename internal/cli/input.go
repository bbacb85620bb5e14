package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/spf13/cobra"
)

// readData returns the first argument as bytes, or all of stdin when no
// argument was given. Stdin is returned verbatim.
func readData(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, newLabeledError("Invalid input", "failed to read stdin: %v", err)
	}
	return data, nil
}

// readText is readData with surrounding whitespace removed.
func readText(cmd *cobra.Command, args []string) (string, error) {
	data, err := readData(cmd, args)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", newLabeledError("Invalid input", "no input given: pass an argument or pipe data on stdin")
	}
	return text, nil
}

// readItems returns list input for sort and stream. Positional arguments win;
// otherwise stdin is read as a JSON array or as newline-separated values.
func readItems(cmd *cobra.Command, args []string) ([]any, error) {
	if len(args) > 0 {
		items := make([]any, len(args))
		for i, a := range args {
			items[i] = a
		}
		return items, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, newLabeledError("Invalid input", "failed to read stdin: %v", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []any{}, nil
	}

	if data[0] == '[' {
		decoded, err := value.DecodeJSON(data)
		if err != nil {
			return nil, newLabeledError("Invalid input", "malformed JSON list: %v", err)
		}
		list, ok := decoded.([]any)
		if !ok {
			return nil, newLabeledError("Invalid input", "expected a JSON list")
		}
		return list, nil
	}

	var items []any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newLabeledError("Invalid input", "failed to read stdin: %v", err)
	}
	return items, nil
}
