package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// openInput returns the named file, or stdin for "" and "-"
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readItems reads a JSON array, or one item per line
func readItems(r io.Reader, asJSON bool) ([]any, error) {
	if asJSON {
		var items []any
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}
		return items, nil
	}

	var items []any
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		items = append(items, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return items, nil
}

// loadItems reads items from the optional file argument
func loadItems(args []string, stdin io.Reader, asJSON bool) ([]any, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	in, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return readItems(in, asJSON)
}

// writeItems prints a page as lines or as one JSON document
// checkFormat rejects output formats writeItems cannot produce
func checkFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeItems(w io.Writer, format string, v any, items []any) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(v)
	case "text":
		for _, item := range items {
			var err error
			if s, ok := item.(string); ok {
				_, err = fmt.Fprintln(w, s)
			} else {
				var b []byte
				if b, err = json.Marshal(item); err == nil {
					_, err = fmt.Fprintln(w, string(b))
				}
			}
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
