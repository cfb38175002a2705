// Package editor collects free-form user input by round-tripping a
// field/value form through an external text editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Field is one editable form entry. Order is preserved in the rendered
// form.
type Field struct {
	Name  string
	Value string
}

// Session runs a form through the configured editor command.
type Session struct {
	// Command is the editor invocation, possibly with arguments
	// ("code -w"). The form path is appended.
	Command string
}

// Edit writes the fields as "name: value" lines to a temporary file, opens
// it in the editor, and parses the result back. Lines starting with # are
// comments and ignored; unknown keys are dropped; a field may come back
// unchanged, changed, or reordered. The returned map always holds every
// input field name.
func (s *Session) Edit(ctx context.Context, comment string, fields []Field) (map[string]string, error) {
	if strings.TrimSpace(s.Command) == "" {
		return nil, fmt.Errorf("no editor configured")
	}

	tmp, err := os.CreateTemp("", "booki-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(renderForm(comment, fields)); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close form file: %w", err)
	}

	if err := s.open(ctx, path); err != nil {
		return nil, err
	}

	after, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	return ParseForm(string(after), fields), nil
}

func (s *Session) open(ctx context.Context, path string) error {
	parts := strings.Fields(s.Command)
	args := append(parts[1:], path)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %q: %w", s.Command, err)
	}
	return nil
}

func renderForm(comment string, fields []Field) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(comment), "\n") {
		if line == "" {
			continue
		}
		b.WriteString("# ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, field := range fields {
		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(field.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseForm extracts known field values from edited form text. Only the
// first colon splits a line, so values may contain colons. Fields absent
// from the edited text keep their original value.
func ParseForm(text string, fields []Field) map[string]string {
	known := make(map[string]struct{}, len(fields))
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		known[field.Name] = struct{}{}
		values[field.Name] = field.Value
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, ok := known[key]; !ok {
			continue
		}
		values[key] = strings.TrimSpace(rest)
	}
	return values
}
