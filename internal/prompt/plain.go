package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// Plain is a line-based selector for terminals where the full-screen
// checkbox list is unwanted (--plain, dumb terminals). Columns are listed
// with numbers and the user types a comma-separated list of names or
// numbers, with tab completion over the column names.
type Plain struct{}

// Select prompts until the input names a valid selection or the user
// aborts with Ctrl+C/Ctrl+D.
func (Plain) Select(columns []string) ([]string, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns to select from")
	}

	fmt.Println("Available columns:")
	for i, name := range columns {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}
	fmt.Println()
	fmt.Println("Enter columns to keep (comma-separated names or numbers, or 'all'):")

	items := make([]readline.PrefixCompleterInterface, len(columns))
	for i, name := range columns {
		items[i] = readline.PcItem(name)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "columns> ",
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("could not open prompt: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil, ErrCanceled
			}
			return nil, err
		}

		picked, err := parseSelection(line, columns)
		if err != nil {
			fmt.Printf("  %s\n", err)
			continue
		}
		return picked, nil
	}
}

// parseSelection resolves a comma-separated input line against the column
// list. Tokens match column names case-insensitively or 1-based indexes.
func parseSelection(line string, columns []string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	if strings.EqualFold(line, "all") {
		return columns, nil
	}

	byName := make(map[string]string, len(columns))
	for _, col := range columns {
		byName[strings.ToLower(col)] = col
	}

	seen := make(map[string]bool)
	var picked []string
	for _, token := range strings.Split(line, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		var name string
		if n, err := strconv.Atoi(token); err == nil {
			if n < 1 || n > len(columns) {
				return nil, fmt.Errorf("no column %d — valid range is 1-%d", n, len(columns))
			}
			name = columns[n-1]
		} else {
			col, ok := byName[strings.ToLower(token)]
			if !ok {
				return nil, fmt.Errorf("unknown column %q — try tab completion", token)
			}
			name = col
		}

		if !seen[name] {
			seen[name] = true
			picked = append(picked, name)
		}
	}
	return picked, nil
}
