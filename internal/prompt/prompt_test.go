package prompt

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func drive(m model, keys ...string) model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(model)
	}
	return m
}

func TestModelToggleAndConfirm(t *testing.T) {
	m := newModel([]string{"Name", "Age", "City"})

	// Toggle City first, then Name — selection must come back in column order.
	m = drive(m, "down", "down", "space", "up", "up", "space", "enter")

	if !m.confirmed {
		t.Fatal("expected confirmed model")
	}
	if got := m.selected(); !reflect.DeepEqual(got, []string{"Name", "City"}) {
		t.Errorf("expected [Name City], got %v", got)
	}
}

func TestModelToggleTwiceUnchecks(t *testing.T) {
	m := newModel([]string{"A", "B"})
	m = drive(m, "space", "space", "enter")

	if got := m.selected(); got != nil {
		t.Errorf("expected no selection, got %v", got)
	}
}

func TestModelToggleAll(t *testing.T) {
	m := newModel([]string{"A", "B", "C"})

	m = drive(m, "a")
	if got := m.selected(); len(got) != 3 {
		t.Fatalf("expected all checked, got %v", got)
	}

	// A second 'a' clears everything.
	m = drive(m, "a")
	if got := m.selected(); got != nil {
		t.Errorf("expected nothing checked, got %v", got)
	}
}

func TestModelCursorBounds(t *testing.T) {
	m := newModel([]string{"A", "B"})

	m = drive(m, "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first item: %d", m.cursor)
	}

	m = drive(m, "down", "down", "down")
	if m.cursor != 1 {
		t.Errorf("cursor moved past the last item: %d", m.cursor)
	}
}

func TestModelCancel(t *testing.T) {
	m := drive(newModel([]string{"A"}), "space", "esc")
	if !m.canceled {
		t.Error("expected canceled model")
	}

	m = drive(newModel([]string{"A"}), "q")
	if !m.canceled {
		t.Error("expected q to cancel")
	}
}

func TestParseSelection(t *testing.T) {
	columns := []string{"Name", "Age", "City"}

	cases := []struct {
		in   string
		want []string
	}{
		{"all", columns},
		{"Name, City", []string{"Name", "City"}},
		{"name,NAME", []string{"Name"}},
		{"1,3", []string{"Name", "City"}},
		{"3, Age", []string{"City", "Age"}},
		{"", nil},
	}

	for _, c := range cases {
		got, err := parseSelection(c.in, columns)
		if err != nil {
			t.Errorf("parseSelection(%q) error: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseSelection(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := parseSelection("Salary", columns); err == nil {
		t.Error("expected error for unknown column")
	}
	if _, err := parseSelection("9", columns); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestStaticSelect(t *testing.T) {
	s := Static{Columns: []string{"city", "Name"}}

	got, err := s.Select([]string{"Name", "Age", "City"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Name", "City"}) {
		t.Errorf("expected [Name City], got %v", got)
	}

	if _, err := (Static{Columns: []string{"Nope"}}).Select([]string{"A"}); err == nil {
		t.Error("expected error when no requested column exists")
	}
}

func TestAllSelector(t *testing.T) {
	got, err := All().Select([]string{"A", "B"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected every column, got %v", got)
	}
}
