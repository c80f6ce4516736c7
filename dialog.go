package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tricolor/internal/colorval"
)

// The palette dialog is the color-selection collaborator: a modal list of
// named colors with a fuzzy query line. It is pure state driven by key names,
// so selection and cancellation are testable without a terminal.

type dialogEntry struct {
	name  string
	color colorval.Color
}

type dialogAction int

const (
	dialogNone dialogAction = iota
	dialogMoved
	dialogSelected
	dialogCancelled
)

type dialogResult struct {
	Action dialogAction
	Name   string
	Color  colorval.Color
}

type dialogState struct {
	entries  []dialogEntry
	filtered []dialogEntry
	query    string
	cursor   int
}

// fuzzy matches within this edit distance still surface, so a query like
// "magneta" finds magenta.
const dialogMaxDistance = 3

func newDialog() *dialogState {
	names := colorval.Names()
	entries := make([]dialogEntry, 0, len(names))
	for _, name := range names {
		c, _ := colorval.ByName(name)
		entries = append(entries, dialogEntry{name: name, color: c})
	}
	d := &dialogState{entries: entries}
	d.rebuildFiltered()
	return d
}

func (d *dialogState) SetQuery(q string) {
	d.query = q
	d.rebuildFiltered()
}

func (d *dialogState) rebuildFiltered() {
	q := strings.ToLower(strings.TrimSpace(d.query))
	if q == "" {
		d.filtered = append([]dialogEntry(nil), d.entries...)
		d.clampCursor()
		return
	}
	type scored struct {
		entry dialogEntry
		score int
	}
	var rows []scored
	for _, e := range d.entries {
		switch {
		case strings.HasPrefix(e.name, q):
			rows = append(rows, scored{entry: e, score: 0})
		case strings.Contains(e.name, q):
			rows = append(rows, scored{entry: e, score: 1})
		default:
			if dist := levenshtein.ComputeDistance(q, e.name); dist <= dialogMaxDistance {
				rows = append(rows, scored{entry: e, score: 2 + dist})
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score < rows[j].score
		}
		return rows[i].entry.name < rows[j].entry.name
	})
	d.filtered = make([]dialogEntry, 0, len(rows))
	for _, r := range rows {
		d.filtered = append(d.filtered, r.entry)
	}
	d.clampCursor()
}

func (d *dialogState) clampCursor() {
	if d.cursor >= len(d.filtered) {
		d.cursor = len(d.filtered) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *dialogState) current() (dialogEntry, bool) {
	if len(d.filtered) == 0 || d.cursor >= len(d.filtered) {
		return dialogEntry{}, false
	}
	return d.filtered[d.cursor], true
}

// HandleKey applies one key press to the dialog and reports what happened.
// Cancellation carries no color: the caller must treat it as a no-op.
func (d *dialogState) HandleKey(keyName string) dialogResult {
	switch keyName {
	case "esc":
		return dialogResult{Action: dialogCancelled}
	case "up", "ctrl+p":
		if d.cursor > 0 {
			d.cursor--
			return dialogResult{Action: dialogMoved}
		}
		return dialogResult{Action: dialogNone}
	case "down", "ctrl+n":
		if d.cursor < len(d.filtered)-1 {
			d.cursor++
			return dialogResult{Action: dialogMoved}
		}
		return dialogResult{Action: dialogNone}
	case "enter":
		entry, ok := d.current()
		if !ok {
			return dialogResult{Action: dialogNone}
		}
		return dialogResult{Action: dialogSelected, Name: entry.name, Color: entry.color}
	case "backspace":
		if d.query != "" {
			runes := []rune(d.query)
			d.SetQuery(string(runes[:len(runes)-1]))
			return dialogResult{Action: dialogMoved}
		}
		return dialogResult{Action: dialogNone}
	}
	if isPrintableKey(keyName) {
		d.SetQuery(d.query + keyName)
		return dialogResult{Action: dialogMoved}
	}
	return dialogResult{Action: dialogNone}
}

func isPrintableKey(keyName string) bool {
	runes := []rune(keyName)
	return len(runes) == 1 && runes[0] >= ' ' && runes[0] != 0x7f
}

const dialogVisibleRows = 10

func (d *dialogState) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a color"))
	b.WriteString("\n")
	b.WriteString("Search: " + d.query + "▌")
	b.WriteString("\n\n")

	top := 0
	if d.cursor >= dialogVisibleRows {
		top = d.cursor - dialogVisibleRows + 1
	}
	end := top + dialogVisibleRows
	if end > len(d.filtered) {
		end = len(d.filtered)
	}
	if len(d.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorSubtext0).Render("no matching colors"))
	}
	for i := top; i < end; i++ {
		entry := d.filtered[i]
		prefix := "  "
		if i == d.cursor {
			prefix = "> "
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(entry.color.Hex())).Render("  ")
		b.WriteString(prefix + swatch + " " + padRight(entry.name, 12) + " " + entry.color.Hex())
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
