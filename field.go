package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tricolor/internal/model"
)

// field is one validated channel input. It holds the last committed numeric
// value separately from the displayed text: keystrokes that fail the bounds
// predicate flip the field to invalid but never clobber the committed value,
// and finishing the edit snaps the text back to it.
type field struct {
	input     textinput.Model
	ch        model.Channel
	committed int
	valid     bool
}

func newField(ch model.Channel) *field {
	inp := textinput.New()
	inp.Placeholder = ch.Name
	inp.CharLimit = 5
	inp.Width = 5
	inp.Prompt = ""
	f := &field{input: inp, ch: ch, committed: ch.Default, valid: true}
	f.input.SetValue(strconv.Itoa(ch.Default))
	return f
}

// Value returns the last committed numeric value, which is always in bounds.
func (f *field) Value() int { return f.committed }

// Valid reports whether the displayed text currently passes the bounds
// predicate.
func (f *field) Valid() bool { return f.valid }

// Text returns the displayed text, which may be out of bounds mid-edit.
func (f *field) Text() string { return f.input.Value() }

// SetValue is the external-correction path: commit v, redisplay it and force
// the field valid.
func (f *field) SetValue(v int) {
	f.committed = v
	f.valid = true
	f.input.SetValue(strconv.Itoa(v))
}

// handleText reruns the bounds predicate after the text changed. A passing
// value is committed; a failing one leaves the committed value alone.
func (f *field) handleText(txt string) {
	if f.ch.Valid(txt) {
		if v, err := f.ch.Convert(txt); err == nil {
			f.committed = v
		}
		f.valid = true
		return
	}
	f.valid = false
}

// finishEdit ends the edit: unconvertible text is discarded and the display
// returns to the committed value.
func (f *field) finishEdit() {
	f.input.SetValue(strconv.Itoa(f.committed))
	f.valid = true
}

func (f *field) Focus() tea.Cmd { return f.input.Focus() }

// Blur removes focus; losing focus counts as edit completion.
func (f *field) Blur() {
	f.input.Blur()
	f.finishEdit()
}

func (f *field) Focused() bool { return f.input.Focused() }

// Update routes a message to the underlying input and reports whether the
// displayed text changed as a result.
func (f *field) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	after := f.input.Value()
	if after != before {
		f.handleText(after)
		return cmd, true
	}
	return cmd, false
}

func (f *field) View() string {
	style := fieldStyle
	switch {
	case !f.valid:
		style = fieldInvalidStyle
	case f.input.Focused():
		style = fieldFocusStyle
	}
	return style.Render(f.input.View())
}
