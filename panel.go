package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tricolor/internal/colorval"
	"github.com/jask/tricolor/internal/model"
)

// panel groups one bounded field per channel of its color model. Any text
// change emits the panel's current color to its subscribers — including
// invalid edits, which emit a best-effort color composed from the other
// fields' committed values. Apply suppresses outbound emissions so an
// externally pushed color cannot echo back through the ring.
type panel struct {
	variant  model.Variant
	fields   []*field
	subs     []func(colorval.Color)
	suppress bool
	focus    int // index of the focused field, -1 when unfocused
}

func newPanel(v model.Variant) *panel {
	chs := v.Channels()
	fields := make([]*field, len(chs))
	for i, ch := range chs {
		fields[i] = newField(ch)
	}
	return &panel{variant: v, fields: fields, focus: -1}
}

// Subscribe registers a handler invoked with the panel's current color on
// every field text change.
func (p *panel) Subscribe(fn func(colorval.Color)) {
	p.subs = append(p.subs, fn)
}

// CurrentColor composes the generic color from the committed channel values.
// It succeeds even while some fields display invalid text.
func (p *panel) CurrentColor() colorval.Color {
	vals := make([]int, len(p.fields))
	for i, f := range p.fields {
		vals[i] = f.Value()
	}
	return p.variant.FromValues(vals).Color()
}

// Apply sets every field from the given color without notifying subscribers,
// forcing all fields valid. This is the sole mechanism keeping ring
// propagation from cycling.
func (p *panel) Apply(c colorval.Color) {
	p.suppress = true
	defer func() { p.suppress = false }()
	vals := p.variant.Wrap(c).Values()
	for i, f := range p.fields {
		f.SetValue(vals[i])
	}
}

func (p *panel) notify() {
	if p.suppress {
		return
	}
	c := p.CurrentColor()
	for _, fn := range p.subs {
		fn(c)
	}
}

// Invalid reports whether any field currently displays invalid text.
func (p *panel) Invalid() bool {
	for _, f := range p.fields {
		if !f.Valid() {
			return true
		}
	}
	return false
}

func (p *panel) numFields() int { return len(p.fields) }

func (p *panel) focusField(i int) tea.Cmd {
	p.blur()
	if i < 0 || i >= len(p.fields) {
		return nil
	}
	p.focus = i
	return p.fields[i].Focus()
}

func (p *panel) blur() {
	if p.focus >= 0 {
		p.fields[p.focus].Blur()
		p.focus = -1
		p.notify()
	}
}

// finishEdit completes the focused field's edit in place (enter key).
func (p *panel) finishEdit() {
	if p.focus >= 0 {
		p.fields[p.focus].finishEdit()
		p.notify()
	}
}

// revertInvalid reverts any still-invalid field to its committed value.
// Driven by the optional revert tick.
func (p *panel) revertInvalid() {
	reverted := false
	for _, f := range p.fields {
		if !f.Valid() {
			f.finishEdit()
			reverted = true
		}
	}
	if reverted {
		p.notify()
	}
}

// Update routes a message to the focused field and emits a change if its
// text changed.
func (p *panel) Update(msg tea.Msg) tea.Cmd {
	if p.focus < 0 {
		return nil
	}
	cmd, changed := p.fields[p.focus].Update(msg)
	if changed {
		p.notify()
	}
	return cmd
}

func (p *panel) View() string {
	parts := make([]string, 0, len(p.fields)+1)
	parts = append(parts, panelNameStyle.Render(p.variant.Name()))
	for _, f := range p.fields {
		parts = append(parts, f.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
