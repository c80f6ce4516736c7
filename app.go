package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tricolor/internal/colorval"
	"github.com/jask/tricolor/internal/config"
	"github.com/jask/tricolor/internal/model"
)

// app is the coordinator at the center of the panel ring: it tracks the last
// known color for the swatch, runs the modal palette dialog and owns focus
// across the panels' fields.
type app struct {
	cfg        config.Config
	keys       keyMap
	modalKeys  modalKeyMap
	panels     []*panel
	current    colorval.Color
	dialog     *dialogState
	showDialog bool
	focusPanel int
	width      int
	height     int
	status     string
}

type revertTickMsg struct{}

func newApp(cfg config.Config) *app {
	a := &app{
		cfg:       cfg,
		keys:      newKeyMap(),
		modalKeys: modalKeyMap{keyMap: newKeyMap()},
	}
	for _, v := range model.Variants() {
		a.panels = append(a.panels, newPanel(v))
	}
	connectRing(a.panels, a.onPanelChanged)

	initial := initialColor(cfg)
	for _, p := range a.panels {
		p.Apply(initial)
	}
	a.current = initial
	a.status = "Ready. ctrl+p opens the palette."
	return a
}

// initialColor resolves the configured startup color, falling back to
// magenta on anything unparseable.
func initialColor(cfg config.Config) colorval.Color {
	raw := strings.TrimSpace(cfg.UI.InitialColor)
	if c, ok := colorval.ByName(raw); ok {
		return c
	}
	if c, err := colorval.ParseHex(raw); err == nil {
		return c
	}
	c, _ := colorval.ByName("magenta")
	return c
}

// onPanelChanged is the central ring subscriber: record and redisplay, no
// further propagation (the panels already reached each other).
func (a *app) onPanelChanged(c colorval.Color) {
	a.current = c
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.focusAt(0, 0))
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case revertTickMsg:
		for _, p := range a.panels {
			p.revertInvalid()
		}
		return a, nil
	case tea.KeyMsg:
		if a.showDialog {
			return a.updateDialog(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Pick):
			a.dialog = newDialog()
			a.showDialog = true
			return a, nil
		case key.Matches(msg, a.keys.NextField):
			return a, a.cycleFocus(1)
		case key.Matches(msg, a.keys.PrevField):
			return a, a.cycleFocus(-1)
		case key.Matches(msg, a.keys.Confirm):
			a.panels[a.focusPanel].finishEdit()
			return a, nil
		}
	}

	cmd := a.panels[a.focusPanel].Update(msg)
	if a.cfg.UI.RevertAfter > 0 && a.panels[a.focusPanel].Invalid() {
		return a, tea.Batch(cmd, tea.Tick(a.cfg.UI.RevertAfter, func(time.Time) tea.Msg {
			return revertTickMsg{}
		}))
	}
	return a, cmd
}

func (a *app) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := a.dialog.HandleKey(msg.String())
	switch res.Action {
	case dialogSelected:
		a.showDialog = false
		for _, p := range a.panels {
			p.Apply(res.Color)
		}
		a.current = res.Color
		a.status = fmt.Sprintf("Picked %s %s", res.Name, res.Color.Hex())
	case dialogCancelled:
		// cancellation is a strict no-op: panels and swatch keep their color
		a.showDialog = false
	}
	return a, nil
}

// focusAt moves focus to the given panel and field.
func (a *app) focusAt(panelIdx, fieldIdx int) tea.Cmd {
	a.panels[a.focusPanel].blur()
	a.focusPanel = panelIdx
	return a.panels[panelIdx].focusField(fieldIdx)
}

// cycleFocus advances focus by one field, crossing panel boundaries and
// wrapping around. Leaving a field completes its edit.
func (a *app) cycleFocus(dir int) tea.Cmd {
	pi := a.focusPanel
	fi := a.panels[pi].focus
	if fi < 0 {
		fi = 0
	}
	fi += dir
	for fi >= a.panels[pi].numFields() {
		fi -= a.panels[pi].numFields()
		pi = (pi + 1) % len(a.panels)
	}
	for fi < 0 {
		pi = (pi - 1 + len(a.panels)) % len(a.panels)
		fi += a.panels[pi].numFields()
	}
	return a.focusAt(pi, fi)
}

func (a *app) View() string {
	main := a.renderMain()
	statusLine := a.renderStatus(a.status)
	footer := a.renderFooter(a.footerText())
	if a.showDialog {
		return a.composeModal(main, statusLine, footer)
	}
	return a.placeWithFooter(main, statusLine, footer)
}

func (a *app) renderMain() string {
	title := titleStyle.Render("tricolor")
	swatch := a.renderSwatch()
	panelViews := make([]string, 0, len(a.panels))
	for _, p := range a.panels {
		panelViews = append(panelViews, p.View())
	}
	body := title + "\n\n" + swatch + "\n\n" + strings.Join(panelViews, "\n")
	if a.width == 0 {
		return body
	}
	return lipgloss.Place(a.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Top, body)
}

func (a *app) renderSwatch() string {
	height := a.cfg.UI.SwatchHeight
	if height < 1 {
		height = 5
	}
	row := strings.Repeat(" ", 24)
	block := strings.TrimSuffix(strings.Repeat(row+"\n", height), "\n")
	fill := lipgloss.NewStyle().Background(lipgloss.Color(a.current.Hex())).Render
	lines := make([]string, 0, height)
	for _, l := range strings.Split(block, "\n") {
		lines = append(lines, fill(l))
	}
	swatch := swatchStyle.Render(strings.Join(lines, "\n"))
	label := lipgloss.NewStyle().Foreground(colorSubtext0).Render(" " + a.current.Hex())
	return lipgloss.JoinHorizontal(lipgloss.Bottom, swatch, label)
}

func (a *app) footerText() string {
	if a.showDialog {
		return renderHelp(a.modalKeys.ShortHelp())
	}
	return renderHelp(a.keys.ShortHelp())
}

func (a *app) composeModal(base, statusLine, footer string) string {
	baseView := a.placeWithFooter(base, statusLine, footer)
	if a.height == 0 || a.width == 0 {
		return baseView + "\n\n" + modalStyle.Render(a.dialog.View())
	}
	modal := modalStyle.Render(a.dialog.View())
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := a.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (a.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, a.width, targetHeight)
}

func (a *app) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func (a *app) renderStatus(text string) string {
	if a.width == 0 {
		return statusBarStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return statusBarStyle.Render(padRight(flat, a.width-4))
}

func (a *app) renderFooter(text string) string {
	if a.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return footerStyle.Render(padRight(flat, a.width-4))
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}
