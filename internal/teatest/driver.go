// Package teatest drives bubbletea models in tests without a tea.Program.
//
// Update is called directly and returned Cmds are run in place, so a test
// sees the model exactly as it is after each key. Cmds that block, such as
// the cursor blink timers of huh inputs, time out and are dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds how many Cmds one Send may run, so a model that keeps
// scheduling itself cannot hang a test.
const maxSteps = 100

// cmdTimeout is how long a Cmd may run before it is dropped. Cursor blink
// Cmds block for ~530ms.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model and keeps the latest model value.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd returns tea.QuitMsg. Outside a program
	// nothing else stops the model, so later sends are ignored.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit afterwards to run the model's Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send passes msg to Update and runs every Cmd that follows from it.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressKeys sends each rune of keys in order.
func (d *Driver) PressKeys(keys string) {
	d.T.Helper()
	for _, r := range keys {
		d.PressKey(r)
	}
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyLeft})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRight})
}

func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains reports whether the rendered view contains s.
func (d *Driver) ViewContains(s string) bool {
	return strings.Contains(d.View(), s)
}

// run executes cmd and everything it leads to, breadth first. Batches are
// expanded into the queue; other messages go back through Update.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps >= maxSteps {
			d.T.Logf("teatest: stopped after %d commands", maxSteps)
			return
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := runWithTimeout(next)
		if !ok || msg == nil || isBlink(msg) {
			continue
		}

		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, m...)
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(m)
			return
		default:
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(m)
			queue = append(queue, follow)
		}
	}
}

func runWithTimeout(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor, which
// would otherwise reschedule timers forever.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
