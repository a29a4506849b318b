// Package tui is the interactive terminal diary: the day editor, the month
// calendar and the recent trend on one screen.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/images"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/timeutil"
	"tableflip.dev/moodiary/pkg/trend"
	"tableflip.dev/moodiary/pkg/tui/help"
	"tableflip.dev/moodiary/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeText
	modeImages
	modeExport
	modeImport
	modeHelp
)

// ToastDuration is how long the saved confirmation stays up by default.
const ToastDuration = 2 * time.Second

// Options configure the program.
type Options struct {
	TrendDays int
	ExportDir string
	Surface   export.Surface
	Encoder   editor.Batch
	Toast     time.Duration
	// Changes refreshes the displays when the store changes elsewhere.
	Changes <-chan store.Event
}

// Model contains UI state.
type Model struct {
	svc  *app.Service
	ed   *editor.Editor
	ctx  context.Context
	opts Options
	mode mode

	collection record.Collection
	view       view.Model

	input  textinput.Model
	help   *help.Model
	status string
	toast  string
	toastN int

	termWidth  int
	termHeight int
}

type (
	storeChangedMsg struct{}
	toastExpiredMsg struct{ n int }
	imagesMsg       struct {
		urls []string
		err  error
	}
)

// New creates the UI model pointed at today.
func New(ctx context.Context, svc *app.Service, opts Options) (*Model, error) {
	ed, err := editor.New(ctx, svc)
	if err != nil {
		return nil, err
	}
	if opts.Encoder == nil {
		opts.Encoder = images.Encoder{}
	}
	if opts.Surface == nil {
		opts.Surface = export.OpenerSurface{Dir: opts.ExportDir}
	}
	if timeutil.CheckDays(opts.TrendDays) != nil {
		opts.TrendDays = trend.DefaultDays
	}
	if opts.Toast <= 0 {
		opts.Toast = ToastDuration
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Blur()

	m := &Model{
		svc:    svc,
		ed:     ed,
		ctx:    ctx,
		opts:   opts,
		input:  ti,
		help:   help.New(64, 24),
		status: svc.Labels().UI.Hints,
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init starts listening for store changes.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.opts.Changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// refresh rebuilds every view from the store.
func (m *Model) refresh() error {
	c, err := m.svc.Collection(m.ctx)
	if err != nil {
		return err
	}
	m.collection = c
	m.view = view.Build(c, m.ed.State(), m.svc.Today(), view.Options{
		TrendDays: m.opts.TrendDays,
		Locale:    m.svc.Labels(),
	})
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetSize(min(msg.Width-4, 80), msg.Height-4)
	case storeChangedMsg:
		if !m.ed.Editable() {
			if err := m.ed.Reload(m.ctx); err != nil {
				m.notice(err)
			}
		}
		m.sync()
		cmds = append(cmds, m.waitForChange())
	case toastExpiredMsg:
		if msg.n == m.toastN {
			m.toast = ""
		}
	case imagesMsg:
		if msg.err != nil {
			m.notice(msg.err)
		} else if err := m.ed.AddImages(msg.urls); err != nil {
			m.notice(err)
		} else {
			m.status = fmt.Sprintf(m.ui().Staged, len(msg.urls), record.MaxImages)
		}
		m.sync()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			switch msg.String() {
			case "q", "esc", "?":
				m.mode = modeNormal
			default:
				cmds = append(cmds, m.help.Update(msg))
			}
		case modeText, modeImages, modeExport, modeImport:
			cmds = append(cmds, m.updateInput(msg))
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q":
		return tea.Quit
	case "?":
		m.mode = modeHelp
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		n := int(key[0] - '0')
		if n == 0 {
			n = 10
		}
		m.selectScore(n)
	case "+", "=":
		m.selectScore(min(m.ed.State().SelectedScore+1, record.MaxScore))
	case "-":
		m.selectScore(max(m.ed.State().SelectedScore-1, record.MinScore))
	case "i":
		if !m.ed.Editable() {
			m.status = m.readOnlyNotice()
			return nil
		}
		return m.openInput(modeText, m.ed.State().Text, m.ui().PlaceholderText, record.MaxTextLength)
	case "a":
		if !m.ed.Editable() {
			m.status = m.readOnlyNotice()
			return nil
		}
		return m.openInput(modeImages, "", m.ui().PlaceholderImages, 0)
	case "x":
		if n := len(m.ed.State().PendingImages); n > 0 {
			if err := m.ed.RemoveImage(n - 1); err != nil {
				m.notice(err)
			}
			m.sync()
		}
	case "s":
		return m.save()
	case "h", "left":
		m.moveDays(-1)
	case "l", "right":
		m.moveDays(1)
	case "k", "up":
		m.moveDays(-7)
	case "j", "down":
		m.moveDays(7)
	case "[":
		m.ed.PrevMonth()
		m.sync()
	case "]":
		m.ed.NextMonth()
		m.sync()
	case "t":
		if err := m.ed.Reset(m.ctx); err != nil {
			m.notice(err)
		}
		m.sync()
	case "e":
		return m.openInput(modeExport, "text "+timeutil.DefaultWindow, m.ui().PlaceholderExport, 0)
	case "I":
		return m.openInput(modeImport, "", m.ui().PlaceholderImport, 0)
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.status = m.ui().Cancelled
		return nil
	case "enter":
		value := m.input.Value()
		current := m.mode
		m.closeInput()
		return m.submit(current, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) openInput(md mode, value, placeholder string, limit int) tea.Cmd {
	m.mode = md
	m.input.Reset()
	m.input.CharLimit = limit
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) submit(md mode, value string) tea.Cmd {
	switch md {
	case modeText:
		m.ed.SetText(value)
		m.sync()
	case modeImages:
		paths := strings.Fields(value)
		if len(paths) > record.MaxImages {
			m.notice(record.ErrTooManyImages)
			return nil
		}
		enc, ctx := m.opts.Encoder, m.ctx
		return func() tea.Msg {
			urls, err := enc.EncodeAll(ctx, paths)
			return imagesMsg{urls: urls, err: err}
		}
	case modeExport:
		m.export(value)
	case modeImport:
		m.importFile(strings.TrimSpace(value))
	}
	return nil
}

func (m *Model) selectScore(n int) {
	if !m.ed.Editable() {
		m.status = m.readOnlyNotice()
		return
	}
	if err := m.ed.SelectScore(n); err != nil {
		m.notice(err)
		return
	}
	m.sync()
}

func (m *Model) save() tea.Cmd {
	saved, err := m.ed.Save(m.ctx)
	if err != nil {
		m.notice(err)
		return nil
	}
	if !saved {
		m.status = m.readOnlyNotice()
		return nil
	}
	m.sync()
	m.toastN++
	m.toast = m.svc.Labels().Saved
	n := m.toastN
	return tea.Tick(m.opts.Toast, func(time.Time) tea.Msg { return toastExpiredMsg{n: n} })
}

func (m *Model) moveDays(delta int) {
	t, err := day.Parse(m.ed.State().ViewingDate)
	if err != nil {
		t = m.svc.Today()
	}
	next := t.AddDate(0, 0, delta)
	if err := m.ed.SelectDate(m.ctx, day.Format(next)); err != nil {
		m.notice(err)
		return
	}
	m.ed.SetMonth(calendar.CursorFor(next))
	m.sync()
}

func (m *Model) export(value string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return
	}
	w := timeutil.Week
	if len(fields) > 1 {
		parsed, err := timeutil.ParseWindow(fields[1])
		if err != nil {
			m.notice(err)
			return
		}
		w = parsed
	}

	l := m.svc.Labels()
	today := m.svc.Today()
	var (
		doc  export.Document
		path string
		err  error
	)
	switch fields[0] {
	case "text":
		if doc, err = export.Text(m.collection, today, w, l); err == nil {
			path, err = export.WriteFile(m.opts.ExportDir, doc)
		}
	case "print":
		if doc, err = export.Printable(m.collection, today, w, l); err == nil {
			path, err = export.Print(m.ctx, m.opts.Surface, doc)
		}
	case "json":
		var data []byte
		if data, err = export.JSON(m.collection); err == nil {
			doc = export.Document{
				Name:    fmt.Sprintf("%s_%s.json", l.FilePrefix, day.Format(today)),
				Content: data,
				Records: len(m.collection),
			}
			path, err = export.WriteFile(m.opts.ExportDir, doc)
		}
	default:
		m.status = fmt.Sprintf(m.ui().UnknownExport, fields[0])
		return
	}
	if err != nil {
		m.notice(err)
		return
	}
	slog.DebugContext(m.ctx, "export written", "path", path, "records", doc.Records)
	m.status = fmt.Sprintf(m.ui().Exported, doc.Records, path)
}

func (m *Model) importFile(path string) {
	if path == "" {
		m.notice(export.ErrEmptyImport)
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		m.notice(err)
		return
	}
	res, err := m.svc.Import(m.ctx, string(data))
	if err != nil {
		m.notice(err)
		return
	}
	if err := m.ed.Reset(m.ctx); err != nil {
		m.notice(err)
	}
	m.sync()
	m.status = m.svc.Labels().Imported + " " + fmt.Sprintf(m.ui().ImportSummary, res.Merged, len(res.Skipped))
}

func (m *Model) sync() {
	if err := m.refresh(); err != nil {
		m.notice(err)
	}
}

func (m *Model) notice(err error) {
	m.status = m.svc.Labels().Notice(err)
}

func (m *Model) readOnlyNotice() string {
	return m.svc.Labels().ReadOnly
}

// View renders the calendar, trend and editor panes.
func (m *Model) View() string {
	if m.mode == modeHelp {
		return m.help.View()
	}
	l := m.svc.Labels()

	cal := titleStyle.Render(l.MonthTitle(m.view.Calendar.Year, m.view.Calendar.Month)) + "\n" +
		calendar.Render(m.view.Calendar, l, calendarOptions())
	chart := m.renderTrend()
	left := paneStyle.Render(cal + "\n\n" + chart)
	right := paneStyle.Render(m.renderDay())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	if prompt := m.promptLabel(); prompt != "" {
		body += "\n\n" + prompt + m.input.View()
		if m.mode == modeText {
			body += "\n" + faintStyle.Render(l.RemainingText(record.Remaining(m.input.Value())))
		}
	}

	footer := noticeStyle.Render(m.status)
	if m.toast != "" {
		footer = toastStyle.Render(m.toast) + " " + footer
	}
	return body + "\n\n" + footer
}

func (m *Model) promptLabel() string {
	switch m.mode {
	case modeText:
		return m.ui().PromptText
	case modeImages:
		return m.ui().PromptImages
	case modeExport:
		return m.ui().PromptExport
	case modeImport:
		return m.ui().PromptImport
	}
	return ""
}

func (m *Model) ui() locale.UILabels {
	return m.svc.Labels().UI
}

func (m *Model) renderDay() string {
	d := m.view.Day
	l := m.svc.Labels()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", d.Key, d.Weekday)))
	if !d.Editable {
		b.WriteString(" " + readOnlyStyle.Render(l.ReadOnly))
	}
	b.WriteString("\n\n")

	b.WriteString(l.ScoreLabel)
	for n := record.MinScore; n <= record.MaxScore; n++ {
		label := fmt.Sprintf(" %d ", n)
		if n == d.Score {
			b.WriteString(scoreStyle(n).Reverse(true).Render(label))
		} else {
			b.WriteString(faintStyle.Render(label))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(l.TextLabel + "\n")
	if strings.TrimSpace(d.Text) == "" {
		b.WriteString(faintStyle.Render("-"))
	} else {
		b.WriteString(textStyle.Render(d.Text))
	}
	b.WriteString("\n")
	if d.Editable {
		b.WriteString(faintStyle.Render(d.Remaining) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(l.UI.Images, len(d.Images), record.MaxImages))
	return b.String()
}

func (m *Model) renderTrend() string {
	lines := strings.Split(trend.Render(m.view.Trend), "\n")
	for i, line := range lines {
		var level int
		if _, err := fmt.Sscanf(line, "%d", &level); err == nil && level > 0 {
			lines[i] = strings.ReplaceAll(line, trend.Mark, scoreStyle(level).Render(trend.Mark))
		}
	}
	return strings.Join(lines, "\n")
}

// Run starts the program on the terminal.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m, err := New(ctx, svc, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
