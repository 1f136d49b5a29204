package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gds-stream/gdsii"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// pageSize is the number of record lines shown at once.
const pageSize = 20

type recordEntry struct {
	rec    gdsii.Record
	offset int64
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type interactiveModel struct {
	err       error
	streamErr error
	filename  string
	records   []recordEntry
	visible   []int
	filter    textinput.Model
	selected  int
	top       int
	limit     int
	loaded    bool
	state     modelState
}

func newInteractiveModel(filename, filter string, limit int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "LAYER,XY"
	ti.Prompt = "filter: "
	ti.Width = 40
	ti.SetValue(filter)
	return &interactiveModel{
		filename: filename,
		filter:   ti,
		limit:    limit,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err       error
	streamErr error
	records   []recordEntry
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadStream
}

func (m *interactiveModel) loadStream() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer f.Close()

	records, streamErr := collectRecords(newDecoder(bufio.NewReader(f), m.limit))
	return loadedMsg{records: records, streamErr: streamErr}
}

// collectRecords drains d, keeping the records read before any failure.
func collectRecords(d *gdsii.Decoder) ([]recordEntry, error) {
	var records []recordEntry
	for {
		rec, err := d.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, recordEntry{rec: rec, offset: d.Offset()})
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateBrowse
				m.applyFilter()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
				m.scroll()
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
				m.scroll()
			}

		case "pgdown", " ":
			if m.state == stateBrowse {
				m.selected = min(m.selected+pageSize, max(len(m.visible)-1, 0))
				m.scroll()
			}

		case "pgup":
			if m.state == stateBrowse {
				m.selected = max(m.selected-pageSize, 0)
				m.scroll()
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.streamErr = msg.streamErr
		m.applyFilter()
	}

	return m, nil
}

// applyFilter recomputes the visible records from the filter box. Unknown
// names are ignored so partially typed names do not hide everything.
func (m *interactiveModel) applyFilter() {
	want := make(map[gdsii.Tag]bool)
	for _, name := range strings.Split(m.filter.Value(), ",") {
		if e, err := gdsii.LookupName(name); err == nil {
			want[e.Tag] = true
		}
	}

	m.visible = m.visible[:0]
	for i, r := range m.records {
		if len(want) == 0 || want[r.rec.Tag] {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
	m.scroll()
}

func (m *interactiveModel) scroll() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+pageSize {
		m.top = m.selected - pageSize + 1
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Loading stream..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GDSII Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	fmt.Fprintf(&b, "  %d/%d records\n\n", len(m.visible), len(m.records))

	switch m.state {
	case stateBrowse, stateFilter:
		end := min(m.top+pageSize, len(m.visible))
		for i := m.top; i < end; i++ {
			line := m.formatLine(m.records[m.visible[i]])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if m.streamErr != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.streamErr)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter/esc done"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter detail • q quit"))
		}

	case stateDetail:
		b.WriteString(m.formatDetail(m.records[m.visible[m.selected]]))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatLine(e recordEntry) string {
	value := gdsii.FormatValue(e.rec.Value)
	if len(value) > 60 {
		value = value[:57] + "..."
	}
	return fmt.Sprintf("%08X  %-14s %s", e.offset, e.rec.Tag, value)
}

func (m *interactiveModel) formatDetail(e recordEntry) string {
	var b strings.Builder
	tag := e.rec.Tag
	fmt.Fprintf(&b, "%s  0x%04X\n", tagStyle.Render(tag.String()), uint16(tag))
	fmt.Fprintf(&b, "offset:    %d (0x%X)\n", e.offset, e.offset)
	fmt.Fprintf(&b, "kind:      %s\n", kindStyle.Render(e.rec.Kind().String()))
	fmt.Fprintf(&b, "values:    %d\n", e.rec.Value.Len())
	if entry, err := gdsii.Lookup(tag); err == nil && entry.ExpectedSize > 0 {
		fmt.Fprintf(&b, "size:      %d bytes\n", entry.ExpectedSize)
	}
	if frame, err := e.rec.Encode(); err == nil {
		fmt.Fprintf(&b, "frame:     % X\n", frame[:min(len(frame), 32)])
	}
	b.WriteString("\n")

	switch {
	case tag == gdsii.TagXY:
		for i, p := range e.rec.Points() {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%4d  (%d, %d)", i, p[0], p[1])))
			b.WriteString("\n")
		}
	case e.rec.Kind() == gdsii.PayloadDateTime:
		b.WriteString(valueStyle.Render(e.rec.Value.DateTime.Time().Format("2006-01-02 15:04:05 MST")))
	default:
		b.WriteString(valueStyle.Render(gdsii.FormatValue(e.rec.Value)))
	}
	return b.String()
}

func runInteractive(filename, filter string, limit int) error {
	p := tea.NewProgram(newInteractiveModel(filename, filter, limit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
