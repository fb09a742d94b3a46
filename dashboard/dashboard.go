// Package dashboard is a read-only terminal viewer for a running repair
// search: it tails a checkpoint directory via file-system notification,
// parses the latest checkpoint with persist, and renders generation, best
// fitness, trials, and a short excerpt of the current best individual. Mean
// fitness is not shown: a checkpoint does not record it. It never writes
// back into the run it is watching.
package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"asmgp/persist"
)

const excerptLines = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// model holds the dashboard's state.
type model struct {
	dir            string
	viewport       viewport.Model
	width          int
	height         int
	watcher        *fsnotify.Watcher
	checkpoint     persist.Checkpoint
	checkpointPath string // path the current checkpoint was loaded from
	lastReload     time.Time
	errorMsg       string
	ready          bool
}

type dirChangeMsg struct{}

type reloadCompleteMsg struct {
	path string
	cp   persist.Checkpoint
	err  error
}

// Run starts the dashboard, watching dir for new or updated checkpoint
// files until the user quits.
func Run(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create dashboard watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch checkpoint dir: %w", err)
	}

	m := model{dir: dir, watcher: watcher, lastReload: time.Now()}

	if path, cp, err := latestCheckpoint(dir); err == nil {
		m.checkpointPath = path
		m.checkpoint = cp
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	watcher.Close()
	if runErr != nil {
		return fmt.Errorf("dashboard error: %w", runErr)
	}
	return nil
}

// latestCheckpoint finds the most recently modified checkpoint file in dir
// and parses it. Final winners (best.<ext>) and per-generation files share
// a directory; the newest file by mtime is always the one worth showing.
func latestCheckpoint(dir string) (string, persist.Checkpoint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", persist.Checkpoint{}, fmt.Errorf("read checkpoint dir: %w", err)
	}

	var newestPath string
	var newestMod time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newestPath == "" || info.ModTime().After(newestMod) {
			newestPath = filepath.Join(dir, e.Name())
			newestMod = info.ModTime()
		}
	}
	if newestPath == "" {
		return "", persist.Checkpoint{}, fmt.Errorf("no checkpoints in %s", dir)
	}

	cp, err := persist.Load(newestPath)
	if err != nil {
		return "", persist.Checkpoint{}, err
	}
	return newestPath, cp, nil
}

func waitForDirChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				time.Sleep(100 * time.Millisecond)
				return dirChangeMsg{}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func reload(dir string) tea.Cmd {
	return func() tea.Msg {
		path, cp, err := latestCheckpoint(dir)
		return reloadCompleteMsg{path: path, cp: cp, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForDirChange(m.watcher), tea.EnterAltScreen)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight, footerHeight := 3, 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderExcerpt())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case dirChangeMsg:
		return m, tea.Batch(reload(m.dir), waitForDirChange(m.watcher))

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			m.checkpoint = msg.cp
			m.checkpointPath = msg.path
			m.lastReload = time.Now()
			m.errorMsg = ""
			m.viewport.SetContent(m.renderExcerpt())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, reload(m.dir)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("asmgp watch: %s", m.dir))
	header := headerStyle.Render(fmt.Sprintf("Generation %-6d Best fitness %-10.4f Trials %d",
		m.checkpoint.Generation, m.checkpoint.Individual.Fitness, m.checkpoint.Individual.Trials))

	body := m.viewport.View()
	status := m.renderStatus()
	help := helpStyle.Render("r: reload | q: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", title, header, body, status, help)
}

func (m model) renderExcerpt() string {
	rep := m.checkpoint.Individual.Representation
	n := len(rep)
	if n > excerptLines {
		n = excerptLines
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%4d  %s\n", i, rep[i].Line.String())
	}
	if len(rep) > excerptLines {
		fmt.Fprintf(&b, "... (%d more instructions)\n", len(rep)-excerptLines)
	}
	return b.String()
}

func (m model) renderStatus() string {
	reloadTime := m.lastReload.Format("15:04:05")
	text := fmt.Sprintf("%s | last reload: %s", filepath.Base(m.checkpointPath), reloadTime)
	if m.errorMsg != "" {
		text = fmt.Sprintf("%s | %s", errorStyle.Render(m.errorMsg), text)
	}
	return statusStyle.Width(m.width).Render(text)
}

// SortedCheckpoints lists a checkpoint directory's files in deterministic
// lexical order, for callers that want more than just the newest checkpoint.
// Lexical order is not numeric generation order: gen.10 sorts before gen.2.
func SortedCheckpoints(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint dir: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
