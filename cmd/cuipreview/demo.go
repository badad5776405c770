package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/robhasacamera/CUIPreviewKit/canvas"
	"github.com/robhasacamera/CUIPreviewKit/internal/config"
	"github.com/robhasacamera/CUIPreviewKit/palette"
	"github.com/robhasacamera/CUIPreviewKit/placeholder"
)

// Pinned placeholders start at 100 so they never collide with counter
// indexes on a visually busy canvas.
const firstPinnedIndex = 100

// footerHeight reserves rows for the status line and help footer.
const footerHeight = 3

// clipboardWriteAll is swappable so tests don't touch the real clipboard.
var clipboardWriteAll = clipboard.WriteAll

// configReloadMsg carries a freshly loaded config from the file watcher.
type configReloadMsg struct {
	cfg config.Config
}

type keyMap struct {
	Add            key.Binding
	AddPinned      key.Binding
	Remove         key.Binding
	ToggleIndex    key.Binding
	ToggleSize     key.Binding
	TogglePosition key.Binding
	Copy           key.Binding
	About          key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.AddPinned, k.Remove, k.Copy},
		{k.ToggleIndex, k.ToggleSize, k.TogglePosition},
		{k.About, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add placeholder")),
		AddPinned:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "add pinned-index placeholder")),
		Remove:         key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove last placeholder")),
		ToggleIndex:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle index overlay")),
		ToggleSize:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle size overlay")),
		TogglePosition: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle position overlay")),
		Copy:           key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy last report")),
		About:          key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "about")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	canvas *canvas.Canvas
	cfg    config.Config
	pal    palette.Palette
	keys   keyMap
	help   help.Model
	logger *zap.Logger

	status     string
	about      string
	showAbout  bool
	width      int
	height     int
	nextPinned int
}

var statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

func newModel(cfg config.Config, logger *zap.Logger) model {
	return model{
		canvas:     canvas.New(canvas.WithCellSize(cfg.CellWidth, cfg.CellHeight)),
		cfg:        cfg,
		pal:        loadPalette(cfg, logger),
		keys:       defaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		about:      renderAbout(80),
		status:     "press a to add a placeholder, ? for help",
		nextPinned: firstPinnedIndex,
	}
}

// loadPalette parses a configured palette override, falling back to the
// built-in one when absent or invalid.
func loadPalette(cfg config.Config, logger *zap.Logger) palette.Palette {
	if len(cfg.Palette) == 0 {
		return palette.Default
	}
	pal, err := palette.Parse(cfg.Palette)
	if err != nil {
		logger.Warn("invalid palette override, using default", zap.Error(err))
		return palette.Default
	}
	return pal
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.about = renderAbout(msg.Width)
		m.canvas.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		return m, nil

	case configReloadMsg:
		m.cfg = msg.cfg
		m.pal = loadPalette(msg.cfg, m.logger)
		m.status = "config reloaded; applies to new placeholders"
		m.logger.Info("applied reloaded config")
		return m, nil

	case tea.KeyMsg:
		if m.showAbout {
			m.showAbout = false
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quitting")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		p := placeholder.New(m.placeholderOptions()...)
		m.canvas.Push(p)
		idx, _ := p.Index()
		m.status = fmt.Sprintf("added placeholder %d", idx)
		m.logger.Debug("placeholder added",
			zap.String("id", p.ID().String()), zap.Int("index", idx))

	case key.Matches(msg, m.keys.AddPinned):
		opts := append(m.placeholderOptions(), placeholder.WithIndex(m.nextPinned))
		p := placeholder.New(opts...)
		m.canvas.Push(p)
		m.status = fmt.Sprintf("added pinned placeholder %d*", m.nextPinned)
		m.logger.Debug("pinned placeholder added",
			zap.String("id", p.ID().String()), zap.Int("index", m.nextPinned))
		m.nextPinned++

	case key.Matches(msg, m.keys.Remove):
		if p := m.canvas.Pop(); p != nil {
			m.status = "removed last placeholder"
			m.logger.Debug("placeholder removed", zap.String("id", p.ID().String()))
		} else {
			m.status = "canvas is empty"
		}

	case key.Matches(msg, m.keys.ToggleIndex):
		m.cfg.ShowIndex = !m.cfg.ShowIndex
		m.status = toggleStatus("index", m.cfg.ShowIndex)

	case key.Matches(msg, m.keys.ToggleSize):
		m.cfg.ShowSize = !m.cfg.ShowSize
		m.status = toggleStatus("size", m.cfg.ShowSize)

	case key.Matches(msg, m.keys.TogglePosition):
		m.cfg.ShowPosition = !m.cfg.ShowPosition
		m.status = toggleStatus("position", m.cfg.ShowPosition)

	case key.Matches(msg, m.keys.Copy):
		if p := m.canvas.Top(); p != nil {
			if err := clipboardWriteAll(p.Report()); err != nil {
				m.status = "clipboard unavailable"
				m.logger.Warn("clipboard write failed", zap.Error(err))
			} else {
				m.status = "copied placeholder report"
			}
		} else {
			m.status = "nothing to copy"
		}

	case key.Matches(msg, m.keys.About):
		m.showAbout = true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// placeholderOptions translates the current config into construction
// options. Placeholder configuration is immutable, so toggles only
// affect placeholders added afterwards.
func (m model) placeholderOptions() []placeholder.Option {
	return []placeholder.Option{
		placeholder.WithCounter(m.canvas.Counter()),
		placeholder.WithPalette(m.pal),
		placeholder.WithCornerRadius(m.cfg.CornerRadius),
		placeholder.WithIndexVisible(m.cfg.ShowIndex),
		placeholder.WithSizeVisible(m.cfg.ShowSize),
		placeholder.WithPositionVisible(m.cfg.ShowPosition),
	}
}

func toggleStatus(name string, on bool) string {
	if on {
		return name + " overlay on for new placeholders"
	}
	return name + " overlay off for new placeholders"
}

func (m model) View() string {
	if m.showAbout {
		return m.about
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.canvas.View(),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)
}

// runDemo drives the bubbletea program with the config watcher alongside
// it. Quitting the UI cancels the watcher and vice versa.
func runDemo(ctx context.Context, cfg config.Config, cfgPath string, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})
	g.Go(func() error {
		return watchConfig(ctx, cfgPath, prog.Send, logger)
	})
	return g.Wait()
}
