package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossy/internal/core"
	"github.com/vovakirdan/tui-crossy/internal/games/crossy"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

// MenuChoice is what the player left the title menu for.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemScores
	itemSkin
	itemMusic
	itemEffects
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemScores, itemSkin, itemMusic, itemEffects, itemQuit}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the title screen: start a run, open the scoreboard, or
// change the persisted settings.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	store    *storage.Store
	logger   *log.Logger
	settings storage.Settings
	best     int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	choice   MenuChoice
}

// NewMenuModel creates a menu showing settings, which are written back to
// store whenever they change. store and logger may be nil.
func NewMenuModel(store *storage.Store, settings storage.Settings, best int, cfg core.RuntimeConfig, logger *log.Logger) MenuModel {
	if logger == nil {
		logger = log.Default()
	}
	if _, ok := crossy.LookupSkin(settings.Skin); !ok {
		settings.Skin = crossy.DefaultSkin
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		store:    store,
		logger:   logger,
		settings: settings,
		best:     best,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.toggle(menuItems[m.cursor])

	case key.Matches(msg, m.keys.Select):
		switch item := menuItems[m.cursor]; item {
		case itemPlay:
			m.choice = MenuPlay
			return m, tea.Quit
		case itemScores:
			m.choice = MenuScores
			return m, tea.Quit
		case itemQuit:
			m.choice = MenuQuit
			return m, tea.Quit
		default:
			m.toggle(item)
		}
	}
	return m, nil
}

// toggle changes a setting item and persists the result.
func (m *MenuModel) toggle(item menuItem) {
	switch item {
	case itemSkin:
		m.settings.Skin = crossy.NextSkin(m.settings.Skin)
	case itemMusic:
		m.settings.Music = !m.settings.Music
	case itemEffects:
		m.settings.Effects = !m.settings.Effects
	default:
		return
	}

	if m.store == nil {
		return
	}
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.logger.Warn("could not save settings", "error", err)
	}
}

func (m MenuModel) label(item menuItem) string {
	switch item {
	case itemPlay:
		return "Play"
	case itemScores:
		return "High scores"
	case itemSkin:
		s, _ := crossy.LookupSkin(m.settings.Skin)
		return fmt.Sprintf("Character: %s", s.Banner)
	case itemMusic:
		return "Music: " + onOff(m.settings.Music)
	case itemEffects:
		return "Sound: " + onOff(m.settings.Effects)
	case itemQuit:
		return "Quit"
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C R O S S Y   R O A D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("best lane: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = selectedStyle.Render("> " + m.label(item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the player selected, MenuNone while still browsing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Settings returns the settings as edited in the menu.
func (m MenuModel) Settings() storage.Settings {
	return m.settings
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, measuring styled text
// by its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice   MenuChoice
	Settings storage.Settings
	Config   core.RuntimeConfig
}

// RunMenu runs the title menu in the local terminal.
func RunMenu(store *storage.Store, settings storage.Settings, best int, cfg core.RuntimeConfig, logger *log.Logger) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, settings, best, cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Settings: settings, Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Settings: settings, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Settings: m.Settings(), Config: m.Config()}, nil
}
