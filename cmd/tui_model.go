package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/pantry"
)

const (
	minTUIWidth  = 60
	minTUIHeight = 12
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiHaveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	tuiOutStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	tuiUnsetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type tuiLoadConfig struct {
	ctx      context.Context
	location string
	state    *pantry.State
}

type tuiCatalogLoadedMsg struct {
	location string
	entries  []catalog.Entry
}

type tuiCatalogLoadErrMsg struct {
	err error
}

type tuiEntryItem struct {
	entry  catalog.Entry
	status pantry.Status
}

func (e tuiEntryItem) FilterValue() string {
	return e.entry.NormalizedName + " " + strings.ToLower(strings.Join(e.entry.Synonyms, " "))
}

func (e tuiEntryItem) Title() string {
	return fmt.Sprintf("%s %s", statusBadge(e.status), e.entry.Name)
}

func (e tuiEntryItem) Description() string {
	parts := []string{e.entry.Category.Label()}
	if len(e.entry.Synonyms) > 0 {
		parts = append(parts, "aka "+strings.Join(e.entry.Synonyms, ", "))
	}
	if e.entry.Origin == catalog.OriginUser {
		parts = append(parts, "user entry")
	}
	return strings.Join(parts, " | ")
}

func statusBadge(status pantry.Status) string {
	switch status {
	case pantry.StatusAvailable:
		return tuiHaveStyle.Render("[have]")
	case pantry.StatusUnavailable:
		return tuiOutStyle.Render("[out] ")
	default:
		return tuiUnsetStyle.Render("[ -- ]")
	}
}

type pantryTUIModel struct {
	loading  bool
	spinner  spinner.Model
	loadCmd  tea.Cmd
	fatalErr error

	location string
	state    *pantry.State
	dirty    bool

	list list.Model

	width, height int
	tooSmall      bool
}

func newLoadingPantryTUIModel(cfg tuiLoadConfig) pantryTUIModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	delegate := list.NewDefaultDelegate()
	catalogList := list.New(nil, delegate, 0, 0)
	catalogList.Title = "larder"
	catalogList.SetShowStatusBar(false)
	catalogList.SetShowHelp(false)
	catalogList.DisableQuitKeybindings()

	return pantryTUIModel{
		loading:  true,
		spinner:  sp,
		state:    cfg.state,
		location: cfg.location,
		list:     catalogList,
		loadCmd:  loadCatalogCmd(cfg.ctx, cfg.location),
	}
}

func loadCatalogCmd(ctx context.Context, location string) tea.Cmd {
	return func() tea.Msg {
		entries, err := catalog.NewSource().Load(ctx, location)
		if err != nil {
			return tuiCatalogLoadErrMsg{err: err}
		}
		if len(entries) == 0 {
			return tuiCatalogLoadErrMsg{err: fmt.Errorf("catalog %s contains no entries", location)}
		}
		return tuiCatalogLoadedMsg{location: location, entries: entries}
	}
}

func (m pantryTUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd)
}

func (m pantryTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tooSmall = msg.Width < minTUIWidth || msg.Height < minTUIHeight
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tuiCatalogLoadErrMsg:
		m.fatalErr = msg.err
		return m, tea.Quit

	case tuiCatalogLoadedMsg:
		m.loading = false
		m.location = msg.location
		items := make([]list.Item, 0, len(msg.entries))
		for _, entry := range msg.entries {
			items = append(items, tuiEntryItem{
				entry:  entry,
				status: m.state.Status(entry.NormalizedName),
			})
		}
		m.list.SetItems(items)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", " ":
			return m.toggleSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// toggleSelected flips the highlighted entry and refreshes its badge in
// place. A toggle error is fatal: the program quits and reports it.
func (m pantryTUIModel) toggleSelected() (pantryTUIModel, tea.Cmd) {
	item, ok := m.list.SelectedItem().(tuiEntryItem)
	if !ok {
		return m, nil
	}
	if _, _, err := m.state.Toggle(item.entry.NormalizedName); err != nil {
		m.fatalErr = err
		return m, tea.Quit
	}
	m.dirty = true
	item.status = m.state.Status(item.entry.NormalizedName)
	m.list.SetItem(m.list.Index(), item)
	return m, nil
}

func (m pantryTUIModel) View() string {
	if m.tooSmall {
		return tuiMetaStyle.Render(fmt.Sprintf(
			"Terminal too small (need at least %dx%d). Resize or press q to quit.",
			minTUIWidth, minTUIHeight,
		))
	}

	if m.loading {
		return fmt.Sprintf(
			"\n %s %s\n\n %s\n",
			m.spinner.View(),
			tuiHeaderStyle.Render("Loading catalog"),
			tuiMetaStyle.Render(m.location),
		)
	}

	available, unavailable := m.state.Names()
	header := fmt.Sprintf(
		"%s  %s",
		tuiHeaderStyle.Render("larder pantry"),
		tuiMetaStyle.Render(fmt.Sprintf(
			"%d entries | %d available | %d unavailable",
			len(m.list.Items()), len(available), len(unavailable),
		)),
	)
	hints := tuiHintStyle.Render("enter/space toggle | / filter | q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), hints)
}
