package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/desertthunder/mvx/internal/wishlist"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	WishlistView
)

// Catalog is the slice of the movie catalog client the TUI consumes.
type Catalog interface {
	Popular(ctx context.Context) (*tmdb.Page, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   Catalog
	store     *wishlist.Store
	width     int
	height    int
	movieList list.Model
	movies    []tmdb.Movie
	entryList list.Model
	status    string
	err       error
	help      help.Model
	keys      keyMap
}

type moviesFetchedMsg struct {
	page *tmdb.Page
	err  error
}

type toggleDoneMsg struct {
	title string
	added bool
	err   error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog Catalog, store *wishlist.Store) *Model {
	return &Model{
		ctx:     ctx,
		view:    BrowseView,
		catalog: catalog,
		store:   store,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the popular listing.
func (m *Model) Init() tea.Cmd {
	return m.fetchPopular()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.entryList.Width() == 0 {
			m.entryList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case WishlistView:
			return m.handleWishlistKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.movies = msg.page.Results
		m.rebuildMovieList()
		return m, nil

	case toggleDoneMsg:
		if msg.err != nil {
			m.status = styles.warn.Render(fmt.Sprintf("failed to save '%s': %v", msg.title, msg.err))
		} else if msg.added {
			m.status = styles.ok.Render(fmt.Sprintf("added '%s'", msg.title))
		} else {
			m.status = styles.help.Render(fmt.Sprintf("removed '%s'", msg.title))
		}
		m.rebuildMovieList()
		m.rebuildEntryList()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case BrowseView:
		return m.renderBrowse()
	case WishlistView:
		return m.renderWishlist()
	default:
		return ""
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "w":
		m.rebuildEntryList()
		m.view = WishlistView
		return m, nil
	case "enter":
		if selected, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.toggle(selected.movie)
		}
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleWishlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "w":
		m.view = BrowseView
		return m, nil
	case "enter":
		if selected, ok := m.entryList.SelectedItem().(entryItem); ok {
			return m, m.toggle(tmdb.Movie{ID: selected.entry.ID, Title: selected.entry.Title})
		}
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case BrowseView:
		m.movieList, cmd = m.movieList.Update(msg)
	case WishlistView:
		m.entryList, cmd = m.entryList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPopular() tea.Cmd {
	return func() tea.Msg {
		page, err := m.catalog.Popular(m.ctx)
		return moviesFetchedMsg{page: page, err: err}
	}
}

func (m *Model) toggle(movie tmdb.Movie) tea.Cmd {
	return func() tea.Msg {
		added, err := m.store.Toggle(m.ctx, wishlist.Movie{ID: movie.ID, Title: movie.Title})
		return toggleDoneMsg{title: movie.Title, added: added, err: err}
	}
}

// rebuildMovieList refreshes the browse list, preserving the cursor position.
func (m *Model) rebuildMovieList() {
	index := m.movieList.Index()
	items := make([]list.Item, len(m.movies))
	for i, movie := range m.movies {
		items[i] = movieItem{movie: movie, saved: m.store.IsMember(movie.ID)}
	}
	m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.movieList.Title = "Popular Movies"
	m.movieList.SetSize(m.width-4, m.height-8)
	m.movieList.Select(index)
}

// rebuildEntryList refreshes the wishlist view from the store.
func (m *Model) rebuildEntryList() {
	entries := m.store.Entries()
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry}
	}
	m.entryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.entryList.Title = fmt.Sprintf("Wishlist (%d)", len(entries))
	m.entryList.SetSize(m.width-4, m.height-8)
}

func (m *Model) renderBrowse() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.wishlist, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.movieList.View(), m.status, helpView)
}

func (m *Model) renderWishlist() string {
	removeKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "remove"),
	)
	helpKeys := []key.Binding{removeKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.entryList.View(), m.status, helpView)
}
