package update

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"dashd/internal/lazyload"
	"dashd/internal/model"
	"dashd/internal/refresh"
	"dashd/internal/state"
	"dashd/internal/stats"
	"dashd/internal/storage"
	"dashd/internal/visibility"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewAddTask   View = "AddTask"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	AddTask   string
	HideStats string
	ShowStats string
	Undo      string
	Retry     string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Store          *state.Store
	Repo           storage.Repository
	Memo           *stats.Memo
	Visibility     *visibility.Controller
	Engine         *refresh.Engine
	TasksFuture    *lazyload.Future[[]model.Task]
	Online         bool
	Compact        bool
	Width          int
	SelectedTaskID string
	Cursor         int
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	UndoNotice     *visibility.Notification
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	DesktopEnabled bool

	notifier  DesktopNotifier
	prober    ConnectivityProber
	undoBox   *undoInbox
	clock     func() time.Time
	cfg       RuntimeConfig
	loadTasks func(context.Context) ([]model.Task, error)

	addInput     textinput.Model
	commandInput textinput.Model
	loadSpinner  spinner.Model
	statsBar     progress.Model
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// ConnectivityProber answers the online/offline signal shown in the header.
// The core computations never consult it.
type ConnectivityProber interface {
	Online(ctx context.Context) bool
}

type DialProber struct {
	Addr    string
	Timeout time.Duration
}

func (p DialProber) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", p.Addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

type StaticProber struct {
	Value bool
}

func (p StaticProber) Online(context.Context) bool { return p.Value }

// undoInbox receives the visibility controller's fire-and-forget
// notification during Update and hands it to the model afterwards. The
// controller stays ignorant of bubbletea.
type undoInbox struct {
	mu      sync.Mutex
	pending *visibility.Notification
}

func (b *undoInbox) Notify(n visibility.Notification) {
	b.mu.Lock()
	b.pending = &n
	b.mu.Unlock()
}

func (b *undoInbox) take() *visibility.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.pending
	b.pending = nil
	return n
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TasksLoadedMsg struct {
	Tasks []model.Task
}

type TasksLoadFailedMsg struct {
	Err error
}

type RefreshMsg struct {
	Event refresh.Event
}

type ConnectivityMsg struct {
	Online bool
}

func NewModel() Model {
	cfg := DefaultRuntimeConfig()
	store := state.NewStore(state.Snapshot{
		Name:       cfg.UserName,
		EmojiStyle: cfg.EmojiStyle,
		Settings:   model.DefaultSettings(),
	})
	return newModel(store, nil, nil, NoopDesktopNotifier{}, StaticProber{Value: true}, cfg)
}

func NewModelWithConfig(
	store *state.Store,
	repo storage.Repository,
	engine *refresh.Engine,
	notifier DesktopNotifier,
	prober ConnectivityProber,
	cfg RuntimeConfig,
) Model {
	return newModel(store, repo, engine, notifier, prober, cfg)
}

func newModel(
	store *state.Store,
	repo storage.Repository,
	engine *refresh.Engine,
	notifier DesktopNotifier,
	prober ConnectivityProber,
	cfg RuntimeConfig,
) Model {
	m := Model{
		CurrentView:    ViewDashboard,
		Store:          store,
		Repo:           repo,
		Memo:           &stats.Memo{},
		Engine:         engine,
		Online:         true,
		DesktopEnabled: cfg.DesktopNotifications,
		Keys: GlobalKeyMap{
			AddTask:   "a",
			HideStats: "h",
			ShowStats: "s",
			Undo:      "u",
			Retry:     "r",
			Help:      "?",
			Quit:      "q",
		},
		clock: time.Now,
		cfg:   cfg,
	}
	if notifier != nil {
		m.notifier = notifier
	} else {
		m.notifier = NoopDesktopNotifier{}
	}
	if prober != nil {
		m.prober = prober
	} else {
		m.prober = StaticProber{Value: true}
	}

	m.undoBox = &undoInbox{}
	m.Visibility = visibility.NewController(store, m.undoBox)

	if repo != nil {
		m.loadTasks = func(ctx context.Context) ([]model.Task, error) {
			rows, err := repo.ListTasks(ctx, storage.TaskListFilter{})
			if err != nil {
				return nil, err
			}
			tasks := make([]model.Task, 0, len(rows))
			for _, row := range rows {
				tasks = append(tasks, model.Task{
					ID:        row.ID,
					Name:      row.Name,
					Done:      row.Done,
					Deadline:  row.Deadline,
					CreatedAt: row.CreatedAt,
				})
			}
			return tasks, nil
		}
		m.TasksFuture = lazyload.Begin(context.Background(), m.loadTasks)
	}

	m.initBubbleComponents()
	m.syncSelectedTaskToCursor()
	return m
}

func (m *Model) initBubbleComponents() {
	addInput := textinput.New()
	addInput.Placeholder = "task name"
	addInput.CharLimit = 120
	m.addInput = addInput

	commandInput := textinput.New()
	commandInput.Placeholder = "add buy milk | hide stats | done <id>"
	commandInput.CharLimit = 160
	m.commandInput = commandInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.loadSpinner = sp

	m.statsBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(32))
}

func (m *Model) syncSelectedTaskToCursor() {
	tasks := m.Store.Snapshot().Tasks
	if len(tasks) == 0 {
		m.SelectedTaskID = ""
		m.Cursor = 0
		return
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(tasks) {
		m.Cursor = len(tasks) - 1
	}
	m.SelectedTaskID = tasks[m.Cursor].ID
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewAddTask:
		return true
	default:
		return false
	}
}
