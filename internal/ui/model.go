package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/controls"
	"github.com/llehouerou/tinywave/internal/ui/playerbar"
)

// Session is what the screen needs from the playback host: the session
// commands plus the host lifetime.
type Session interface {
	playback.Controller
	Done() <-chan struct{}
	Err() error
}

// Model is the player screen.
type Model struct {
	Base

	session  Session
	sub      *playback.Subscription
	resolver *keymap.Resolver

	snap playback.Snapshot
	// isPlaying flips as soon as a button is pressed and is overwritten by
	// every state change the session reports.
	isPlaying bool

	controls controls.Model
	bar      progress.Model
	help     help.Model
	keys     helpKeys

	err   error // last recoverable error, shown under the buttons
	errOp errmsg.Op
	fatal error // reason the host went away
	done  bool
}

// New creates the screen bound to s.
func New(s Session) Model {
	snap := s.Snapshot()
	return Model{
		session:   s,
		sub:       s.Subscribe(),
		resolver:  keymap.Default(),
		snap:      snap,
		isPlaying: snap.IsPlaying(),
		controls:  controls.New(),
		bar:       playerbar.NewBar(),
		help:      help.New(),
		keys:      newHelpKeys(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchEvents(m.sub), WatchDone(m.session))
}

// IsPlaying reports the screen's playing flag.
func (m Model) IsPlaying() bool {
	return m.isPlaying
}

// Fatal returns the failure that ended the host, if any.
func (m Model) Fatal() error {
	return m.fatal
}
