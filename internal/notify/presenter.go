package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/tinywave/internal/playback"
)

// Verify Presenter implements playback.Surface at compile time.
var _ playback.Surface = (*Presenter)(nil)

// Presenter keeps one desktop notification in sync with the session and
// routes its buttons back as action tags.
type Presenter struct {
	notifier Notifier
	opts     Options
	log      zerolog.Logger

	mu       sync.Mutex
	id       uint32
	last     Content
	onAction func(action string)
}

// NewPresenter creates a presenter over n and starts listening for
// actions on it.
func NewPresenter(n Notifier, opts Options, log zerolog.Logger) *Presenter {
	p := &Presenter{
		notifier: n,
		opts:     opts,
		log:      log,
	}
	n.Listen(p.handleAction, p.handleClosed)
	return p
}

// OnAction sets the function receiving the action tag of every button
// pressed on our notification.
func (p *Presenter) OnAction(fn func(action string)) {
	p.mu.Lock()
	p.onAction = fn
	p.mu.Unlock()
}

// Publish shows or updates the notification for s.
func (p *Presenter) Publish(s playback.Snapshot) error {
	c := Render(s, p.opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.notifier.Notify(c.Notification(p.opts.Icon, p.id))
	if err != nil {
		return err
	}
	p.id = id
	p.last = c
	return nil
}

// Withdraw removes the notification, if one is shown.
func (p *Presenter) Withdraw() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id == 0 {
		return nil
	}
	id := p.id
	p.id = 0
	p.last = Content{}
	return p.notifier.Close(id)
}

// Current returns the content last published and whether a notification
// is shown.
func (p *Presenter) Current() (Content, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.id != 0
}

func (p *Presenter) handleAction(id uint32, key string) {
	p.mu.Lock()
	ours := id != 0 && id == p.id
	fn := p.onAction
	p.mu.Unlock()

	if !ours || fn == nil {
		return
	}
	p.log.Debug().Str("action", key).Msg("notification action")
	fn(key)
}

// handleClosed forgets a notification closed by the user or the server,
// so the next Publish creates a fresh one.
func (p *Presenter) handleClosed(id uint32, reason CloseReason) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == 0 || id != p.id {
		return
	}
	p.log.Debug().Uint32("reason", uint32(reason)).Msg("notification closed")
	p.id = 0
}
