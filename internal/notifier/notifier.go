package notifier

import (
	"context"
	"fmt"
	"sync"

	"github.com/oshokin/air-raid-monitor/internal/domain/alert"
	"github.com/oshokin/air-raid-monitor/internal/logger"
)

// Profile describes the notification delivered for one kind of transition.
type Profile struct {
	// SoundPath is the audio file played for the transition. Empty skips playback.
	SoundPath string
	// Title is the dialog and push notification title.
	Title string
	// Message is the dialog and push notification body.
	Message string
}

// DefaultRaiseProfile returns the raise texts for a region in the feed's
// native language. Sound path is left empty; it comes from configuration.
func DefaultRaiseProfile(region string) Profile {
	return Profile{
		Title:   "ВСІ В УКРИТТЯ!!!",
		Message: fmt.Sprintf("Увага! Повітряна тривога в регіоні: %s!", region),
	}
}

// DefaultClearProfile returns the clear texts for a region.
func DefaultClearProfile(region string) Profile {
	return Profile{
		Title:   "МОЖНА ПОВЕРТАТИСЬ НА РОБОЧІ МІСЦЯ!",
		Message: fmt.Sprintf("Відбій повітряної тривоги в регіоні: %s!", region),
	}
}

// Notifier delivers the sound-and-dialog pair for raise and clear events.
// Delivery is fire-and-forget: Notify returns before any action completes,
// and action failures are logged inside the notifier, never returned.
type Notifier struct {
	raise  Profile
	clear  Profile
	player SoundPlayer
	dialog DialogPresenter
	push   PushSender

	// inFlight tracks spawned actions so tests can wait for them.
	inFlight sync.WaitGroup
}

// Option customizes a Notifier.
type Option func(*Notifier)

// WithSoundPlayer replaces the default mpg123-based player.
func WithSoundPlayer(p SoundPlayer) Option {
	return func(n *Notifier) {
		n.player = p
	}
}

// WithDialogPresenter replaces the default desktop dialog presenter.
func WithDialogPresenter(d DialogPresenter) Option {
	return func(n *Notifier) {
		n.dialog = d
	}
}

// WithPushSender adds an optional push channel mirroring every notification.
func WithPushSender(p PushSender) Option {
	return func(n *Notifier) {
		n.push = p
	}
}

// New returns a Notifier with the provided raise and clear profiles.
func New(raise, clear Profile, opts ...Option) *Notifier {
	n := &Notifier{
		raise:  raise,
		clear:  clear,
		player: NewSoundPlayer(),
		dialog: NewDialogPresenter(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify dispatches the actions for a raise or clear event and returns
// immediately. EventNone is ignored. The actions of a single event carry no
// ordering guarantee relative to each other; successive Notify calls are
// issued in event order because the poll loop calls this synchronously.
func (n *Notifier) Notify(ctx context.Context, event alert.Event) {
	var (
		profile Profile
		urgent  bool
	)

	switch event {
	case alert.EventRaise:
		profile, urgent = n.raise, true
	case alert.EventClear:
		profile, urgent = n.clear, false
	default:
		return
	}

	if profile.SoundPath == "" {
		logger.DebugKV(ctx, "No sound configured, skipping playback", "event", event.String())
	} else {
		n.dispatch(ctx, event, "sound", func(ctx context.Context) error {
			return n.player.Play(ctx, profile.SoundPath)
		})
	}

	n.dispatch(ctx, event, "dialog", func(ctx context.Context) error {
		return n.dialog.Show(ctx, profile.Title, profile.Message, urgent)
	})

	if n.push != nil {
		n.dispatch(ctx, event, "push", func(ctx context.Context) error {
			return n.push.Send(ctx, profile.Title, profile.Message)
		})
	}
}

// dispatch runs one action on its own goroutine behind an error boundary.
// Neither errors nor panics may reach the poll loop.
func (n *Notifier) dispatch(ctx context.Context, event alert.Event, action string, fn func(context.Context) error) {
	n.inFlight.Add(1)

	go func() {
		defer n.inFlight.Done()

		defer func() {
			if r := recover(); r != nil {
				logger.ErrorKV(ctx, "Notification action panicked",
					"event", event.String(), "action", action, "panic", r)
			}
		}()

		if err := fn(ctx); err != nil {
			logger.ErrorKV(ctx, "Notification action failed",
				"event", event.String(), "action", action, "error", err)
		}
	}()
}

// wait blocks until every dispatched action has finished. Tests only;
// production shutdown deliberately does not wait (best-effort delivery).
func (n *Notifier) wait() {
	n.inFlight.Wait()
}
