package notifier

import (
	"context"

	"github.com/gen2brain/beeep"
)

// DialogPresenter shows a desktop notification for a transition.
type DialogPresenter interface {
	Show(ctx context.Context, title, message string, urgent bool) error
}

// beeepPresenter renders through the platform notification surface
// (notify-send/D-Bus on Linux, Notification Center on macOS, toasts on
// Windows). Raise events use the alert variant, clear events the plain one.
type beeepPresenter struct{}

// NewDialogPresenter returns the platform-backed presenter.
func NewDialogPresenter() DialogPresenter {
	return beeepPresenter{}
}

// Show displays the notification and returns any delivery error.
func (beeepPresenter) Show(_ context.Context, title, message string, urgent bool) error {
	if urgent {
		return beeep.Alert(title, message, "")
	}

	return beeep.Notify(title, message, "")
}
