package notifier

import (
	"context"
	"fmt"

	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/router"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// PushSender mirrors a notification to a remote service.
type PushSender interface {
	Send(ctx context.Context, title, message string) error
}

// shoutrrrSender delivers through a shoutrrr service URL, which covers
// Telegram, ntfy, Discord, and the rest of shoutrrr's targets with one
// configuration string.
type shoutrrrSender struct {
	router *router.ServiceRouter
}

// NewPushSender builds a sender from a shoutrrr service URL.
func NewPushSender(serviceURL string) (PushSender, error) {
	r, err := shoutrrr.CreateSender(serviceURL)
	if err != nil {
		return nil, fmt.Errorf("create push sender: %w", err)
	}

	return &shoutrrrSender{router: r}, nil
}

// Send delivers the message and returns the first delivery error, if any.
func (s *shoutrrrSender) Send(_ context.Context, title, message string) error {
	params := types.Params{"title": title}

	for _, err := range s.router.Send(message, &params) {
		if err != nil {
			return fmt.Errorf("push delivery: %w", err)
		}
	}

	return nil
}
