package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/air-raid-monitor/internal/domain/alert"
)

// recordingPlayer records played paths and optionally fails or stalls.
type recordingPlayer struct {
	mu    sync.Mutex
	paths []string
	err   error
	delay time.Duration
}

func (p *recordingPlayer) Play(_ context.Context, path string) error {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, path)

	return p.err
}

func (p *recordingPlayer) played() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.paths...)
}

// recordingDialog records shown titles and urgency flags.
type recordingDialog struct {
	mu     sync.Mutex
	titles []string
	urgent []bool
}

func (d *recordingDialog) Show(_ context.Context, title, _ string, urgent bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.titles = append(d.titles, title)
	d.urgent = append(d.urgent, urgent)

	return nil
}

// recordingPush records pushed titles.
type recordingPush struct {
	mu     sync.Mutex
	titles []string
}

func (p *recordingPush) Send(_ context.Context, title, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titles = append(p.titles, title)

	return nil
}

func testProfiles() (Profile, Profile) {
	raise := DefaultRaiseProfile("kyiv")
	raise.SoundPath = "/sounds/siren.mp3"
	clear := DefaultClearProfile("kyiv")
	clear.SoundPath = "/sounds/all-clear.mp3"

	return raise, clear
}

// TestNotifyRaiseDispatchesSoundAndDialog verifies that a raise event plays
// the raise sound and shows an urgent dialog.
func TestNotifyRaiseDispatchesSoundAndDialog(t *testing.T) {
	t.Parallel()

	player := new(recordingPlayer)
	dialog := new(recordingDialog)
	raise, clear := testProfiles()

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))
	n.Notify(context.Background(), alert.EventRaise)
	n.wait()

	require.Equal(t, []string{"/sounds/siren.mp3"}, player.played())
	require.Equal(t, []string{raise.Title}, dialog.titles)
	require.Equal(t, []bool{true}, dialog.urgent)
}

// TestNotifyClearDispatchesSoundAndDialog verifies that a clear event plays
// the clear sound and shows a non-urgent dialog.
func TestNotifyClearDispatchesSoundAndDialog(t *testing.T) {
	t.Parallel()

	player := new(recordingPlayer)
	dialog := new(recordingDialog)
	raise, clear := testProfiles()

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))
	n.Notify(context.Background(), alert.EventClear)
	n.wait()

	require.Equal(t, []string{"/sounds/all-clear.mp3"}, player.played())
	require.Equal(t, []string{clear.Title}, dialog.titles)
	require.Equal(t, []bool{false}, dialog.urgent)
}

// TestNotifyNoneIsIgnored ensures EventNone dispatches nothing.
func TestNotifyNoneIsIgnored(t *testing.T) {
	t.Parallel()

	player := new(recordingPlayer)
	dialog := new(recordingDialog)
	raise, clear := testProfiles()

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))
	n.Notify(context.Background(), alert.EventNone)
	n.wait()

	require.Empty(t, player.played())
	require.Empty(t, dialog.titles)
}

// TestNotifyReturnsBeforeActionsComplete pins the non-blocking contract:
// a slow sound action must not delay Notify itself.
func TestNotifyReturnsBeforeActionsComplete(t *testing.T) {
	t.Parallel()

	player := &recordingPlayer{delay: 500 * time.Millisecond}
	dialog := new(recordingDialog)
	raise, clear := testProfiles()

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))

	start := time.Now()
	n.Notify(context.Background(), alert.EventRaise)
	elapsed := time.Since(start)

	require.Less(t, elapsed, 100*time.Millisecond)

	n.wait()
	require.Equal(t, []string{"/sounds/siren.mp3"}, player.played())
}

// TestNotifyActionFailuresStayInsideNotifier ensures failing actions are
// absorbed: no panic, and the other action still runs.
func TestNotifyActionFailuresStayInsideNotifier(t *testing.T) {
	t.Parallel()

	player := &recordingPlayer{err: errors.New("no such file")}
	dialog := new(recordingDialog)
	raise, clear := testProfiles()

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))
	n.Notify(context.Background(), alert.EventRaise)
	n.wait()

	require.Equal(t, []string{"/sounds/siren.mp3"}, player.played())
	require.Equal(t, []string{raise.Title}, dialog.titles)
}

// TestNotifySkipsPlaybackWithoutSoundPath ensures an empty sound path skips
// the sound action but still shows the dialog.
func TestNotifySkipsPlaybackWithoutSoundPath(t *testing.T) {
	t.Parallel()

	player := new(recordingPlayer)
	dialog := new(recordingDialog)
	raise := DefaultRaiseProfile("kyiv")
	clear := DefaultClearProfile("kyiv")

	n := New(raise, clear, WithSoundPlayer(player), WithDialogPresenter(dialog))
	n.Notify(context.Background(), alert.EventRaise)
	n.wait()

	require.Empty(t, player.played())
	require.Equal(t, []string{raise.Title}, dialog.titles)
}

// TestNotifyMirrorsToPushSender ensures a configured push channel receives
// the same titles as the dialog.
func TestNotifyMirrorsToPushSender(t *testing.T) {
	t.Parallel()

	player := new(recordingPlayer)
	dialog := new(recordingDialog)
	push := new(recordingPush)
	raise, clear := testProfiles()

	n := New(raise, clear,
		WithSoundPlayer(player), WithDialogPresenter(dialog), WithPushSender(push))
	n.Notify(context.Background(), alert.EventRaise)
	n.Notify(context.Background(), alert.EventClear)
	n.wait()

	require.ElementsMatch(t, []string{raise.Title, clear.Title}, push.titles)
}

// TestDefaultProfilesMentionRegion pins the region interpolation in the
// default dialog texts.
func TestDefaultProfilesMentionRegion(t *testing.T) {
	t.Parallel()

	raise := DefaultRaiseProfile("kyiv")
	require.Contains(t, raise.Message, "kyiv")
	require.NotEmpty(t, raise.Title)

	clear := DefaultClearProfile("kyiv")
	require.Contains(t, clear.Message, "kyiv")
	require.NotEmpty(t, clear.Title)
}
