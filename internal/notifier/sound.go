package notifier

import (
	"context"
	"os/exec"
)

// defaultPlayerBinary is the command-line player used for alert sounds.
const defaultPlayerBinary = "mpg123"

// SoundPlayer plays an audio file to completion.
type SoundPlayer interface {
	Play(ctx context.Context, path string) error
}

// execSoundPlayer shells out to a command-line audio player. The monitor
// targets desktop machines where mpg123 is the conventional choice; the
// binary name is kept separate so tests can substitute a stub.
type execSoundPlayer struct {
	binary string
}

// NewSoundPlayer returns the default command-line backed player.
func NewSoundPlayer() SoundPlayer {
	return &execSoundPlayer{binary: defaultPlayerBinary}
}

// Play runs the player and waits for it to exit so a missing file or a
// failing binary is observable as an error. The caller already runs this on
// a detached goroutine, so waiting here does not block the poll loop.
func (p *execSoundPlayer) Play(ctx context.Context, path string) error {
	return exec.CommandContext(ctx, p.binary, "-q", path).Run()
}
