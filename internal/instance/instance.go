package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another monitor process owns the desktop.
var ErrAlreadyRunning = errors.New("another monitor instance is already running")

// EnsureSingle refuses to start when a process with this executable's name is
// already running. Two monitors would double every sound and dialog, so the
// second one exits instead.
func EnsureSingle() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	return ensureSingle(filepath.Base(executable), os.Getpid(), processes)
}

// ensureSingle scans the process list for a same-named process that is not us.
func ensureSingle(executableName string, selfPID int, processes []ps.Process) error {
	for _, process := range processes {
		if process.Pid() == selfPID {
			continue
		}

		if process.Executable() != executableName {
			continue
		}

		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, process.Pid())
	}

	return nil
}
