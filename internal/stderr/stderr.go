//go:build !windows

// Package stderr captures output that audio backends write directly to
// file descriptor 2, bypassing os.Stderr, and forwards it to the log so
// it cannot corrupt the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe and logs every non-empty line at warn
// level. It must run before the audio device is opened. On failure the
// program can continue with the original stderr.
func Start(log zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return errors.Wrap(err, "create stderr pipe")
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return errors.Wrap(err, "dup stderr")
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = syscall.Close(orig)
		r.Close()
		w.Close()
		return errors.Wrap(err, "redirect stderr")
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go forward(r, log.With().Str("source", "stderr").Logger(), done)

	return nil
}

func forward(r *os.File, log zerolog.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.Warn().Msg(line)
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must be visible after the TUI exits.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()

	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for pending lines to be
// logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if pipeRead == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// fd 2 no longer references the pipe, so closing the write end lets
	// the scanner reach EOF.
	pipeWrite.Close()
	<-done
	pipeRead.Close()

	origStderr = -1
	pipeRead = nil
	pipeWrite = nil
}
