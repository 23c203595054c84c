//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback
var binPath = "actionsearch_e2e"

const (
	KeyEnter  = "\r"
	KeyEscape = "\x1b"
	KeyCtrlC  = "\x03"
	KeyDown   = "\x1b[B"
	KeyUp     = "\x1b[A"
	KeyBack   = "\x7f"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// Dialog drives the search dialog binary through a PTY
type Dialog struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool

	done chan struct{}
}

// NewDialog creates a driver with an isolated workspace
func NewDialog(t *testing.T) *Dialog {
	d := &Dialog{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
	t.Cleanup(d.Cleanup)
	return d
}

// ConfigPath is the config file used by Start
func (d *Dialog) ConfigPath() string {
	return filepath.Join(d.workspace, "config.toml")
}

// WriteConfig stores a TOML config in the workspace
func (d *Dialog) WriteConfig(content string) {
	d.t.Helper()
	if err := os.WriteFile(d.ConfigPath(), []byte(content), 0644); err != nil {
		d.t.Fatalf("failed to write config: %v", err)
	}
}

// Start launches the palette in a PTY
func (d *Dialog) Start(args ...string) error {
	cmdArgs := append([]string{"--config", d.ConfigPath(), "--log-file", filepath.Join(d.workspace, "e2e.log")}, args...)
	d.cmd = exec.Command(binPath, cmdArgs...)

	d.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+d.workspace,
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	d.pty = ptyFile
	d.tty = tty
	d.cmd.Stdout = tty
	d.cmd.Stdin = tty
	d.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := d.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	d.done = make(chan struct{})
	go func(cmd *exec.Cmd) {
		_ = cmd.Wait()
		close(d.done)
	}(d.cmd)

	go d.read()
	return nil
}

func (d *Dialog) read() {
	buf := make([]byte, 8192)
	for {
		n, err := d.pty.Read(buf)
		if n > 0 {
			d.mu.Lock()
			for i := 0; i < n; i++ {
				d.buf[d.head] = buf[i]
				d.head = (d.head + 1) % ringSize
				if d.head == 0 {
					d.full = true
				}
			}
			d.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Type sends keystrokes to the dialog
func (d *Dialog) Type(keys string) {
	d.t.Helper()
	if _, err := d.pty.Write([]byte(keys)); err != nil {
		d.t.Fatalf("failed to send keys: %v", err)
	}
}

// See waits for plain text to appear in the normalized output
func (d *Dialog) See(text string) bool {
	d.t.Helper()
	return d.WaitFor(func(s string) bool { return strings.Contains(s, text) }, 3*time.Second)
}

// WaitFor polls the normalized output until pred holds or the timeout passes
func (d *Dialog) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(d.SnapshotPlain()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Exited waits for the process to terminate
func (d *Dialog) Exited(timeout time.Duration) bool {
	select {
	case <-d.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// SnapshotPlain returns the captured output with ANSI sequences removed
func (d *Dialog) SnapshotPlain() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var raw string
	if !d.full {
		raw = string(d.buf[:d.head])
	} else {
		out := make([]byte, ringSize)
		copy(out, d.buf[d.head:])
		copy(out[ringSize-d.head:], d.buf[:d.head])
		raw = string(out)
	}
	return ansiRe.ReplaceAllString(raw, "")
}

// Tail returns the last n bytes of normalized output for failure messages
func (d *Dialog) Tail(n int) string {
	s := d.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

// Cleanup closes the PTY and terminates the application
func (d *Dialog) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if d.pty != nil {
		_ = d.pty.Close()
		d.pty = nil
	}
	if d.tty != nil {
		_ = d.tty.Close()
		d.tty = nil
	}
	if d.cmd != nil && d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
		d.cmd = nil
	}
}
