// Package opener hands files to the desktop's default viewer.
package opener

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Opener starts the platform open command and streams its output to the log.
type Opener struct {
	goos    string
	logger  *log.Logger
	start   func(*exec.Cmd) error
	command func(goos, target string) (string, []string)
	running sync.WaitGroup // one per launched viewer until reaped
}

func New(logger *log.Logger) *Opener {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Opener{goos: runtime.GOOS, logger: logger, start: (*exec.Cmd).Start, command: Command}
}

// Command returns the program and arguments that open target on goos.
func Command(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Open launches the viewer for target without waiting for it to exit.
func (o *Opener) Open(ctx context.Context, target string) error {
	name, args := o.command(o.goos, target)
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, _ := cmd.StdoutPipe()
	stderr, _ := cmd.StderrPipe()
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	o.logger.Debug("opened", "cmd", name, "target", target, "pid", cmd.Process.Pid)

	// Wait closes the pipes, so it runs only after both readers hit EOF.
	var readers sync.WaitGroup
	for _, r := range []io.Reader{stdout, stderr} {
		if r == nil {
			continue
		}
		readers.Add(1)
		go func(r io.Reader) {
			defer readers.Done()
			o.pipeLogs(name, r)
		}(r)
	}
	o.running.Add(1)
	go func() {
		defer o.running.Done()
		readers.Wait()
		if err := cmd.Wait(); err != nil {
			o.logger.Warn("viewer exited", "cmd", name, "err", err)
		}
	}()
	return nil
}

// Wait blocks until every launched viewer has exited and its output is logged.
func (o *Opener) Wait() { o.running.Wait() }

func (o *Opener) pipeLogs(name string, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		o.logger.Info(line, "cmd", name)
	}
}
