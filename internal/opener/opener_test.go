package opener

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestCommandPerPlatform(t *testing.T) {
	cases := map[string]string{
		"darwin":  "open",
		"windows": "rundll32",
		"linux":   "xdg-open",
		"freebsd": "xdg-open",
	}
	for goos, want := range cases {
		name, args := Command(goos, "/tmp/x.html")
		if name != want {
			t.Fatalf("%s: got %s want %s", goos, name, want)
		}
		if args[len(args)-1] != "/tmp/x.html" {
			t.Fatalf("%s: target must be last arg, got %v", goos, args)
		}
	}
}

func TestOpenReportsStartFailure(t *testing.T) {
	o := New(nil)
	o.start = func(*exec.Cmd) error { return errors.New("no viewer") }
	if err := o.Open(context.Background(), "/tmp/x.html"); err == nil {
		t.Fatalf("expected start error to be returned")
	}
}

func TestOpenLogsAllOutputBeforeReaping(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	var buf bytes.Buffer
	o := New(log.New(&buf))
	o.command = func(_, target string) (string, []string) {
		return "sh", []string{"-c", "for i in 1 2 3 4 5 6 7 8; do echo line$i; done; echo last >&2", target}
	}
	if err := o.Open(context.Background(), "/tmp/x.html"); err != nil {
		t.Fatalf("open: %v", err)
	}
	o.Wait()
	out := buf.String()
	for _, want := range []string{"line1", "line8", "last"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "viewer exited") {
		t.Fatalf("clean exit logged as failure:\n%s", out)
	}
}
