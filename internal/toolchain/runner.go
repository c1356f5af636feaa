package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// Runner executes external programs.
type Runner interface {
	// Run executes name in dir, streaming its output to the operator.
	Run(ctx context.Context, dir string, name string, args ...string) error
	// Output executes name in dir and returns its standard output.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    logr.Logger
}

// NewExecRunner returns a runner that streams child output to stdout and stderr.
func NewExecRunner(stdout io.Writer, stderr io.Writer, log logr.Logger) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr, Log: log}
}

// Run executes name with args in dir and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := r.command(ctx, dir, name, args)
	cmd.Stdout = writerOr(r.Stdout, os.Stdout)
	cmd.Stderr = writerOr(r.Stderr, os.Stderr)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.ToolRunFailedFmt, name, strings.Join(args, " "), err)
	}
	return nil
}

// Output executes name with args in dir and returns what it wrote to stdout.
// Stderr is captured and included in the returned error on failure.
func (r *ExecRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := r.command(ctx, dir, name, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, fmt.Errorf(messages.ToolRunFailedFmt, name, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}

func (r *ExecRunner) command(ctx context.Context, dir string, name string, args []string) *exec.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	r.Log.V(1).Info("exec", "dir", dir, "cmd", name, "args", args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd
}

func writerOr(w io.Writer, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
