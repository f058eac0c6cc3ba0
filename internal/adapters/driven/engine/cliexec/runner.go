package cliexec

import (
	"bytes"
	"context"
	"os/exec"
)

// runner executes the command-line client. The indirection is the
// test seam: unit tests substitute a fake instead of spawning
// processes.
type runner interface {
	run(ctx context.Context, exe string, args []string) (stdout, stderr []byte, err error)
}

// execRunner spawns the real process.
type execRunner struct{}

func (execRunner) run(ctx context.Context, exe string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, exe, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
