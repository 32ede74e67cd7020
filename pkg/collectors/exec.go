// Package collectors gathers the system, GPU and driver facts by shelling out
// to OS and vendor tools. Collection failures never abort a run; they degrade
// to empty fact values and a note for the report.
package collectors

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Note records a non-fatal problem encountered while collecting facts.
type Note struct {
	Collector string `json:"collector"`
	Message   string `json:"message"`
}

// CommandResult holds the outcome of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
	TimedOut bool
	Duration time.Duration
}

// RunCommand executes a command with a timeout. It never panics and always
// returns a usable result.
func RunCommand(timeoutSec int, name string, args ...string) CommandResult {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		result.Err = fmt.Errorf("command timed out after %ds: %s", timeoutSec, name)
		return result
	}

	if err != nil {
		result.Err = err
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}
	return result
}

// CommandExists checks whether a command is available in PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
