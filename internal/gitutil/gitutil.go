package gitutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"os/user"
	"strings"
)

// ErrNoAuthor is returned when neither git nor the OS knows who the user is.
var ErrNoAuthor = errors.New("no author name configured")

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.Command.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

var runner CommandRunner = DefaultRunner{}

// lookupUser is swapped out in tests.
var lookupUser = user.Current

// ConfiguredName returns git's user.name setting.
func ConfiguredName(ctx context.Context) (string, error) {
	out, err := runner.CombinedOutput(ctx, "git", "config", "--get", "user.name")
	if err != nil {
		return "", fmt.Errorf("error running git config: %w, output: %s", err, strings.TrimSpace(string(out)))
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", ErrNoAuthor
	}
	return name, nil
}

// AuthorName picks the name written into new documents: git's user.name,
// then the OS account's display name, then its login.
func AuthorName(ctx context.Context) (string, error) {
	if name, err := ConfiguredName(ctx); err == nil {
		return name, nil
	}

	u, err := lookupUser()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoAuthor, err)
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name, nil
	}
	if login := strings.TrimSpace(u.Username); login != "" {
		return login, nil
	}
	return "", ErrNoAuthor
}

// SetRunner replaces the command runner, for tests.
func SetRunner(r CommandRunner) {
	runner = r
}
