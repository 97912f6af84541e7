package out

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	runtimeout "socialteam/internal/modules/runtime/port/out"
	apperrors "socialteam/internal/platform/errors"
)

const notifyTimeout = 5 * time.Second

// CommandNotifier shows notifications through an external command invoked as
// `<command> <title> <message>`, notify-send style.
type CommandNotifier struct {
	command string
}

func NewCommandNotifier(command string) runtimeout.Notifier {
	return &CommandNotifier{command: strings.TrimSpace(command)}
}

func (n *CommandNotifier) Notify(ctx context.Context, title, message string) error {
	if n.command == "" {
		return fmt.Errorf("%w: no notify command configured", apperrors.ErrCapabilityUnavailable)
	}
	path, err := exec.LookPath(n.command)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCapabilityUnavailable, err)
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if out, err := exec.CommandContext(ctx, path, title, message).CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w: %s", n.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
