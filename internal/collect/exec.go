package collect

import (
	"context"
	"os/exec"
	"time"
)

const toolTimeout = 5 * time.Second

// runCmd executes an external tool and returns its stdout. A non-zero
// exit or a blown deadline reads as an error; callers map that to
// "unavailable".
func runCmd(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
