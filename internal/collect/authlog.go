package collect

import (
	"context"
	"strings"
)

// failedLogins counts failed authentication attempts. It prefers the
// boot-scoped journal; without journalctl it scans the first auth log
// file that exists. A nil result means "unknown" — no tooling could
// answer — which is distinct from a genuine zero count.
func (c *Collector) failedLogins(ctx context.Context) *int {
	if path, err := c.lookPath("journalctl"); err == nil {
		out, err := c.runCmd(ctx, toolTimeout, path, "-b", "-q", "-g", c.opts.FailedLoginPattern)
		if err == nil {
			n := countLines(out)
			return &n
		}
	}
	pattern := strings.ToLower(c.opts.FailedLoginPattern)
	for _, path := range c.opts.AuthLogPaths {
		data, err := c.readFile(path)
		if err != nil {
			continue
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.Contains(strings.ToLower(line), pattern) {
				n++
			}
		}
		return &n
	}
	return nil
}

func countLines(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}
