package render

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"hostsnap/internal/model"
)

func degradedSnapshot() model.Snapshot {
	return model.Snapshot{
		Host:          "testhost",
		OS:            "linux 6.1.0 (debian 12)",
		UptimeSeconds: 90061,
		CPUPercent:    12.5,
		Memory:        model.Memory{Total: 1000, Used: 600, Free: 400, UsedPercent: 60},
		Disks: model.Disks{
			Overall: model.DiskUsage{Mount: "TOTAL"},
		},
	}
}

func TestJSONExplicitNulls(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := JSON(&buf, degradedSnapshot()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := buf.String()
	for _, key := range []string{
		`"load_avg": null`,
		`"users": null`,
		`"failed_logins": null`,
		`"gpu": null`,
		`"temperatures": null`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("JSON output missing explicit null %q\n%s", key, out)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	count := 7
	snap := degradedSnapshot()
	snap.LoadAvg = &model.LoadAvg{Load1: 0.5, Load5: 0.4, Load15: 0.3}
	snap.FailedLogins = &count
	snap.Users = []string{"alice", "root"}
	snap.TopCPU = []model.ProcessInfo{{PID: 1, Name: "init", CPU: 0.1, MemBytes: 4096}}
	snap.Gpu = &model.GpuReport{Vendor: "AMD", Raw: "GPU[0] 55c"}
	snap.Temperatures = map[string][]model.TempReading{
		"coretemp": {{Label: "core_0", Current: 41}},
	}

	var buf bytes.Buffer
	if err := JSON(&buf, snap); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back model.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(snap, back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, snap)
	}
}

func TestTextDegradedKeepsStableShape(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Text(&buf, degradedSnapshot())
	out := buf.String()

	for _, want := range []string{
		"Host:        testhost",
		"Load Avg:    unavailable",
		"CPU Usage:   12.5% (overall)",
		"Memory:",
		"Disk:",
		"TOTAL",
		"Top 5 Processes by CPU:",
		"Top 5 Processes by Memory:",
		"Logged-in users: unavailable",
		"Failed SSH login attempts: unknown",
		"GPU: not detected / nvidia-smi not found",
		"Temperatures: unavailable (install lm-sensors)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q\n%s", want, out)
		}
	}
}

func TestTextPopulatedSections(t *testing.T) {
	t.Parallel()
	count := 0
	snap := degradedSnapshot()
	snap.LoadAvg = &model.LoadAvg{Load1: 1.5, Load5: 1.25, Load15: 1}
	snap.Users = []string{"alice", "bob"}
	snap.FailedLogins = &count
	snap.TopCPU = []model.ProcessInfo{
		{PID: 42, Name: "a-process-with-a-really-long-name", CPU: 99.9, MemBytes: 2048},
	}
	snap.Gpu = &model.GpuReport{
		Vendor: "NVIDIA",
		Gpus: []model.GpuDevice{
			{ID: "0", Model: "RTX 3080", GpuUtil: 45, MemUtil: 30, MemUsedMiB: 4096, MemTotalMiB: 10240, TempC: 62},
		},
	}
	snap.Temperatures = map[string][]model.TempReading{
		"nvme": {{Label: "nvme0", Current: 36.5}},
	}

	var buf bytes.Buffer
	Text(&buf, snap)
	out := buf.String()

	if !strings.Contains(out, "Load Avg:    1m: 1.50  5m: 1.25  15m: 1.00") {
		t.Errorf("load line missing:\n%s", out)
	}
	if !strings.Contains(out, "Logged-in users: alice, bob") {
		t.Errorf("users line missing:\n%s", out)
	}
	// A genuine zero count is not "unknown".
	if !strings.Contains(out, "Failed SSH login attempts: 0") {
		t.Errorf("zero failed logins not rendered:\n%s", out)
	}
	// Display names truncate to 22 characters.
	if strings.Contains(out, "a-process-with-a-really-long-name") {
		t.Errorf("process name not truncated:\n%s", out)
	}
	if !strings.Contains(out, "a-process-with-a-reall") {
		t.Errorf("truncated process name missing:\n%s", out)
	}
	if !strings.Contains(out, "RTX 3080") || !strings.Contains(out, "62°C") {
		t.Errorf("gpu table missing:\n%s", out)
	}
	if !strings.Contains(out, "  nvme: nvme0 36.5°C") {
		t.Errorf("temperature line missing:\n%s", out)
	}
	if !strings.Contains(out, "Uptime:      1 day, 1:01:01") {
		t.Errorf("uptime line missing:\n%s", out)
	}
}

func TestFmtRowJustification(t *testing.T) {
	t.Parallel()
	got := fmtRow([]any{42, "name"}, []int{6, 8})
	if got != "    42  name    " {
		t.Errorf("fmtRow: got %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()
	cases := []struct {
		sec  uint64
		want string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{3661, "1:01:01"},
		{86400, "1 day, 0:00:00"},
		{2*86400 + 3600, "2 days, 1:00:00"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.sec); got != tc.want {
			t.Errorf("formatUptime(%d): got %q, want %q", tc.sec, got, tc.want)
		}
	}
}
