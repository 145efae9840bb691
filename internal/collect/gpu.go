package collect

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"hostsnap/internal/model"
)

const nvidiaQuery = "--query-gpu=index,name,utilization.gpu,utilization.memory," +
	"memory.used,memory.total,temperature.gpu"

// collectGPU probes vendor tools in priority order: nvidia-smi with a
// structured CSV query, then rocm-smi whose output is carried as an
// opaque blob. Neither tool present means no GPU section at all.
func (c *Collector) collectGPU(ctx context.Context) *model.GpuReport {
	if smi, err := c.lookPath("nvidia-smi"); err == nil {
		out, err := c.runCmd(ctx, toolTimeout, smi, nvidiaQuery, "--format=csv,noheader,nounits")
		if err == nil && strings.TrimSpace(out) != "" {
			return &model.GpuReport{Vendor: "NVIDIA", Gpus: parseNvidiaCSV(out)}
		}
	}
	if rocm, err := c.lookPath("rocm-smi"); err == nil {
		out, err := c.runCmd(ctx, toolTimeout, rocm, "--showuse", "--showtemp", "--showmemuse")
		if err == nil && strings.TrimSpace(out) != "" {
			return &model.GpuReport{Vendor: "AMD", Raw: strings.TrimSpace(out)}
		}
	}
	return nil
}

// parseNvidiaCSV reads "index, name, gpu%, mem%, used, total, temp" rows.
// Short or malformed rows are skipped rather than failing the report.
func parseNvidiaCSV(out string) []model.GpuDevice {
	var gpus []model.GpuDevice
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ",")
		if len(parts) < 7 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		gpus = append(gpus, model.GpuDevice{
			ID:          parts[0],
			Model:       parts[1],
			GpuUtil:     parseFloat(parts[2]),
			MemUtil:     parseFloat(parts[3]),
			MemUsedMiB:  parseFloat(parts[4]),
			MemTotalMiB: parseFloat(parts[5]),
			TempC:       parseFloat(parts[6]),
		})
	}
	return gpus
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
