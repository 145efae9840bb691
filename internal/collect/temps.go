package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hostsnap/internal/model"
)

// collectTemperatures merges two independent sources: the generic
// hardware-sensors API grouped by chip, and the Linux NVMe hwmon tree
// read straight from sysfs. Individual failed reads are skipped; an
// empty merge means the whole section is absent.
func (c *Collector) collectTemperatures() map[string][]model.TempReading {
	temps := make(map[string][]model.TempReading)

	if stats, err := c.sensors(); err == nil {
		for _, s := range stats {
			label := s.SensorKey
			if label == "" {
				label = "temp"
			}
			chip := chipName(s.SensorKey)
			temps[chip] = append(temps[chip], model.TempReading{Label: label, Current: s.Temperature})
		}
	}

	c.nvmeTemps(temps)

	if len(temps) == 0 {
		return nil
	}
	return temps
}

// chipName reduces a sensor key like "coretemp_core_0" to its leading
// chip component, mirroring the chip-keyed grouping psutil-style tools
// present.
func chipName(key string) string {
	if i := strings.IndexAny(key, "_-"); i > 0 {
		return key[:i]
	}
	if key == "" {
		return "sensor"
	}
	return key
}

// nvmeTemps walks <root>/<ctrl>/device/hwmon for temp*_input files
// holding millidegrees Celsius.
func (c *Collector) nvmeTemps(temps map[string][]model.TempReading) {
	entries, err := os.ReadDir(c.opts.NVMeSysfsRoot)
	if err != nil {
		return
	}
	for _, e := range entries {
		hwmon := filepath.Join(c.opts.NVMeSysfsRoot, e.Name(), "device", "hwmon")
		ctrl := e.Name()
		_ = filepath.WalkDir(hwmon, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			name := d.Name()
			if !strings.HasPrefix(name, "temp") || !strings.HasSuffix(name, "_input") {
				return nil
			}
			data, err := c.readFile(path)
			if err != nil {
				return nil
			}
			milli, err := strconv.Atoi(strings.TrimSpace(string(data)))
			if err != nil {
				return nil
			}
			temps["nvme"] = append(temps["nvme"], model.TempReading{
				Label:   ctrl,
				Current: float64(milli) / 1000,
			})
			return nil
		})
	}
}
