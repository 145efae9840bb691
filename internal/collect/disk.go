package collect

import (
	"sort"

	"hostsnap/internal/model"
)

// collectDisks enumerates mounted filesystems and derives the TOTAL
// aggregate. Pseudo-filesystems are excluded, duplicate mount paths keep
// their first occurrence, and a mount whose usage query fails (typically
// permission denied) is dropped. An unreadable partition table yields an
// empty per-mount list with a zero aggregate.
func (c *Collector) collectDisks() model.Disks {
	excluded := make(map[string]bool, len(c.opts.ExcludedFilesystems))
	for _, fs := range c.opts.ExcludedFilesystems {
		excluded[fs] = true
	}

	var rows []model.DiskUsage
	var totalSize, totalUsed, totalFree uint64
	seen := make(map[string]bool)

	parts, err := c.partitions(false)
	if err != nil {
		parts = nil
	}
	for _, p := range parts {
		if excluded[p.Fstype] || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		u, err := c.diskUsage(p.Mountpoint)
		if err != nil {
			continue
		}
		rows = append(rows, model.DiskUsage{
			Mount:       p.Mountpoint,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		})
		totalSize += u.Total
		totalUsed += u.Used
		totalFree += u.Free
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Mount < rows[j].Mount })

	overall := model.DiskUsage{
		Mount: "TOTAL",
		Total: totalSize,
		Used:  totalUsed,
		Free:  totalFree,
	}
	if totalSize > 0 {
		overall.UsedPercent = 100 * float64(totalUsed) / float64(totalSize)
	}
	return model.Disks{PerMount: rows, Overall: overall}
}
