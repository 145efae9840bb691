package collect

// collectCPU blocks for one sample window and returns utilization
// averaged across all logical cores.
func (c *Collector) collectCPU() float64 {
	pcts, err := c.cpuPercent(c.opts.SampleWindow(), false)
	if err != nil || len(pcts) == 0 {
		return 0
	}
	return pcts[0]
}
