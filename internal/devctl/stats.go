package devctl

import "github.com/shirou/gopsutil/v3/process"

type procStats struct {
	RSSBytes   uint64
	CPUPercent float64
}

// processStats samples resident memory and CPU usage of pid.
func processStats(pid int) (procStats, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return procStats{}, err
	}
	var st procStats
	if mi, err := p.MemoryInfo(); err == nil && mi != nil {
		st.RSSBytes = mi.RSS
	}
	if pct, err := p.CPUPercent(); err == nil {
		st.CPUPercent = pct
	}
	return st, nil
}
