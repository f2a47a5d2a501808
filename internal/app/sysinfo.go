package app

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const cpuHistoryLen = 10

var graphBars = []rune("▁▂▃▄▅▆▇█")

// UpdateSysInfo samples CPU and memory usage for the status bar.
func (d *Desktop) UpdateSysInfo() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		d.CPUHistory = append(d.CPUHistory, percents[0])
		if len(d.CPUHistory) > cpuHistoryLen {
			d.CPUHistory = d.CPUHistory[len(d.CPUHistory)-cpuHistoryLen:]
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		d.RAMPercent = vm.UsedPercent
	}
}

// CPUGraph returns a fixed-width sparkline of recent CPU usage so the status
// bar never shifts.
func (d *Desktop) CPUGraph() string {
	var sb strings.Builder
	if pad := cpuHistoryLen - len(d.CPUHistory); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	for i, usage := range d.CPUHistory {
		if i >= cpuHistoryLen {
			break
		}
		idx := int(usage / 12.5)
		if idx > len(graphBars)-1 {
			idx = len(graphBars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(graphBars[idx])
	}

	current := 0.0
	if len(d.CPUHistory) > 0 {
		current = d.CPUHistory[len(d.CPUHistory)-1]
	}
	return fmt.Sprintf("CPU %s %5.1f%%", sb.String(), current)
}

// RAMLabel returns the memory usage summary for the status bar.
func (d *Desktop) RAMLabel() string {
	return fmt.Sprintf("RAM %5.1f%%", d.RAMPercent)
}
