package main

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// hostInfo describes the machine the renderer runs on
type hostInfo struct {
	CPUModel     string
	LogicalCores int
	MemoryGiB    uint64
}

// describeHost queries CPU and memory details. Fields that cannot be read
// fall back to what the Go runtime knows.
func describeHost() hostInfo {
	info := hostInfo{
		CPUModel:     "unknown CPU",
		LogicalCores: runtime.NumCPU(),
	}

	if cpus, err := cpu.Info(); err != nil {
		logger.Debugf("cpu info unavailable: %v", err)
	} else if len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	if cores, err := cpu.Counts(true); err != nil {
		logger.Debugf("cpu count unavailable: %v", err)
	} else if cores > 0 {
		info.LogicalCores = cores
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.Debugf("memory info unavailable: %v", err)
	} else {
		info.MemoryGiB = vm.Total / (1024 * 1024 * 1024)
	}

	return info
}
