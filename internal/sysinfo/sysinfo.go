// Package sysinfo collects host and Go runtime details for the server
// info endpoints and the neofetch command.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"

	"termfolio/internal/logger"
	"termfolio/pkg/termtypes"
)

const mib = 1024 * 1024

// startTime is when this process began serving.
var startTime = time.Now()

// Collector reports host details under a configured hostname.
type Collector struct {
	hostname string
	started  time.Time
	now      func() time.Time
}

// NewCollector returns a collector reporting hostname, or the OS hostname
// when hostname is empty.
func NewCollector(hostname string) *Collector {
	if hostname == "" {
		hostname = osHostname()
	}
	return &Collector{hostname: hostname, started: startTime, now: time.Now}
}

// Hostname returns the reported hostname.
func (c *Collector) Hostname() string {
	return c.hostname
}

func (c *Collector) uptime() time.Duration {
	return c.now().Sub(c.started)
}

// ServerInfo returns the full payload of GET /api/server/info. Host
// statistics that cannot be read are left zero.
func (c *Collector) ServerInfo() termtypes.ServerInfo {
	var heap runtime.MemStats
	runtime.ReadMemStats(&heap)

	info := termtypes.ServerInfo{
		Hostname:   c.hostname,
		ServerTime: c.now().UnixMilli(),
		OS: termtypes.ServerOS{
			Name:                runtime.GOOS,
			Arch:                runtime.GOARCH,
			AvailableProcessors: runtime.NumCPU(),
		},
		CPU: termtypes.ServerCPU{Cores: runtime.NumCPU()},
		Memory: termtypes.ServerMemory{
			HeapMax:  heap.Sys,
			HeapUsed: heap.HeapAlloc,
		},
		Runtime: termtypes.ServerRuntime{
			Name:      "go",
			Version:   runtime.Version(),
			StartTime: c.started.UnixMilli(),
			Uptime:    c.uptime().Milliseconds(),
		},
		Uptime: c.uptime().Milliseconds(),
	}

	if hostInfo, err := host.Info(); err == nil {
		if hostInfo.Platform != "" {
			info.OS.Name = hostInfo.Platform
		}
		info.OS.Version = hostInfo.PlatformVersion
	} else {
		logger.Debug("Host info unavailable", "error", err)
	}
	if avg, err := load.Avg(); err == nil {
		info.OS.SystemLoadAverage = avg.Load1
	}
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		info.CPU.SystemCPULoad = percent[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.Memory.TotalPhysical = vm.Total
		info.Memory.UsedPhysical = vm.Total - vm.Available
	} else {
		logger.Debug("Memory stats unavailable", "error", err)
	}
	return info
}

// BootInfo returns the compact payload of GET /api/server/boot-info.
// Memory falls back to the Go heap when host memory cannot be read.
func (c *Collector) BootInfo() termtypes.BootInfo {
	info := termtypes.BootInfo{
		Hostname:       c.hostname,
		OSName:         runtime.GOOS,
		OSArch:         runtime.GOARCH,
		CPUCores:       runtime.NumCPU(),
		RuntimeVersion: runtime.Version(),
		Uptime:         c.uptime().Milliseconds(),
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemoryMB = vm.Total / mib
		info.FreeMemoryMB = vm.Available / mib
	} else {
		var heap runtime.MemStats
		runtime.ReadMemStats(&heap)
		info.TotalMemoryMB = heap.Sys / mib
		info.FreeMemoryMB = (heap.Sys - heap.HeapAlloc) / mib
	}
	info.UsedMemoryMB = info.TotalMemoryMB - info.FreeMemoryMB
	return info
}

func osHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
