package sysinfo

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectorUsesConfiguredHostname(t *testing.T) {
	c := NewCollector("portfolio.test")
	assert.Equal(t, "portfolio.test", c.Hostname())

	info := c.ServerInfo()
	assert.Equal(t, "portfolio.test", info.Hostname)
	assert.Equal(t, runtime.GOARCH, info.OS.Arch)
	assert.Equal(t, runtime.NumCPU(), info.CPU.Cores)
	assert.Equal(t, "go", info.Runtime.Name)
	assert.Equal(t, runtime.Version(), info.Runtime.Version)
	assert.NotZero(t, info.Memory.HeapMax)
}

func TestCollectorFallsBackToOSHostname(t *testing.T) {
	c := NewCollector("")
	assert.NotEmpty(t, c.Hostname())
}

func TestUptimeIsMeasuredFromStart(t *testing.T) {
	started := time.Date(2025, time.January, 2, 15, 0, 0, 0, time.UTC)
	c := &Collector{
		hostname: "h",
		started:  started,
		now:      func() time.Time { return started.Add(90 * time.Minute) },
	}

	info := c.ServerInfo()
	assert.Equal(t, int64(90*60*1000), info.Uptime)
	assert.Equal(t, started.UnixMilli(), info.Runtime.StartTime)

	boot := c.BootInfo()
	assert.Equal(t, int64(90*60*1000), boot.Uptime)
	assert.Equal(t, runtime.GOOS, boot.OSName)
	assert.Equal(t, boot.TotalMemoryMB-boot.FreeMemoryMB, boot.UsedMemoryMB)
}
