package observability

import (
	"chat-relay/domain"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is a point-in-time view of the relay.
type Stats struct {
	Uptime              string  `json:"uptime"`
	LiveConnections     int     `json:"live_connections"`
	ConnectionsAttached uint64  `json:"connections_attached"`
	ConnectionsDetached uint64  `json:"connections_detached"`
	EventsPublished     uint64  `json:"events_published"`
	DeliveriesAttempted uint64  `json:"deliveries_attempted"`
	DeliveriesSucceeded uint64  `json:"deliveries_succeeded"`
	DeliveriesFailed    uint64  `json:"deliveries_failed"`
	PartialEvents       uint64  `json:"partial_events"`
	AllocMemMb          uint64  `json:"alloc_mem_mb"`
	NumGC               uint32  `json:"num_gc"`
	NumGoroutine        int     `json:"num_goroutine"`
	ProcessCPUPercent   float64 `json:"process_cpu_percent"`
	ProcessRSSMb        uint64  `json:"process_rss_mb"`
}

// Monitor aggregates relay counters. All methods are safe for concurrent
// use and a nil *Monitor is a valid no-op.
type Monitor struct {
	log       *slog.Logger
	startedAt time.Time
	live      func() int

	attached  atomic.Uint64
	detached  atomic.Uint64
	events    atomic.Uint64
	attempted atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
	partial   atomic.Uint64

	procOnce sync.Once
	proc     *process.Process
}

// NewMonitor builds a monitor. live reports the current number of
// registered connections, usually Registry.Len.
func NewMonitor(log *slog.Logger, live func() int) *Monitor {
	return &Monitor{log: log, startedAt: time.Now(), live: live}
}

func (m *Monitor) ConnectionAttached() {
	if m == nil {
		return
	}
	m.attached.Add(1)
}

func (m *Monitor) ConnectionDetached() {
	if m == nil {
		return
	}
	m.detached.Add(1)
}

func (m *Monitor) RecordReport(report domain.DeliveryReport) {
	if m == nil {
		return
	}
	m.events.Add(1)
	m.attempted.Add(uint64(report.Attempted))
	m.succeeded.Add(uint64(report.Delivered))
	m.failed.Add(uint64(len(report.Failures)))
	if report.HasFailures() {
		m.partial.Add(1)
	}
}

// Snapshot reads every counter plus Go and process metrics.
// Process metrics are best effort and left at zero when unavailable.
func (m *Monitor) Snapshot() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := Stats{
		Uptime:              time.Since(m.startedAt).Round(time.Second).String(),
		ConnectionsAttached: m.attached.Load(),
		ConnectionsDetached: m.detached.Load(),
		EventsPublished:     m.events.Load(),
		DeliveriesAttempted: m.attempted.Load(),
		DeliveriesSucceeded: m.succeeded.Load(),
		DeliveriesFailed:    m.failed.Load(),
		PartialEvents:       m.partial.Load(),
		AllocMemMb:          mem.Alloc / 1024 / 1024,
		NumGC:               mem.NumGC,
		NumGoroutine:        runtime.NumGoroutine(),
	}
	if m.live != nil {
		stats.LiveConnections = m.live()
	}

	if p := m.process(); p != nil {
		if cpu, err := p.CPUPercent(); err == nil {
			stats.ProcessCPUPercent = cpu
		}
		if info, err := p.MemoryInfo(); err == nil {
			stats.ProcessRSSMb = info.RSS / 1024 / 1024
		}
	}
	return stats
}

func (m *Monitor) process() *process.Process {
	m.procOnce.Do(func() {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			m.log.Debug("Process metrics unavailable", "error", err)
			return
		}
		m.proc = p
	})
	return m.proc
}
