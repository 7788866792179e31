package ws

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

type healthReport struct {
	Status        string  `json:"status"`
	Viewers       int     `json:"viewers"`
	Tick          uint64  `json:"tick"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent,omitempty"`
	MemoryMB      float64 `json:"memoryMB,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := healthReport{
		Status:        "ok",
		Viewers:       s.broadcaster.ClientCount(),
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
	}
	if snap := s.broadcaster.Latest(); snap != nil {
		report.Tick = snap.Tick
	}

	// Process stats are optional; fields are omitted on error.
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpu, err := proc.CPUPercent(); err == nil {
			report.CPUPercent = cpu
		}
		if mem, err := proc.MemoryInfo(); err == nil {
			report.MemoryMB = float64(mem.RSS) / (1024 * 1024)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
