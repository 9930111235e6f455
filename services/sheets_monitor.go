package services

import (
	"sync"
	"time"

	"github.com/helpkhazaana-eng/production-app/hub"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// SheetsHealth is the monitor's last observation.
type SheetsHealth struct {
	Healthy   bool      `json:"healthy"`
	LatencyMS int64     `json:"latency_ms"`
	LastError string    `json:"last_error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// SheetsMonitor probes the spreadsheet endpoint in the background so order
// failures can be told apart from a sink outage. Transitions are logged and
// broadcast; the current snapshot backs the ops health endpoint.
type SheetsMonitor struct {
	Service  *SheetsService
	Interval time.Duration
	StopChan chan struct{}

	mu     sync.RWMutex
	health SheetsHealth
}

func NewSheetsMonitor(svc *SheetsService) *SheetsMonitor {
	return &SheetsMonitor{
		Service:  svc,
		Interval: 5 * time.Minute,
		StopChan: make(chan struct{}),
	}
}

func (sm *SheetsMonitor) Start() {
	go func() {
		sm.check()
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.check()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *SheetsMonitor) Stop() {
	close(sm.StopChan)
}

// Health returns the latest snapshot.
func (sm *SheetsMonitor) Health() SheetsHealth {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.health
}

func (sm *SheetsMonitor) check() {
	latency, err := sm.Service.Ping()

	next := SheetsHealth{
		Healthy:   err == nil,
		LatencyMS: latency.Milliseconds(),
		CheckedAt: time.Now(),
	}
	if err != nil {
		next.LastError = err.Error()
	}

	sm.mu.Lock()
	prev := sm.health
	sm.health = next
	sm.mu.Unlock()

	if prev.Healthy != next.Healthy || prev.CheckedAt.IsZero() {
		if next.Healthy {
			utils.InfoLogger.Printf("sheets monitor: endpoint healthy (%dms)", next.LatencyMS)
		} else {
			utils.ErrorLogger.Printf("sheets monitor: endpoint unhealthy: %s", next.LastError)
		}
		hub.BroadcastSheetsStatus(next)
	}
}
