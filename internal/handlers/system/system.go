package system

import (
	"net/http"
	"runtime"
	"time"

	"chatproxy-go/internal/version"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	log "github.com/sirupsen/logrus"
)

// Handler serves host and process runtime information.
type Handler struct {
	startTime time.Time
}

func New() *Handler {
	return &Handler{startTime: time.Now()}
}

// Info returns system information
func (h *Handler) Info(c *gin.Context) {
	resp := gin.H{
		"version":    version.Version,
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startTime).Seconds(),
		"timestamp":  time.Now().Unix(),
		"goroutines": runtime.NumGoroutine(),
	}

	// Host CPU usage over a short sampling window. The call can fail
	// inside containers with restricted /proc; report what we have.
	if percents, err := cpu.PercentWithContext(c.Request.Context(), 200*time.Millisecond, false); err == nil && len(percents) > 0 {
		resp["cpu_percent"] = percents[0]
	} else if err != nil {
		log.WithError(err).Debug("cpu usage sample failed")
	}

	if vm, err := mem.VirtualMemoryWithContext(c.Request.Context()); err == nil {
		resp["memory"] = gin.H{
			"total":        vm.Total,
			"used":         vm.Used,
			"available":    vm.Available,
			"used_percent": vm.UsedPercent,
		}
	} else {
		log.WithError(err).Debug("memory stats read failed")
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	resp["process_memory"] = gin.H{
		"heap_alloc": ms.HeapAlloc,
		"heap_sys":   ms.HeapSys,
		"num_gc":     ms.NumGC,
	}

	c.JSON(http.StatusOK, resp)
}

// Health is a minimal liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
