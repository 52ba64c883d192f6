package daemon

import (
	"sync"
	"time"

	"github.com/DavideDaniel/research/internal/build"
)

// buildStatus tracks the outcome of the most recent build.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	lastReport   *build.Report
	lastGood     time.Time
	builds       int
	hasGoodBuild bool
}

func (bs *buildStatus) record(report *build.Report, err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.builds++
	if report != nil {
		bs.lastReport = report
	}
	if err != nil {
		bs.lastError = err
		return
	}
	bs.lastError = nil
	bs.hasGoodBuild = true
	if report != nil {
		bs.lastGood = report.EndTime
	}
}

// snapshot is a consistent copy of buildStatus.
type snapshot struct {
	lastError    error
	lastReport   *build.Report
	lastGood     time.Time
	builds       int
	hasGoodBuild bool
}

func (bs *buildStatus) snapshot() snapshot {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return snapshot{
		lastError:    bs.lastError,
		lastReport:   bs.lastReport,
		lastGood:     bs.lastGood,
		builds:       bs.builds,
		hasGoodBuild: bs.hasGoodBuild,
	}
}
