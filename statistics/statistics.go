package statistics

import (
	"fmt"
	"sort"
	"sync"
)

// Counters track run-level totals: solves by terminal status,
// epochs completed, instances generated.
type statisticsData struct {
	dataMap map[string]int

	mutex sync.Mutex
}

var stats *statisticsData

func Init() {
	stats = &statisticsData{
		dataMap: make(map[string]int),
	}
}

func Set(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] = value
}

func Change(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] += value
}

func Display() string {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	keys := make([]string, 0, len(stats.dataMap))
	for key := range stats.dataMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := "Statistics results are:\n"
	for _, key := range keys {
		result += fmt.Sprintf("Number of %s is %d\n", key, stats.dataMap[key])
	}

	return result
}
