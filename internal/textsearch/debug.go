package textsearch

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugEnabled = os.Getenv("CTXFIND_DEBUG") == "1"
	debugLogPath = envOrDefault("CTXFIND_DEBUG_LOG", "ctxfind-debug.log")
	debugMu      sync.Mutex
)

func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()

	f, err := os.OpenFile(debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
