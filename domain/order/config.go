package order

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const DefaultReportCacheTTL = 5 * time.Minute

// ReportCacheTTLFromEnv reads REPORT_CACHE_TTL, a Go duration such as "90s".
func ReportCacheTTLFromEnv() (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL"))
	if v == "" {
		return DefaultReportCacheTTL, nil
	}
	ttl, err := time.ParseDuration(v)
	if err != nil || ttl <= 0 {
		return 0, fmt.Errorf("invalid REPORT_CACHE_TTL %q", v)
	}
	return ttl, nil
}
