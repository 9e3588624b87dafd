// Package ports defines the interfaces between the application core and the
// infrastructure adapters, so the lookup and rendering logic stays testable
// without a live network, a real terminal, or files on disk.
package ports

import (
	"context"

	"github.com/halmos/timely/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.timely/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistorySource fetches On This Day data for a resolved calendar date.
// Implementations wrap the Wikipedia feed endpoint.
type HistorySource interface {
	Fetch(ctx context.Context, language string, category domain.Category, month, day int) (domain.OnThisDayResponse, error)
}

// CacheRepository is the process-local response cache. Implementations check
// TTL expiry on read; callers must not see an expired entry.
type CacheRepository interface {
	Get(key string) (domain.CacheEntry, bool)
	Set(entry domain.CacheEntry)
	Entries() []domain.CacheEntry
	Clear()
	Settings() domain.CacheSettings
}

// Logger is the structured logging abstraction used by the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
