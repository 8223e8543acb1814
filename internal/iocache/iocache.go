// Package iocache persists grading runs and the authority scores they produced.
package iocache

import (
	"fmt"
	"sync"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

// HistoryStoreManager manages the HistoryStore instance.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.HistoryManager = &HistoryStoreManager{} // Compile-time check

// GetHistoryStore returns the history store, or nil when history is disabled.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

// quoteTableName quotes a table name for the backend's SQL dialect.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// bindVars returns n comma-separated bind variables for the backend.
func bindVars(backend schema.DatabaseBackend, n int) string {
	out := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}
		if backend == schema.PostgreSQLBackend {
			out += fmt.Sprintf("$%d", i)
		} else {
			out += "?"
		}
	}
	return out
}

// bindVar returns the i-th (1-based) bind variable for the backend.
func bindVar(backend schema.DatabaseBackend, i int) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}
