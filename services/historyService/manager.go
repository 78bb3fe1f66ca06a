package historyService

import (
	"sync"

	"gorm.io/gorm"
)

var (
	managerMu sync.Mutex
	stores    = make(map[string]*Store)
)

// StoreFor returns the history store for a guild, loading it from the
// database on first use. The store is read once at startup of the
// guild's session and written through on every mutation.
func StoreFor(db *gorm.DB, guildID string) *Store {
	managerMu.Lock()
	defer managerMu.Unlock()

	if store, ok := stores[guildID]; ok {
		return store
	}
	store := NewStore(NewGormStorage(db), StorageKey(guildID))
	stores[guildID] = store
	return store
}
