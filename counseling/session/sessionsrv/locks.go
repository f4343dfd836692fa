package sessionsrv

import (
	"sync"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// keyedMutex serializes work per session. Slot mutations for a
// session_id always run under its exclusive lock, including the write
// from the extraction worker.
type keyedMutex struct {
	locks sync.Map // kernel.SessionID -> *sync.Mutex
}

func (k *keyedMutex) lock(id kernel.SessionID) (unlock func()) {
	v, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
