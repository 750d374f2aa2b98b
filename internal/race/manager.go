package race

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

// Manager owns the live machines, keyed by player entry ID. Machines are
// created lazily against the session paragraph and discarded once the
// submission is persisted or the session ends.
type Manager struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	bulkLimit int
	machines  map[string]*Machine
}

func NewManager(clock clockwork.Clock, bulkLimit int) *Manager {
	return &Manager{
		clock:     clock,
		bulkLimit: bulkLimit,
		machines:  make(map[string]*Machine),
	}
}

func (mg *Manager) Get(entryID, paragraph string) *Machine {
	mg.mu.Lock()
	defer mg.mu.Unlock()

	if m, ok := mg.machines[entryID]; ok {
		return m
	}
	m := NewMachine(paragraph, mg.clock, mg.bulkLimit)
	mg.machines[entryID] = m
	return m
}

func (mg *Manager) Forget(entryID string) {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	delete(mg.machines, entryID)
}

func (mg *Manager) Len() int {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	return len(mg.machines)
}
