package usecase

import "sync"

// membershipCache is a read-through cache of user_id → cohort_id.
// Cohort resolution runs on nearly every request (messages, documents,
// encouragements, notification fanout), so the lookup is cached and
// invalidated whenever membership mutates.
type membershipCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newMembershipCache() *membershipCache {
	return &membershipCache{entries: make(map[string]string)}
}

func (c *membershipCache) get(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cohortID, ok := c.entries[userID]
	return cohortID, ok
}

func (c *membershipCache) put(userID, cohortID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = cohortID
}

func (c *membershipCache) invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}
