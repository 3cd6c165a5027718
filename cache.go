package flashdeck

import (
	"sync"
	"time"
)

// CardCache is an in-memory cache of flashcards and categories with TTL.
// The deck changes rarely while the card API is hit on every page load, so a
// short TTL keeps reads off the database.
type CardCache struct {
	mu      sync.RWMutex
	cards   []FlashCard
	cats    []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewCardCache creates a CardCache backed by the given Store.
func NewCardCache(s *Store, ttl time.Duration) *CardCache {
	return &CardCache{store: s, ttl: ttl}
}

func (c *CardCache) valid() bool {
	return c.cards != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *CardCache) Invalidate() {
	c.mu.Lock()
	c.cards = nil
	c.cats = nil
	c.mu.Unlock()
}

func (c *CardCache) load() error {
	if c.valid() {
		return nil
	}
	cards, err := c.store.ListCards("")
	if err != nil {
		return err
	}
	cats, err := c.store.ListCategories()
	if err != nil {
		return err
	}
	c.cards = cards
	c.cats = cats
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached cards and categories after ensuring the cache
// is fresh. It tries a read lock first; only takes a write lock if a reload
// is needed.
func (c *CardCache) ensureLoaded() ([]FlashCard, []string, error) {
	c.mu.RLock()
	if c.valid() {
		cards, cats := c.cards, c.cats
		c.mu.RUnlock()
		return cards, cats, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.cards, c.cats, nil
}

// ListCards returns cards, optionally filtered by category.
func (c *CardCache) ListCards(category string) ([]FlashCard, error) {
	cards, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if category == "" {
		return cards, nil
	}
	var filtered []FlashCard
	for _, card := range cards {
		if card.Category == category {
			filtered = append(filtered, card)
		}
	}
	return filtered, nil
}

// ListCategories returns the distinct card categories.
func (c *CardCache) ListCategories() ([]string, error) {
	_, cats, err := c.ensureLoaded()
	return cats, err
}
