package snapshot

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

// Store keeps the latest feeding snapshot per token in a bounded LRU with
// time-based expiration, so quotes are never computed from very old chain reads.
type Store struct {
	mu  sync.Mutex // serializes the stale check in Put
	lru *expirable.LRU[uint64, domain.FeedingStateSnapshot]
}

// PutResult reports what Put did with a snapshot
type PutResult int

const (
	PutStored PutResult = iota
	PutStale
	PutEvicted
)

// NewStore creates a store holding at most size snapshots for ttl each.
// Non-positive values select the defaults.
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultStoreSize
	}
	if ttl <= 0 {
		ttl = DefaultStoreTTL
	}
	return &Store{
		lru: expirable.NewLRU[uint64, domain.FeedingStateSnapshot](size, nil, ttl),
	}
}

// Put stores s unless the cached snapshot for the same token is newer.
// Feed and claim times only move forward on chain, so a snapshot with an older
// timestamp than the cached one is a stale read and is ignored.
func (st *Store) Put(s domain.FeedingStateSnapshot) PutResult {
	st.mu.Lock()
	defer st.mu.Unlock()

	if cur, ok := st.lru.Get(s.TokenID); ok {
		if s.LastClaimTime < cur.LastClaimTime || s.LastFeedTime < cur.LastFeedTime {
			return PutStale
		}
	}

	if st.lru.Add(s.TokenID, s) {
		return PutEvicted
	}
	return PutStored
}

// Get returns the cached snapshot for tokenID
func (st *Store) Get(tokenID uint64) (domain.FeedingStateSnapshot, bool) {
	return st.lru.Get(tokenID)
}

// GetMany looks up tokenIDs in order. found[i] reports whether snapshots[i] was cached.
func (st *Store) GetMany(tokenIDs []uint64) (snapshots []domain.FeedingStateSnapshot, found []bool) {
	snapshots = make([]domain.FeedingStateSnapshot, len(tokenIDs))
	found = make([]bool, len(tokenIDs))
	for i, id := range tokenIDs {
		snapshots[i], found[i] = st.lru.Get(id)
	}
	return snapshots, found
}

// Remove drops tokenID from the store
func (st *Store) Remove(tokenID uint64) {
	st.lru.Remove(tokenID)
}

// Len returns the number of cached snapshots
func (st *Store) Len() int {
	return st.lru.Len()
}

// Purge removes all entries
func (st *Store) Purge() {
	st.lru.Purge()
}
