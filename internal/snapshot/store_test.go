package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/testing/leaktest"
)

func pet(id, claim, feed uint64) domain.FeedingStateSnapshot {
	return domain.FeedingStateSnapshot{TokenID: id, LastClaimTime: claim, LastFeedTime: feed, FeedingHours: 24, IsActive: true}
}

func TestStore_PutGet(t *testing.T) {
	st := NewStore(10, time.Minute)

	assert.Equal(t, PutStored, st.Put(pet(1, 100, 100)))

	got, ok := st.Get(1)
	assert.True(t, ok)
	assert.Equal(t, pet(1, 100, 100), got)

	_, ok = st.Get(2)
	assert.False(t, ok)
}

func TestStore_RejectsStaleSnapshot(t *testing.T) {
	st := NewStore(10, time.Minute)
	st.Put(pet(1, 200, 300))

	assert.Equal(t, PutStale, st.Put(pet(1, 100, 300)), "older claim")
	assert.Equal(t, PutStale, st.Put(pet(1, 200, 299)), "older feed")
	assert.Equal(t, PutStored, st.Put(pet(1, 200, 300)), "same read")
	assert.Equal(t, PutStored, st.Put(pet(1, 250, 400)), "newer read")

	got, _ := st.Get(1)
	assert.Equal(t, uint64(400), got.LastFeedTime)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	st := NewStore(2, time.Minute)
	st.Put(pet(1, 0, 0))
	st.Put(pet(2, 0, 0))

	assert.Equal(t, PutEvicted, st.Put(pet(3, 0, 0)))
	assert.Equal(t, 2, st.Len())

	_, ok := st.Get(1)
	assert.False(t, ok)
}

func TestStore_Expires(t *testing.T) {
	st := NewStore(10, 20*time.Millisecond)
	st.Put(pet(1, 0, 0))

	assert.Eventually(t, func() bool {
		_, ok := st.Get(1)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_GetMany(t *testing.T) {
	st := NewStore(0, 0)
	st.Put(pet(1, 0, 0))
	st.Put(pet(3, 0, 0))

	snapshots, found := st.GetMany([]uint64{3, 2, 1})

	assert.Equal(t, []bool{true, false, true}, found)
	assert.Equal(t, uint64(3), snapshots[0].TokenID)
	assert.Equal(t, uint64(1), snapshots[2].TokenID)
}

func TestStore_RemoveAndPurge(t *testing.T) {
	st := NewStore(10, time.Minute)
	st.Put(pet(1, 0, 0))
	st.Put(pet(2, 0, 0))

	st.Remove(1)
	assert.Equal(t, 1, st.Len())

	st.Purge()
	assert.Zero(t, st.Len())
}

func TestStore_ConcurrentPut(t *testing.T) {
	st := NewStore(100, time.Minute)

	var wg sync.WaitGroup
	for i := uint64(1); i <= 50; i++ {
		wg.Add(1)
		go func(ts uint64) {
			defer wg.Done()
			st.Put(pet(1, ts, ts))
		}(i)
	}
	wg.Wait()

	got, ok := st.Get(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(50), got.LastClaimTime, "the newest read wins regardless of arrival order")
}

func TestStore_MemoryStaysBounded(t *testing.T) {
	st := NewStore(100, 0)

	leaktest.CheckNoMemoryLeak(t, 4.0, func() {
		for i := uint64(0); i < 200_000; i++ {
			st.Put(pet(i, 100, 100))
		}
	})

	assert.Equal(t, 100, st.Len())
}
