package requestlog

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Entry tests ──────────────────────────────────────────────────────────────

func TestBodyText(t *testing.T) {
	t.Parallel()

	t.Run("valid utf-8", func(t *testing.T) {
		t.Parallel()
		got := BodyText([]byte(`{"name":"café"}`))
		require.NotNil(t, got)
		assert.Equal(t, `{"name":"café"}`, *got)
	})

	t.Run("empty body is present and empty", func(t *testing.T) {
		t.Parallel()
		got := BodyText(nil)
		require.NotNil(t, got)
		assert.Empty(t, *got)
	})

	t.Run("invalid utf-8 is absent", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, BodyText([]byte{0xff, 0xfe, 0x00}))
	})
}

func TestEntry_JSONFields(t *testing.T) {
	t.Parallel()

	entry := Entry{
		ID:           "req-001",
		Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Method:       "POST",
		Path:         "/api/items",
		Status:       201,
		LatencyMs:    12,
		RequestBody:  Text(`{"a":1}`),
		ResponseBody: nil,
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "2026-01-02T03:04:05Z", raw["timestamp"])
	assert.Equal(t, "POST", raw["method"])
	assert.Equal(t, "/api/items", raw["path"])
	assert.EqualValues(t, 201, raw["status"])
	assert.EqualValues(t, 12, raw["latency_ms"])
	assert.Equal(t, `{"a":1}`, raw["request_body"])
	assert.Contains(t, raw, "response_body")
	assert.Nil(t, raw["response_body"])
}

// ── MemoryStore tests ────────────────────────────────────────────────────────

func TestNewMemoryStore_DefaultCapacity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCapacity, NewMemoryStore(0).Capacity())
	assert.Equal(t, DefaultCapacity, NewMemoryStore(-5).Capacity())
	assert.Equal(t, 10, NewMemoryStore(10).Capacity())
}

func TestMemoryStore_LogAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	before := time.Now().UTC()
	store.Log(&Entry{Method: "GET", Path: "/a", Status: 200})
	store.Log(&Entry{Method: "GET", Path: "/b", Status: 200})

	entries := store.List()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, time.UTC, entries[0].Timestamp.Location())
	assert.False(t, entries[0].Timestamp.Before(before.Truncate(time.Second)))
}

func TestMemoryStore_LogKeepsExplicitFields(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	store.Log(&Entry{ID: "fixed", Timestamp: ts, Method: "GET", Path: "/"})

	got := store.List()[0]
	assert.Equal(t, "fixed", got.ID)
	assert.Equal(t, ts, got.Timestamp)
}

func TestMemoryStore_LogNilIsIgnored(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	store.Log(nil)
	assert.Equal(t, 0, store.Count())
}

func TestMemoryStore_LogCopiesEntry(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	e := &Entry{Method: "GET", Path: "/a"}
	store.Log(e)
	e.Path = "/mutated"

	assert.Equal(t, "/a", store.List()[0].Path)
}

func TestMemoryStore_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("exactly at capacity keeps everything", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore(DefaultCapacity)
		for i := 0; i < DefaultCapacity; i++ {
			store.Log(&Entry{Path: "/" + strconv.Itoa(i)})
		}
		entries := store.List()
		require.Len(t, entries, DefaultCapacity)
		assert.Equal(t, "/0", entries[0].Path)
	})

	t.Run("one past capacity evicts exactly one", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore(DefaultCapacity)
		for i := 0; i < DefaultCapacity+1; i++ {
			store.Log(&Entry{Path: "/" + strconv.Itoa(i)})
		}
		entries := store.List()
		require.Len(t, entries, DefaultCapacity)
		assert.Equal(t, "/1", entries[0].Path)
		assert.Equal(t, "/1000", entries[len(entries)-1].Path)
	})

	t.Run("keeps the last capacity entries in append order", func(t *testing.T) {
		t.Parallel()
		const n = 2537
		store := NewMemoryStore(DefaultCapacity)
		for i := 0; i < n; i++ {
			store.Log(&Entry{Path: "/" + strconv.Itoa(i)})
		}
		entries := store.List()
		require.Len(t, entries, DefaultCapacity)
		for i, e := range entries {
			assert.Equal(t, "/"+strconv.Itoa(n-DefaultCapacity+i), e.Path)
		}
	})
}

func TestMemoryStore_Tail(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	for i := 0; i < 5; i++ {
		store.Log(&Entry{Path: "/" + strconv.Itoa(i)})
	}

	tail := store.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "/3", tail[0].Path)
	assert.Equal(t, "/4", tail[1].Path)

	assert.Len(t, store.Tail(0), 5)
	assert.Len(t, store.Tail(50), 5)
}

func TestMemoryStore_ListIsSnapshot(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(10)
	store.Log(&Entry{Path: "/a"})

	entries := store.List()
	entries[0].Path = "/changed"
	store.Log(&Entry{Path: "/b"})

	assert.Equal(t, "/a", store.List()[0].Path)
	assert.Len(t, entries, 1)
}

func TestMemoryStore_ConcurrentLog(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(100)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				store.Log(&Entry{Method: "GET", Path: "/c"})
				_ = store.List()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, store.Count())
}
