package watcher_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/adapters/watcher"
)

// batchCollector records delivered batches under a lock.
type batchCollector struct {
	mu      sync.Mutex
	batches [][]string
}

func (c *batchCollector) collect(paths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, paths)
}

func (c *batchCollector) snapshot() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]string(nil), c.batches...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var collector batchCollector
	debouncer := watcher.NewDebouncer(20*time.Millisecond, collector.collect)

	// An editor save burst: several events for the same file plus one more.
	debouncer.Add("deps/openssl.yaml")
	debouncer.Add("deps/openssl.yaml")
	debouncer.Add("deps/zlib.yaml")

	require.Eventually(t, func() bool {
		return len(collector.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	batches := collector.snapshot()
	assert.ElementsMatch(t, []string{"deps/openssl.yaml", "deps/zlib.yaml"}, batches[0])
}

func TestDebouncer_Flush(t *testing.T) {
	var collector batchCollector
	debouncer := watcher.NewDebouncer(time.Hour, collector.collect)

	debouncer.Add("deps/openssl.yaml")
	debouncer.Flush()

	batches := collector.snapshot()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"deps/openssl.yaml"}, batches[0])
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var collector batchCollector
	debouncer := watcher.NewDebouncer(time.Hour, collector.collect)

	debouncer.Flush()
	assert.Empty(t, collector.snapshot())
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	var collector batchCollector
	debouncer := watcher.NewDebouncer(10*time.Millisecond, collector.collect)

	debouncer.Add("deps/openssl.yaml")
	require.Eventually(t, func() bool {
		return len(collector.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)

	debouncer.Add("deps/zlib.yaml")
	require.Eventually(t, func() bool {
		return len(collector.snapshot()) == 2
	}, time.Second, 2*time.Millisecond)

	batches := collector.snapshot()
	assert.Equal(t, []string{"deps/openssl.yaml"}, batches[0])
	assert.Equal(t, []string{"deps/zlib.yaml"}, batches[1])
}
