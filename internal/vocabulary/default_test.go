package vocabulary

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Singleton(t *testing.T) {
	first := Default()
	second := Default()

	assert.Same(t, first, second, "Default should return the same instance")
	assert.Equal(t, SourceConfigured, first.Source())
	assert.GreaterOrEqual(t, first.Count(), 100)
}

func TestDefault_ConcurrentFirstAccess(t *testing.T) {
	const goroutines = 32

	results := make([]*Vocabulary, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Same(t, results[0], v)
	}
}

func TestLazy_LoadsExactlyOnce(t *testing.T) {
	var opens atomic.Int32
	lazy := NewLazy(func() (io.ReadCloser, error) {
		opens.Add(1)
		return BytesOpener([]byte(`{"skills": [{"name": "Go"}, {"name": "Rust"}]}`))()
	})

	const goroutines = 64
	start := make(chan struct{})
	results := make(chan *Vocabulary, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- lazy.Get()
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var first *Vocabulary
	for v := range results {
		require.NotNil(t, v)
		if first == nil {
			first = v
		}
		assert.Same(t, first, v)
		assert.Equal(t, 2, v.Count(), "callers must never observe a partially built vocabulary")
	}
	assert.Equal(t, int32(1), opens.Load())
}

func TestLazy_OpenErrorFallsBack(t *testing.T) {
	lazy := NewLazy(func() (io.ReadCloser, error) {
		return nil, errors.New("permission denied")
	})

	v := lazy.Get()
	assert.Equal(t, SourceFallback, v.Source())
	assert.Same(t, v, lazy.Get())
}

func TestLazy_NilOpener(t *testing.T) {
	assert.Equal(t, SourceFallback, NewLazy(nil).Get().Source())
}

func TestLazy_NilReadCloser(t *testing.T) {
	lazy := NewLazy(func() (io.ReadCloser, error) { return nil, nil })
	assert.Equal(t, SourceFallback, lazy.Get().Source())
}

func TestFileOpener_Missing(t *testing.T) {
	lazy := NewLazy(FileOpener(filepath.Join(t.TempDir(), "missing.json")))
	assert.Equal(t, SourceFallback, lazy.Get().Source())
}
