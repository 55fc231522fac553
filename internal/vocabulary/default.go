package vocabulary

import (
	"bytes"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"sync"
)

//go:embed skills.json
var defaultSkillsJSON []byte

// Opener opens a vocabulary source. A nil ReadCloser with a nil error means no source.
type Opener func() (io.ReadCloser, error)

// FileOpener returns an Opener reading the JSON file at path
func FileOpener(path string) Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// BytesOpener returns an Opener serving the given content
func BytesOpener(data []byte) Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

// Lazy loads a Vocabulary on first use. Concurrent callers of Get block until the single
// load completes and all observe the same fully built Vocabulary.
type Lazy struct {
	open  Opener
	once  sync.Once
	vocab *Vocabulary
}

// NewLazy creates a Lazy vocabulary backed by open. A nil opener yields the fallback list.
func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

// Get returns the vocabulary, loading it exactly once
func (l *Lazy) Get() *Vocabulary {
	l.once.Do(func() {
		l.vocab = l.load()
	})
	return l.vocab
}

func (l *Lazy) load() *Vocabulary {
	if l.open == nil {
		return Load(nil)
	}

	rc, err := l.open()
	if err != nil {
		slog.Warn("vocabulary: failed to open source, using fallback skill set", slog.Any("error", err))
		return Fallback()
	}
	if rc == nil {
		return Load(nil)
	}
	defer func() { _ = rc.Close() }()

	return Load(rc)
}

var defaultVocabulary = NewLazy(BytesOpener(defaultSkillsJSON))

// Default returns the process-wide vocabulary built from the embedded skills.json.
// It is loaded on first call and shared thereafter.
func Default() *Vocabulary {
	return defaultVocabulary.Get()
}
