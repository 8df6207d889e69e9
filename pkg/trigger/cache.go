package trigger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/sameersinha-collab/echoproj/pkg/agent"
)

// RenderFunc produces audio for a message in a given voice. Rendering is
// delegated to the backend oracle; the cache only persists the result.
type RenderFunc func(ctx context.Context, profile agent.VoiceProfile, message string) ([]byte, error)

// Cache stores rendered trigger audio in BadgerDB, keyed by a deterministic
// hash of (message, voice profile).
type Cache struct {
	db     *badger.DB
	render RenderFunc
}

// OpenCache opens the audio cache. An empty dir runs badger in memory,
// which is also how tests exercise the real engine.
func OpenCache(dir string, render RenderFunc) (*Cache, error) {
	if render == nil {
		return nil, errors.New("trigger: render func is required")
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("trigger: open cache: %w", err)
	}
	return &Cache{db: db, render: render}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// GetOrRender returns the cached audio for (message, profile), rendering
// and persisting it on a miss.
func (c *Cache) GetOrRender(ctx context.Context, message string, profile agent.VoiceProfile) ([]byte, error) {
	key := cacheKey(message, profile)

	var audio []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		audio, err = item.ValueCopy(nil)
		return err
	})
	if err == nil {
		return audio, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("trigger: cache read: %w", err)
	}

	audio, err = c.render(ctx, profile, message)
	if err != nil {
		return nil, fmt.Errorf("trigger: render %q: %w", message, err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, audio)
	})
	if err != nil {
		// The render succeeded; a failed write only costs a re-render later.
		return audio, nil
	}
	return audio, nil
}

func cacheKey(message string, profile agent.VoiceProfile) []byte {
	sum := sha256.Sum256([]byte(message + "|" + profile.VoiceName + "|" + profile.LanguageCode))
	return []byte("audio:" + hex.EncodeToString(sum[:]))
}
