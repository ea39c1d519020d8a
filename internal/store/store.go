package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"carddex/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalog = []byte("catalog")
	bucketUser    = []byte("user")
)

// Record keys within the buckets
const (
	keyCards = "cards"
	keyUser  = "profile"
)

// CardStore implements domain.Store using BoltDB. Values are JSON, one
// record per key; saving the catalog and saving the user profile are
// independent writes with no cross-key transaction.
type CardStore struct {
	db     *bolt.DB
	logger *slog.Logger
	mu     sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// New opens (or creates) the store under cacheDir. An empty cacheDir
// gives a memory-only store with no persistence.
func New(cacheDir string, logger *slog.Logger) (*CardStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheDir == "" {
		return &CardStore{cache: make(map[string][]byte), logger: logger}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "carddex.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCatalog, bucketUser} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CardStore{db: db, cache: make(map[string][]byte), logger: logger}, nil
}

func (s *CardStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CardStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		if err := json.Unmarshal(data, dest); err != nil {
			s.logger.Error("failed to decode cached record", "key", cacheKey, "error", err)
			return false
		}
		return true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	// Read from BoltDB
	var data []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	}); err != nil {
		s.logger.Error("failed to read record", "key", cacheKey, "error", err)
		return false
	}

	// nil means the key was never written; a stored empty collection
	// round-trips as a non-nil (but empty) JSON value
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Error("failed to decode record", "key", cacheKey, "error", err)
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return true
}

func (s *CardStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	// Update memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *CardStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	if err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			return b.Delete([]byte(key))
		}
		return nil
	}); err != nil {
		s.logger.Error("failed to delete record", "key", cacheKey, "error", err)
	}
}

// === Catalog cache ===

// GetCards returns the cached flattened card list. The page cursor is
// not persisted, only the cards themselves.
func (s *CardStore) GetCards() ([]domain.Card, bool) {
	var cards []domain.Card
	ok := s.get(bucketCatalog, keyCards, &cards)
	return cards, ok
}

func (s *CardStore) SaveCards(cards []domain.Card) error {
	return s.set(bucketCatalog, keyCards, cards)
}

func (s *CardStore) InvalidateCards() {
	s.delete(bucketCatalog, keyCards)
}

// === User profile ===

func (s *CardStore) GetUser() (*domain.User, bool) {
	var user domain.User
	if !s.get(bucketUser, keyUser, &user) {
		return nil, false
	}
	return &user, true
}

func (s *CardStore) SaveUser(user *domain.User) error {
	return s.set(bucketUser, keyUser, user)
}

func (s *CardStore) DeleteUser() {
	s.delete(bucketUser, keyUser)
}
