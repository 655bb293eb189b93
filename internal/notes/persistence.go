package notes

import "calnotes/internal/storage"

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "calendarNotes"

// Persistence loads and saves the serialized note collection.
type Persistence interface {
	Load() ([]byte, bool, error)
	Save(data []byte) error
}

// KVPersistence stores the collection under a single key of a storage.KV.
type KVPersistence struct {
	KV  storage.KV
	Key string
}

// NewKVPersistence uses DefaultKey.
func NewKVPersistence(kv storage.KV) *KVPersistence {
	return &KVPersistence{KV: kv, Key: DefaultKey}
}

func (p *KVPersistence) key() string {
	if p.Key == "" {
		return DefaultKey
	}
	return p.Key
}

func (p *KVPersistence) Load() ([]byte, bool, error) {
	return p.KV.Get(p.key())
}

func (p *KVPersistence) Save(data []byte) error {
	return p.KV.Set(p.key(), data)
}
