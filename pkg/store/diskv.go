package store

import (
	"context"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the key-value contract the settings layer runs on.
// Values are opaque JSON blobs or scalar strings; every key is optional.
type Persistence interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte) error
	Delete(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to the discovered file/env configuration.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set writes synchronously; diskv flushes the file before returning, so
// any navigation or reload that follows a command observes the new value.
func (p *persistence) Set(key string, data []byte) error {
	return p.d.Write(key, data)
}

func (p *persistence) Delete(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Keys(ctx context.Context) []string {
	all := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		all = append(all, key)
	}
	sort.Strings(all)
	return all
}
