package process

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const cacheFile = "susres_top_cache.json"

// cachePath places the cache under the user's cache directory.
func cachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, cacheFile), nil
}

// Save writes the process list so the next picker start has something to
// show before the live list arrives.
func Save(items []*Item) error {
	path, err := cachePath()
	if err != nil {
		return err
	}
	return saveTo(path, items)
}

// Load reads the list written by Save. A missing file is an error the caller
// is expected to ignore on first run.
func Load() ([]*Item, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func saveTo(path string, items []*Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(items)
}

func loadFrom(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []*Item
	if err := json.NewDecoder(f).Decode(&items); err != nil {
		return nil, err
	}
	// Cached states are stale by definition.
	for _, it := range items {
		it.State = Unknown
	}
	return items, nil
}
