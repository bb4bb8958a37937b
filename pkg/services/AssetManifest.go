package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

/*
AssetManifest is written by the image optimizer and read by the gallery
service. Assets are keyed by the logical path the gallery service
generates, e.g. /static/images/residencias/gallery2/1.jpg.
*/
type AssetManifest struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Quality     int                      `json:"quality"`
	Assets      map[string]ManifestEntry `json:"assets"`
}

type ManifestEntry struct {
	Source string `json:"source"`
	URL    string `json:"url"`
	File   string `json:"file,omitempty"`
	Hash   string `json:"hash"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  int64  `json:"bytes"`
}

func NewAssetManifest(quality int) *AssetManifest {
	return &AssetManifest{
		GeneratedAt: time.Now().UTC(),
		Quality:     quality,
		Assets:      map[string]ManifestEntry{},
	}
}

func LoadAssetManifest(path string) (*AssetManifest, error) {
	var (
		err error
		b   []byte
	)

	if b, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("error reading asset manifest '%s': %w", path, err)
	}

	result := &AssetManifest{}

	if err = json.Unmarshal(b, result); err != nil {
		return nil, fmt.Errorf("error parsing asset manifest '%s': %w", path, err)
	}

	if result.Assets == nil {
		result.Assets = map[string]ManifestEntry{}
	}

	return result, nil
}

func (m *AssetManifest) Save(path string) error {
	var (
		err error
		b   []byte
	)

	if b, err = json.MarshalIndent(m, "", "  "); err != nil {
		return fmt.Errorf("error encoding asset manifest: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating manifest directory for '%s': %w", path, err)
	}

	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("error writing asset manifest '%s': %w", path, err)
	}

	return nil
}

func (m *AssetManifest) Lookup(logicalPath string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}

	entry, ok := m.Assets[logicalPath]
	return entry, ok
}

// URL returns the published URL for a logical path, or the path itself when unknown.
func (m *AssetManifest) URL(logicalPath string) string {
	if entry, ok := m.Lookup(logicalPath); ok && entry.URL != "" {
		return entry.URL
	}

	return logicalPath
}

// Files lists the on-disk output files, sorted, skipping inlined assets.
func (m *AssetManifest) Files() []string {
	result := []string{}

	for _, entry := range m.Assets {
		if entry.File != "" {
			result = append(result, entry.File)
		}
	}

	sort.Strings(result)
	return result
}
