// Package lang loads the language strings used by the templates.
package lang

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/itchan-dev/forumview/internal/logger"
)

//go:embed catalogs/*.yaml
var builtin embed.FS

// Fallback is the language every catalog is layered over.
const Fallback = "english"

type Catalog struct {
	Language string
	strings  map[string]string
}

// New builds a catalog directly from a map, mostly for tests.
func New(language string, entries map[string]string) *Catalog {
	c := &Catalog{Language: language, strings: make(map[string]string, len(entries))}
	for k, v := range entries {
		c.strings[k] = v
	}
	return c
}

// Load returns the catalog for language. Strings come from the embedded
// English catalog, then the embedded catalog for language (if any), then
// overrideDir/<language>.yaml when overrideDir is set.
func Load(language, overrideDir string) (*Catalog, error) {
	c := New(language, nil)

	if err := c.mergeEmbedded(Fallback); err != nil {
		return nil, err
	}
	if language != Fallback {
		if err := c.mergeEmbedded(language); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	if overrideDir != "" {
		raw, err := os.ReadFile(filepath.Join(overrideDir, language+".yaml"))
		switch {
		case err == nil:
			if err := c.merge(raw); err != nil {
				return nil, fmt.Errorf("language override %s: %w", language, err)
			}
		case os.IsNotExist(err):
			logger.Log.Debug("no language override", "language", language, "dir", overrideDir)
		default:
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) mergeEmbedded(language string) error {
	raw, err := builtin.ReadFile("catalogs/" + language + ".yaml")
	if err != nil {
		return err
	}
	if err := c.merge(raw); err != nil {
		return fmt.Errorf("language %s: %w", language, err)
	}
	return nil
}

func (c *Catalog) merge(raw []byte) error {
	var entries map[string]string
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return err
	}
	for k, v := range entries {
		c.strings[k] = v
	}
	return nil
}

// Get returns the string for key, or the key itself when it is missing.
func (c *Catalog) Get(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// Has reports whether key is defined.
func (c *Catalog) Has(key string) bool {
	_, ok := c.strings[key]
	return ok
}

// Format looks up key and formats it with args.
func (c *Catalog) Format(key string, args ...any) string {
	return fmt.Sprintf(c.Get(key), args...)
}
