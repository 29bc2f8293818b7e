// Package catalog maintains a local index of FLP project metadata. A scan
// walks a directory tree, parses every .flp it finds and stores a summary
// per file, so the CLI can answer "what projects do I have" without
// re-parsing anything.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	log "github.com/sirupsen/logrus"

	"github.com/SpendLessDaw/flp/pkg/project"
)

// ErrNotFound is returned when a path has no catalog entry
var ErrNotFound = errors.New("project not found in catalog")

const entryPrefix = "flp/"

// Entry is the stored summary for one project file
type Entry struct {
	ID           string    `json:"id"`
	Path         string    `json:"path"`
	Title        string    `json:"title"`
	Version      string    `json:"version"`
	Format       int16     `json:"format"`
	ChannelCount uint16    `json:"channel_count"`
	PPQ          uint16    `json:"ppq"`
	EventCount   int       `json:"event_count"`
	FileSize     int64     `json:"file_size"`
	IndexedAt    time.Time `json:"indexed_at"`
}

// Catalog is a pebble-backed store of entries keyed by project path
type Catalog struct {
	db *pebble.DB
}

// Open opens (or creates) a catalog at the given directory
func Open(path string) (*Catalog, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying store
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put stores an entry, assigning a fresh id when it has none
func (c *Catalog) Put(e Entry) error {
	if e.ID == "" {
		e.ID = ksuid.New().String()
	}
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode catalog entry: %w", err)
	}
	if err := c.db.Set([]byte(entryPrefix+e.Path), value, pebble.Sync); err != nil {
		return fmt.Errorf("store catalog entry: %w", err)
	}
	return nil
}

// Get returns the entry for a project path
func (c *Catalog) Get(path string) (*Entry, error) {
	value, closer, err := c.db.Get([]byte(entryPrefix + path))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read catalog entry: %w", err)
	}
	defer closer.Close()

	var e Entry
	if err := json.Unmarshal(value, &e); err != nil {
		return nil, fmt.Errorf("decode catalog entry: %w", err)
	}
	return &e, nil
}

// List returns every entry, ordered by path
func (c *Catalog) List() ([]Entry, error) {
	iter, err := c.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(entryPrefix),
		UpperBound: []byte(entryPrefix + "\xff"),
	})
	if err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var e Entry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			return nil, fmt.Errorf("decode catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	return entries, nil
}

// Scan walks root for .flp files and indexes each one. Files that fail
// to parse are logged and skipped — a broken project should not abort
// the scan. Returns the number of projects indexed.
func (c *Catalog) Scan(root string) (int, error) {
	indexed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".flp") {
			return nil
		}

		entry, err := indexFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("skipping unparseable project")
			return nil
		}
		if err := c.Put(*entry); err != nil {
			return err
		}
		indexed++
		return nil
	})
	if err != nil {
		return indexed, fmt.Errorf("scan %s: %w", root, err)
	}
	return indexed, nil
}

func indexFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := project.Parse(data)
	if err != nil {
		return nil, err
	}
	title, err := p.Title()
	if err != nil {
		return nil, err
	}
	return &Entry{
		Path:         path,
		Title:        title,
		Version:      p.Version(),
		Format:       p.Format(),
		ChannelCount: p.ChannelCount(),
		PPQ:          p.PPQ(),
		EventCount:   len(p.File().Events),
		FileSize:     int64(len(data)),
		IndexedAt:    time.Now().UTC(),
	}, nil
}
