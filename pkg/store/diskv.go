package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/cram/pkg/card"
)

// Format tags the on-disk snapshot layout. There is no migration story beyond
// this single tag; an unrecognized format is treated as absent state.
const Format = "cram.v1"

// deckKey is the single key the snapshot lives under.
const deckKey = "deck"

// Snapshot is the persisted unit: the current card sequence plus the raw text
// it was parsed from, so a reload can either restore scheduling state or
// re-parse from source.
type Snapshot struct {
	Format string       `json:"format"`
	Text   string       `json:"text"`
	Cards  []*card.Card `json:"cards"`
}

// Persistence defines the storage contract for deck snapshots. The core
// treats this purely as a load/save boundary with a single-writer assumption.
type Persistence interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Save(snap *Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
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

// Snapshot reads the stored deck. A missing or empty value means no prior
// state and returns (nil, nil); callers fall back to defaults.
func (p *persistence) Snapshot(_ context.Context) (*Snapshot, error) {
	if !p.d.Has(deckKey) {
		return nil, nil
	}
	val, err := p.d.Read(deckKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read deck: %w", err)
	}
	if len(val) == 0 {
		return nil, nil
	}
	snap := &Snapshot{}
	if err := json.Unmarshal(val, snap); err != nil {
		return nil, fmt.Errorf("store: decode deck: %w", err)
	}
	if snap.Format != Format {
		// Unknown layout; treat as absent rather than misread it.
		return nil, nil
	}
	return snap, nil
}

// Save writes the snapshot, stamping the current format tag.
func (p *persistence) Save(snap *Snapshot) error {
	if snap == nil {
		return errors.New("store: nil snapshot")
	}
	snap.Format = Format
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode deck: %w", err)
	}
	if err := p.d.Write(deckKey, data); err != nil {
		return fmt.Errorf("store: write deck: %w", err)
	}
	return nil
}
