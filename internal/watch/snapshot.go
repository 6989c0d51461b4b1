package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/dbenedek/docnav/internal/check"
	"github.com/dbenedek/docnav/internal/content"
	"github.com/dbenedek/docnav/internal/nav"
	"github.com/dbenedek/docnav/internal/router"
)

// Snapshot is one fully-built, immutable view of the site navigation.
// Reloads never mutate a snapshot; they build a new one and swap it in.
type Snapshot struct {
	Tree     nav.Tree
	Router   *router.Router
	Index    *content.Index
	Issues   []check.Issue
	LoadedAt time.Time
}

// Loader builds snapshots from disk.
type Loader struct {
	ContentRoot string
	NavFile     string   // empty = use Fallback
	Ignore      []string
	Fallback    nav.Tree // built-in navigation literal
}

// Build reads the navigation source and content root and assembles a
// snapshot. A tree that fails validation or routing aborts the build, so
// a bad edit keeps the previous snapshot serving.
func (l Loader) Build() (*Snapshot, error) {
	var tree nav.Tree
	var err error
	if l.NavFile != "" {
		tree, err = nav.LoadFile(l.NavFile)
		if err != nil {
			return nil, err
		}
	} else {
		tree = l.Fallback
		if err := tree.Validate(); err != nil {
			return nil, fmt.Errorf("built-in navigation: %w", err)
		}
	}

	rt, err := router.New(tree)
	if err != nil {
		return nil, err
	}

	ix, err := content.Scan(l.ContentRoot, l.Ignore)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Tree:     tree,
		Router:   rt,
		Index:    ix,
		Issues:   check.Run(tree, ix),
		LoadedAt: time.Now(),
	}, nil
}

// Store holds the current snapshot behind a lock. Readers get whatever
// snapshot was current when they asked; swaps are atomic.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(snap *Snapshot) *Store {
	return &Store{snap: snap}
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Swap installs a new snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
