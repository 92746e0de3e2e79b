package content

import (
	"context"
	"io/fs"
	"sync"

	"github.com/secwepemc-ed/curricula/core/curriculum"
)

// Repository serves curriculum records loaded from a content directory.
// Module order follows filename order; records are treated as read-only
// once loaded. Reload swaps the whole set atomically.
type Repository struct {
	fsys fs.FS
	dir  string

	mu      sync.RWMutex
	modules []curriculum.ModuleRecord
	byID    map[string]curriculum.ModuleRecord
}

var _ curriculum.Repository = (*Repository)(nil)

func NewRepository(fsys fs.FS, dir string) (*Repository, error) {
	repo := &Repository{fsys: fsys, dir: dir}
	if err := repo.Reload(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *Repository) Reload() error {
	modules, err := LoadDir(repo.fsys, repo.dir)
	if err != nil {
		return err
	}
	byID := make(map[string]curriculum.ModuleRecord, len(modules))
	for _, mod := range modules {
		byID[mod.ID] = mod
	}

	repo.mu.Lock()
	repo.modules = modules
	repo.byID = byID
	repo.mu.Unlock()
	return nil
}

func (repo *Repository) QueryAllModules(ctx context.Context) ([]curriculum.ModuleRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]curriculum.ModuleRecord, len(repo.modules))
	copy(out, repo.modules)
	return out, nil
}

func (repo *Repository) GetModuleByID(ctx context.Context, id string) (curriculum.ModuleRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	mod, ok := repo.byID[id]
	if !ok {
		return curriculum.ModuleRecord{}, curriculum.ErrModuleNotFound
	}
	return mod, nil
}
