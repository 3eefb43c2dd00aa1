package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"huffcodec/internal/model"
)

var ErrNotFound = errors.New("not found")

type ArtifactRepo interface {
	Save(ctx context.Context, a *model.Artifact) error
	FindByID(ctx context.Context, id string) (*model.Artifact, error)
	List(ctx context.Context) ([]*model.Artifact, error)
}

type artifactRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Artifact
}

func NewArtifactRepoInMemory() ArtifactRepo {
	return &artifactRepoInMemory{store: make(map[string]*model.Artifact)}
}

func (r *artifactRepoInMemory) Save(_ context.Context, a *model.Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[a.ID] = a
	return nil
}

func (r *artifactRepoInMemory) FindByID(_ context.Context, id string) (*model.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *artifactRepoInMemory) List(_ context.Context) ([]*model.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Artifact, 0, len(r.store))
	for _, a := range r.store {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
