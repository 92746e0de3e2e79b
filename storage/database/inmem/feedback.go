package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/secwepemc-ed/curricula/core/feedback"
)

type FeedbackRepository struct {
	mu    sync.RWMutex
	table map[string]feedback.Feedback
}

var _ feedback.Repository = (*FeedbackRepository)(nil)

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{table: make(map[string]feedback.Feedback)}
}

func (repo *FeedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	repo.mu.Lock()
	repo.table[fb.ID] = fb
	repo.mu.Unlock()
	return fb, nil
}

func (repo *FeedbackRepository) QueryAllFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]feedback.Feedback, 0, len(repo.table))
	for _, fb := range repo.table {
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
