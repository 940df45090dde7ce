package repositories

import "sync/atomic"

// StoreHandle is the process-wide "connected or not" state of the visitor store.
// It starts absent, is published at most once and never goes back to absent.
type StoreHandle struct {
	repo atomic.Pointer[published]
}

type published struct{ VisitorRepository }

// NewStoreHandle returns an absent handle.
func NewStoreHandle() *StoreHandle { return &StoreHandle{} }

// Publish makes repo visible to every reader. Only the first call wins.
func (h *StoreHandle) Publish(repo VisitorRepository) bool {
	if repo == nil {
		return false
	}
	return h.repo.CompareAndSwap(nil, &published{repo})
}

// Repository returns the published repository, or false while the store is absent.
func (h *StoreHandle) Repository() (VisitorRepository, bool) {
	if h == nil {
		return nil, false
	}
	p := h.repo.Load()
	if p == nil {
		return nil, false
	}
	return p.VisitorRepository, true
}

// Connected reports whether a repository has been published.
func (h *StoreHandle) Connected() bool {
	_, ok := h.Repository()
	return ok
}
