// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemoryRepository holds all activity rosters for the life of the process.
// A single lock serializes concurrent mutations; lookups take the read side.
type InMemoryRepository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRepository constructs a repository from the given seed set.
func NewInMemoryRepository(seed []domain.Activity) *InMemoryRepository {
	repo := &InMemoryRepository{
		activities: make(map[string]domain.Activity, len(seed)),
	}
	for _, activity := range seed {
		repo.activities[activity.Name] = activity.Clone()
	}
	return repo
}

// List implements domain.RosterRepository. Returned records do not alias
// internal state.
func (r *InMemoryRepository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns the activity by exact name.
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	out := activity.Clone()
	return &out, nil
}

// AddParticipant appends email to the roster, rejecting duplicates.
func (r *InMemoryRepository) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	out := activity.Clone()
	return &out, nil
}

// RemoveParticipant removes email from the roster, rejecting non-members.
func (r *InMemoryRepository) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	index := -1
	for i, existing := range activity.Participants {
		if existing == email {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, domain.ErrNotRegistered
	}

	roster := make([]string, 0, len(activity.Participants)-1)
	roster = append(roster, activity.Participants[:index]...)
	roster = append(roster, activity.Participants[index+1:]...)
	activity.Participants = roster
	r.activities[name] = activity

	out := activity.Clone()
	return &out, nil
}
