// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrNotRegistered indicates the email is absent from the activity roster.
	ErrNotRegistered = errors.New("participant not registered")
)

// RosterRepository captures the storage operations over the activity registry.
// Membership and existence checks happen inside the repository so a single
// call covers check-and-mutate.
type RosterRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// RosterNotifier receives notifications after successful roster mutations.
type RosterNotifier interface {
	SignupRecorded(ctx context.Context, activity, email string) error
	RegistrationRemoved(ctx context.Context, activity, email string) error
}

// Service orchestrates roster workflows.
type Service struct {
	repo     RosterRepository
	notifier RosterNotifier
	log      *zap.Logger
}

// Option customises Service construction.
type Option func(*Service)

// WithNotifier attaches a roster event notifier.
func WithNotifier(n RosterNotifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService constructs a Service.
func NewService(repo RosterRepository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		notifier: nopNotifier{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns the full name to activity mapping.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup appends email to the activity roster. Duplicate and unknown-activity
// checks are delegated to the repository; notification failures are logged
// and never fail the signup.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	updated, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SignupRecorded(ctx, name, email); err != nil {
		s.log.Warn("signup event not published",
			zap.String("activity", name),
			zap.String("email", email),
			zap.Error(err),
		)
	}
	return updated, nil
}

// Unregister removes email from the activity roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	updated, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.RegistrationRemoved(ctx, name, email); err != nil {
		s.log.Warn("unregister event not published",
			zap.String("activity", name),
			zap.String("email", email),
			zap.Error(err),
		)
	}
	return updated, nil
}

type nopNotifier struct{}

func (nopNotifier) SignupRecorded(context.Context, string, string) error      { return nil }
func (nopNotifier) RegistrationRemoved(context.Context, string, string) error { return nil }
