package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Activity is a named extracurricular with a fixed description, schedule and
// advisory capacity. Participants are stored in signup order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// NewActivity validates static fields at construction. MaxParticipants is
// display data only and is never enforced on signup.
func NewActivity(name, description, schedule string, maxParticipants int, participants ...string) (Activity, error) {
	if strings.TrimSpace(name) == "" {
		return Activity{}, errors.New("activity name is required")
	}
	if maxParticipants <= 0 {
		return Activity{}, fmt.Errorf("activity %q: max_participants must be > 0", name)
	}

	seen := make(map[string]struct{}, len(participants))
	roster := make([]string, 0, len(participants))
	for _, email := range participants {
		if _, ok := seen[email]; ok {
			return Activity{}, fmt.Errorf("activity %q: duplicate participant %s", name, email)
		}
		seen[email] = struct{}{}
		roster = append(roster, email)
	}

	return Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    roster,
	}, nil
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, existing := range a.Participants {
		if existing == email {
			return true
		}
	}
	return false
}

// Clone returns a copy whose roster does not alias the receiver's.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
