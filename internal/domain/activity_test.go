package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewActivity(t *testing.T) {
	activity, err := NewActivity("Chess Club", "desc", "Fridays", 12, "a@mergington.edu", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Chess Club", activity.Name)
	require.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, activity.Participants)
}

func TestNewActivityRejectsEmptyName(t *testing.T) {
	_, err := NewActivity("  ", "desc", "Fridays", 12)
	require.Error(t, err)
}

func TestNewActivityRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewActivity("Chess Club", "desc", "Fridays", 0)
	require.Error(t, err)
}

func TestNewActivityRejectsDuplicateParticipants(t *testing.T) {
	_, err := NewActivity("Chess Club", "desc", "Fridays", 12, "a@mergington.edu", "a@mergington.edu")
	require.Error(t, err)
}

func TestHasParticipant(t *testing.T) {
	activity := Activity{Participants: []string{"a@mergington.edu"}}
	require.True(t, activity.HasParticipant("a@mergington.edu"))
	require.False(t, activity.HasParticipant("b@mergington.edu"))
	// Exact match only, no case folding.
	require.False(t, activity.HasParticipant("A@mergington.edu"))
}

func TestCloneDoesNotAliasRoster(t *testing.T) {
	activity := Activity{Participants: []string{"a@mergington.edu"}}
	clone := activity.Clone()
	clone.Participants[0] = "tampered@mergington.edu"
	require.Equal(t, "a@mergington.edu", activity.Participants[0])
}
