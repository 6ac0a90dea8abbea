package registry

import "example.com/signup/internal/domain"

// DefaultActivities returns the seed roster for Mergington High School.
func DefaultActivities() []domain.Activity {
	return []domain.Activity{
		mustActivity("Chess Club",
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM", 12,
			"michael@mergington.edu", "daniel@mergington.edu"),
		mustActivity("Programming Class",
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
			"emma@mergington.edu", "sophia@mergington.edu"),
		mustActivity("Gym Class",
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
			"john@mergington.edu", "olivia@mergington.edu"),
	}
}

func mustActivity(name, description, schedule string, maxParticipants int, participants ...string) domain.Activity {
	activity, err := domain.NewActivity(name, description, schedule, maxParticipants, participants...)
	if err != nil {
		panic(err)
	}
	return activity
}
