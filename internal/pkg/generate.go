package pkg

import "github.com/google/uuid"

// GenerateMatchID returns a random identifier used to correlate the log lines of one match.
func GenerateMatchID() string {
	return uuid.NewString()
}
