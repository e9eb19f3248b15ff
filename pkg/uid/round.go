package uid

import "github.com/google/uuid"

// GenerateRoundID returns a random id used to tie log lines to one round
func GenerateRoundID() string {
	return uuid.NewString()
}
