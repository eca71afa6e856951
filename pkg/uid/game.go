package uid

import "github.com/google/uuid"

// GenerateBatchID identifies one simulation batch in logs and analytics.
func GenerateBatchID() string {
	return uuid.NewString()
}

// GenerateGameID identifies a single watched game.
func GenerateGameID() string {
	return "game_" + uuid.NewString()
}
