package storage

import (
	"context"
	"strings"
)

// exerciseMediaKeys maps exercise-name substrings to demo animation objects
// in the media bucket. First match wins; lookup is case-insensitive.
var exerciseMediaKeys = []struct {
	substr string
	key    string
}{
	{"push", "animations/pushup.json"},
	{"squat", "animations/squat.json"},
	{"plank", "animations/plank.json"},
	{"sit up", "animations/situp.json"},
	{"sit-up", "animations/situp.json"},
	{"situp", "animations/situp.json"},
	{"crunch", "animations/crunch.json"},
	{"lunge", "animations/lunge.json"},
	{"burpee", "animations/burpee.json"},
	{"jumping jack", "animations/jumpingjack.json"},
	{"glute bridge", "animations/glutebridge.json"},
	{"superman", "animations/superman.json"},
}

// ExerciseMedia resolves presigned demo URLs for exercises that have a demo
// animation stored in the media bucket.
type ExerciseMedia struct {
	storage FileStorage
}

// NewExerciseMedia creates a resolver on top of the given storage.
func NewExerciseMedia(storage FileStorage) *ExerciseMedia {
	return &ExerciseMedia{storage: storage}
}

// DemoURL returns a presigned URL for the exercise's demo animation, or an
// empty string when no animation matches the name.
func (m *ExerciseMedia) DemoURL(ctx context.Context, exerciseName string) (string, error) {
	lower := strings.ToLower(exerciseName)
	for _, row := range exerciseMediaKeys {
		if strings.Contains(lower, row.substr) {
			return m.storage.GeneratePresignedDownloadURL(ctx, row.key, DefaultPresignedURLExpiry)
		}
	}
	return "", nil
}
