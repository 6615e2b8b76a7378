package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressEntry is a body-weight log point. One entry per (user, date);
// a second write for the same day replaces the first.
type ProgressEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"-"`
	Date     string             `bson:"date" json:"date"`
	WeightKg float64            `bson:"weightKg" json:"weightKg"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
	LoggedAt time.Time          `bson:"loggedAt" json:"loggedAt"`
}
