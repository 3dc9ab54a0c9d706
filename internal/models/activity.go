package models

import (
	"github.com/PetroczyP/mergington-activities/internal/i18n"
)

// ActivityText is the display text of an activity in one language.
type ActivityText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
}

// Activity is the seed definition of an extracurricular activity. ID is the
// English name and keys the registration store in every language.
type Activity struct {
	ID              string                     `json:"id"`
	MaxParticipants int                        `json:"max_participants"`
	Text            map[i18n.Lang]ActivityText `json:"text"`
	Participants    []string                   `json:"participants"`
}

// ActivityView is an activity rendered for one language, with a snapshot of
// its participants.
type ActivityView struct {
	ID              string   `json:"id" doc:"Canonical activity identifier"`
	Name            string   `json:"name" doc:"Localized activity name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
	AvailableSpots  int      `json:"available_spots"`
}

// IsFull reports whether the view has no remaining spots.
func (v ActivityView) IsFull() bool {
	return len(v.Participants) >= v.MaxParticipants
}
