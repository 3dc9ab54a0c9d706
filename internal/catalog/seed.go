package catalog

import (
	"github.com/PetroczyP/mergington-activities/internal/i18n"
	"github.com/PetroczyP/mergington-activities/internal/models"
)

// Seed returns the Mergington High School activities with their initial
// participants. Each call returns fresh slices and maps.
func Seed() []models.Activity {
	return []models.Activity{
		{
			ID:              "Chess Club",
			MaxParticipants: 12,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Chess Club",
					Description: "Learn strategies and compete in chess tournaments",
					Schedule:    "Fridays, 3:30 PM - 5:00 PM",
				},
				i18n.Hungarian: {
					Name:        "Sakk Klub",
					Description: "Tanulj stratégiákat és versenyezz sakkversenyeken",
					Schedule:    "Péntek, 15:30 - 17:00",
				},
			},
			Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			ID:              "Programming Class",
			MaxParticipants: 20,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Programming Class",
					Description: "Learn programming fundamentals and build software projects",
					Schedule:    "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				},
				i18n.Hungarian: {
					Name:        "Programozás Tanfolyam",
					Description: "Tanuld meg a programozás alapjait és készíts szoftverprojekteket",
					Schedule:    "Kedd és csütörtök, 15:30 - 16:30",
				},
			},
			Participants: []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			ID:              "Gym Class",
			MaxParticipants: 30,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Gym Class",
					Description: "Physical education and sports activities",
					Schedule:    "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				},
				i18n.Hungarian: {
					Name:        "Tornaterem",
					Description: "Testnevelés és sporttevékenységek",
					Schedule:    "Hétfő, szerda, péntek, 14:00 - 15:00",
				},
			},
			Participants: []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			ID:              "Soccer Team",
			MaxParticipants: 22,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Soccer Team",
					Description: "Join the varsity soccer team for practices and competitive matches",
					Schedule:    "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
				},
				i18n.Hungarian: {
					Name:        "Focicsapat",
					Description: "Csatlakozz az iskolai focicsapathoz edzésekre és bajnoki mérkőzésekre",
					Schedule:    "Hétfő és szerda, 16:00 - 18:00",
				},
			},
			Participants: []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		{
			ID:              "Swimming Club",
			MaxParticipants: 15,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Swimming Club",
					Description: "Swimming lessons and training for all skill levels",
					Schedule:    "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				},
				i18n.Hungarian: {
					Name:        "Úszó Klub",
					Description: "Úszásoktatás és edzés minden szinten",
					Schedule:    "Kedd és csütörtök, 16:00 - 17:30",
				},
			},
			Participants: []string{"ryan@mergington.edu"},
		},
		{
			ID:              "Drama Club",
			MaxParticipants: 25,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Drama Club",
					Description: "Perform in plays and learn acting techniques",
					Schedule:    "Wednesdays, 3:30 PM - 5:30 PM",
				},
				i18n.Hungarian: {
					Name:        "Drámakör",
					Description: "Játssz színdarabokban és tanulj színészi technikákat",
					Schedule:    "Szerda, 15:30 - 17:30",
				},
			},
			Participants: []string{"lily@mergington.edu", "james@mergington.edu"},
		},
		{
			ID:              "Art Studio",
			MaxParticipants: 18,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Art Studio",
					Description: "Explore painting, drawing, and sculpture",
					Schedule:    "Thursdays, 3:30 PM - 5:00 PM",
				},
				i18n.Hungarian: {
					Name:        "Művészeti Stúdió",
					Description: "Fedezd fel a festészetet, a rajzolást és a szobrászatot",
					Schedule:    "Csütörtök, 15:30 - 17:00",
				},
			},
			Participants: []string{"ava@mergington.edu"},
		},
		{
			ID:              "Debate Team",
			MaxParticipants: 16,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Debate Team",
					Description: "Develop critical thinking and public speaking skills through competitive debates",
					Schedule:    "Tuesdays, 4:00 PM - 5:30 PM",
				},
				i18n.Hungarian: {
					Name:        "Vitakör",
					Description: "Fejleszd a kritikai gondolkodást és a nyilvános beszéd készségét versenyvitákon",
					Schedule:    "Kedd, 16:00 - 17:30",
				},
			},
			Participants: []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		{
			ID:              "Science Olympiad",
			MaxParticipants: 20,
			Text: map[i18n.Lang]models.ActivityText{
				i18n.English: {
					Name:        "Science Olympiad",
					Description: "Compete in science competitions and conduct experiments",
					Schedule:    "Fridays, 3:00 PM - 5:00 PM",
				},
				i18n.Hungarian: {
					Name:        "Tudományos Olimpia",
					Description: "Versenyezz tudományos megmérettetéseken és végezz kísérleteket",
					Schedule:    "Péntek, 15:00 - 17:00",
				},
			},
			Participants: []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
	}
}
