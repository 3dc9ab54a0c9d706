package i18n

// Key identifies a localized message.
type Key string

const (
	MsgSignedUp            Key = "signed_up"
	MsgUnregistered        Key = "unregistered"
	MsgActivityFull        Key = "activity_full"
	MsgActivityNotFound    Key = "activity_not_found"
	MsgAlreadyRegistered   Key = "already_registered"
	MsgNotRegistered       Key = "not_registered"
	MsgUnsupportedLanguage Key = "unsupported_language"
)

// Keys lists every message key. Each language must define all of them.
var Keys = []Key{
	MsgSignedUp,
	MsgUnregistered,
	MsgActivityFull,
	MsgActivityNotFound,
	MsgAlreadyRegistered,
	MsgNotRegistered,
	MsgUnsupportedLanguage,
}

// signed_up and unregistered take the participant email and the localized
// activity name, in that order.
var messages = map[Lang]map[Key]string{
	English: {
		MsgSignedUp:            "Signed up %s for %s",
		MsgUnregistered:        "Unregistered %s from %s",
		MsgActivityFull:        "Activity is full",
		MsgActivityNotFound:    "Activity not found",
		MsgAlreadyRegistered:   "Student already signed up for this activity",
		MsgNotRegistered:       "Student is not signed up for this activity",
		MsgUnsupportedLanguage: "Unsupported language",
	},
	Hungarian: {
		MsgSignedUp:            "%s sikeresen jelentkezett: %s",
		MsgUnregistered:        "%s sikeresen kijelentkezett: %s",
		MsgActivityFull:        "A tevékenység megtelt",
		MsgActivityNotFound:    "A tevékenység nem található",
		MsgAlreadyRegistered:   "A diák már jelentkezett erre a tevékenységre",
		MsgNotRegistered:       "A diák nem jelentkezett erre a tevékenységre",
		MsgUnsupportedLanguage: "Nem támogatott nyelv",
	},
}

// Message returns the raw, unformatted message for the language.
func Message(l Lang, key Key) (string, bool) {
	table, ok := messages[l]
	if !ok {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}
