package genesys

import "strings"

// Characteristic is one of the six character characteristics
type Characteristic string

// Characteristics
const (
	Brawn     Characteristic = "brawn"
	Agility   Characteristic = "agility"
	Intellect Characteristic = "intellect"
	Cunning   Characteristic = "cunning"
	Willpower Characteristic = "willpower"
	Presence  Characteristic = "presence"

	// NoCharacteristic is used by rolls that do not involve one
	NoCharacteristic Characteristic = "-"
)

var characteristicAbbr = map[Characteristic]string{
	Brawn:     "Br",
	Agility:   "Ag",
	Intellect: "Int",
	Cunning:   "Cun",
	Willpower: "Will",
	Presence:  "Pr",
}

// IsSet reports whether c names a real characteristic
func (c Characteristic) IsSet() bool {
	_, ok := characteristicAbbr[c]
	return ok
}

// Abbr returns the short form, e.g. "Br"
func (c Characteristic) Abbr() string {
	return characteristicAbbr[c]
}

// Title returns the capitalised name, e.g. "Brawn"
func (c Characteristic) Title() string {
	if !c.IsSet() {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
