package genesys

import "strings"

// DieType identifies a die and therefore its face set
type DieType string

// Die types
const (
	DieProficiency DieType = "proficiency"
	DieAbility     DieType = "ability"
	DieBoost       DieType = "boost"
	DieChallenge   DieType = "challenge"
	DieDifficulty  DieType = "difficulty"
	DieSetback     DieType = "setback"
	DiePercentile  DieType = "percentile"
)

// DieTypes lists every die in canonical pool order
var DieTypes = []DieType{
	DieProficiency,
	DieAbility,
	DieBoost,
	DieChallenge,
	DieDifficulty,
	DieSetback,
	DiePercentile,
}

// Face is one side of a narrative die, zero or more symbols
type Face []Symbol

// Label encodes the face as concatenated symbol codes. A blank face is " ".
func (f Face) Label() string {
	if len(f) == 0 {
		return SymbolBlank.String()
	}
	var b strings.Builder
	for _, s := range f {
		b.WriteRune(rune(s))
	}
	return b.String()
}

// Glyphs renders the face with display glyphs separated by spaces
func (f Face) Glyphs() string {
	if len(f) == 0 {
		return SymbolBlank.Glyph()
	}
	parts := make([]string, len(f))
	for i, s := range f {
		parts[i] = s.Glyph()
	}
	return strings.Join(parts, " ")
}

// Die describes the static properties of a die type
type Die struct {
	Type       DieType
	ShortCode  string
	FoundryTag string
	Color      string
	Faces      []Face
	Upgrade    DieType
	Downgrade  DieType

	// Sides is only set for numeric dice
	Sides int
}

// IsNumeric reports whether the die rolls a number instead of symbols
func (d *Die) IsNumeric() bool {
	return d.Sides > 0
}

// FaceCount returns the number of faces on the die
func (d *Die) FaceCount() int {
	if d.IsNumeric() {
		return d.Sides
	}
	return len(d.Faces)
}

var (
	blank     = Face{}
	success   = Face{SymbolSuccess}
	advantage = Face{SymbolAdvantage}
	failure   = Face{SymbolFailure}
	threat    = Face{SymbolThreat}
	triumph   = Face{SymbolTriumph}
	despair   = Face{SymbolDespair}
)

var dice = map[DieType]*Die{
	DieBoost: {
		Type:       DieBoost,
		ShortCode:  "B",
		FoundryTag: "db",
		Color:      "#72cddc",
		Upgrade:    DieAbility,
		Faces: []Face{
			blank, blank, success,
			{SymbolSuccess, SymbolAdvantage},
			{SymbolAdvantage, SymbolAdvantage},
			advantage,
		},
	},
	DieSetback: {
		Type:       DieSetback,
		ShortCode:  "S",
		FoundryTag: "ds",
		Color:      "#1e1e1e",
		Upgrade:    DieDifficulty,
		Faces: []Face{
			blank, blank, failure, failure, threat, threat,
		},
	},
	DieAbility: {
		Type:       DieAbility,
		ShortCode:  "A",
		FoundryTag: "da",
		Color:      "#41ad49",
		Upgrade:    DieProficiency,
		Downgrade:  DieBoost,
		Faces: []Face{
			blank, success, success,
			{SymbolSuccess, SymbolSuccess},
			advantage, advantage,
			{SymbolSuccess, SymbolAdvantage},
			{SymbolAdvantage, SymbolAdvantage},
		},
	},
	DieDifficulty: {
		Type:       DieDifficulty,
		ShortCode:  "D",
		FoundryTag: "di",
		Color:      "#522380",
		Upgrade:    DieChallenge,
		Downgrade:  DieSetback,
		Faces: []Face{
			blank, failure,
			{SymbolFailure, SymbolFailure},
			threat, threat, threat,
			{SymbolThreat, SymbolThreat},
			{SymbolFailure, SymbolThreat},
		},
	},
	DieProficiency: {
		Type:       DieProficiency,
		ShortCode:  "P",
		FoundryTag: "dp",
		Color:      "#fff200",
		Downgrade:  DieAbility,
		Faces: []Face{
			blank, success, success,
			{SymbolSuccess, SymbolSuccess},
			{SymbolSuccess, SymbolSuccess},
			advantage,
			{SymbolSuccess, SymbolAdvantage},
			{SymbolSuccess, SymbolAdvantage},
			{SymbolSuccess, SymbolAdvantage},
			{SymbolAdvantage, SymbolAdvantage},
			{SymbolAdvantage, SymbolAdvantage},
			triumph,
		},
	},
	DieChallenge: {
		Type:       DieChallenge,
		ShortCode:  "C",
		FoundryTag: "dc",
		Color:      "#761213",
		Downgrade:  DieDifficulty,
		Faces: []Face{
			blank, failure, failure,
			{SymbolFailure, SymbolFailure},
			{SymbolFailure, SymbolFailure},
			threat, threat,
			{SymbolFailure, SymbolThreat},
			{SymbolFailure, SymbolThreat},
			{SymbolThreat, SymbolThreat},
			{SymbolThreat, SymbolThreat},
			despair,
		},
	},
	DiePercentile: {
		Type:      DiePercentile,
		ShortCode: "%",
		Color:     "#A4B0BB",
		Sides:     100,
	},
}

// Lookup returns the die definition for a type
func Lookup(t DieType) (*Die, bool) {
	d, ok := dice[t]
	return d, ok
}

// FromShortCode resolves a pool short code (case-insensitive) to a die type.
// "T" is accepted as an alias for the percentile die.
func FromShortCode(code rune) (DieType, bool) {
	c := strings.ToUpper(string(code))
	if c == "T" {
		return DiePercentile, true
	}
	for _, t := range DieTypes {
		if dice[t].ShortCode == c {
			return t, true
		}
	}
	return "", false
}

// FromFoundryTag resolves a Foundry die term ("dp", "da", ...) to a die type
func FromFoundryTag(tag string) (DieType, bool) {
	tag = strings.ToLower(tag)
	for _, t := range DieTypes {
		if d := dice[t]; d.FoundryTag != "" && d.FoundryTag == tag {
			return t, true
		}
	}
	return "", false
}
