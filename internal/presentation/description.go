// Package presentation turns a result tally into a chat message: the
// description text with inline die icons, optional attack details and the
// rendered HTML content.
package presentation

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
)

// iconShortCodes are the dice that can be written inline as {P}, {A}, ...
var iconShortCodes = []genesys.DieType{
	genesys.DieProficiency,
	genesys.DieAbility,
	genesys.DieBoost,
	genesys.DieChallenge,
	genesys.DieDifficulty,
	genesys.DieSetback,
}

// DieIcon renders a single die glyph in the dice symbol font
func DieIcon(t genesys.DieType) template.HTML {
	d, ok := genesys.Lookup(t)
	if !ok {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<span class="die-icon" style="font-family: 'Genesys Symbols', sans-serif; color: %s; -webkit-text-stroke: 1px black;">%s</span>`,
		d.Color, d.ShortCode,
	))
}

// PoolIcons renders one icon per symbol die in short code order. Percentile
// dice have no glyph in the symbol font and are skipped.
func PoolIcons(shortCodes string) template.HTML {
	var b strings.Builder
	for _, r := range shortCodes {
		t, ok := genesys.FromShortCode(r)
		if !ok {
			continue
		}
		if d, _ := genesys.Lookup(t); d.IsNumeric() {
			continue
		}
		b.WriteString(string(DieIcon(t)))
	}
	return template.HTML(b.String())
}

// UnescapeMacroArg reverses the escaping used for macro arguments: "|" is a
// space and a literal `\n` is a line break
func UnescapeMacroArg(s string) string {
	s = strings.ReplaceAll(s, "|", " ")
	return strings.ReplaceAll(s, `\n`, "\n")
}

// FormatDescription builds the chat description from a title and free text.
// Text is escaped, line breaks become <br> and {P} style tokens become die
// icons. A title is shown as a label above the text.
func FormatDescription(title, description string) template.HTML {
	body := escapeText(description)

	if title = strings.TrimSpace(title); title != "" {
		body = fmt.Sprintf("<label>%s</label><br>%s<br>", html.EscapeString(title), body)
	}

	for _, t := range iconShortCodes {
		d, _ := genesys.Lookup(t)
		body = strings.ReplaceAll(body, "{"+d.ShortCode+"}", string(DieIcon(t)))
	}

	return template.HTML(body)
}

func escapeText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, "<br>")
}

// RollContext describes what was rolled when no description was given
type RollContext struct {
	Characteristic genesys.Characteristic
	SuperChar      bool
	// Skill is the skill name, empty for characteristic or simple checks
	Skill string
}

// DefaultSkillDescription is used for skill checks without user text
func DefaultSkillDescription(rc RollContext) string {
	switch {
	case rc.Skill != "" && rc.Characteristic.IsSet():
		return fmt.Sprintf("Rolling %s (%s)%s", rc.Skill, rc.Characteristic.Abbr(), superChar(rc.SuperChar))
	case rc.Skill != "":
		return fmt.Sprintf("Rolling %s", rc.Skill)
	case rc.Characteristic.IsSet():
		return fmt.Sprintf("Rolling %s", rc.Characteristic.Title())
	default:
		return "Simple check" + superChar(rc.SuperChar)
	}
}

// DefaultAttackDescription is used for attacks without user text
func DefaultAttackDescription(weapon string, rc RollContext) string {
	switch {
	case rc.Skill != "" && rc.Characteristic.IsSet():
		return fmt.Sprintf("Attacking with %s using %s (%s)%s",
			weapon, rc.Skill, rc.Characteristic.Abbr(), superChar(rc.SuperChar))
	case rc.Skill != "":
		return fmt.Sprintf("Attacking with %s using %s", weapon, rc.Skill)
	case rc.Characteristic.IsSet():
		return fmt.Sprintf("Attacking with %s using %s", weapon, rc.Characteristic.Title())
	default:
		return fmt.Sprintf("Attacking with %s", weapon)
	}
}

func superChar(on bool) string {
	if on {
		return " [super]"
	}
	return ""
}
