package presentation

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("chat").Funcs(template.FuncMap{
	"icon": func(denomination string) template.HTML {
		return DieIcon(genesys.DieType(denomination))
	},
	"pool": PoolIcons,
	"join": func(labels []string) string {
		return strings.Join(labels, " | ")
	},
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// MessageKind tells skill checks and attacks apart
type MessageKind string

// Message kinds
const (
	KindSkill  MessageKind = "skill"
	KindAttack MessageKind = "attack"
)

// Quality is a weapon quality such as Pierce 2
type Quality struct {
	Name        string `json:"name" yaml:"name"`
	Rating      int    `json:"rating,omitempty" yaml:"rating,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Weapon is the attack metadata shown with an attack roll
type Weapon struct {
	Name                 string                 `json:"name"`
	BaseDamage           int                    `json:"baseDamage"`
	DamageCharacteristic genesys.Characteristic `json:"damageCharacteristic,omitempty"`
	Critical             int                    `json:"critical"`
	Qualities            []Quality              `json:"qualities,omitempty"`
}

// Damage is the damage dealt by an attack before soak
type Damage struct {
	Total   int    `json:"total"`
	Formula string `json:"formula"`
}

// ComputeDamage adds the damage characteristic and any net success to the
// weapon's base damage. characteristicValue is the attacker's rating in the
// weapon's damage characteristic.
func ComputeDamage(w Weapon, characteristicValue int, tally aggregator.ResultTally) Damage {
	total := w.BaseDamage
	formula := fmt.Sprintf("%d", w.BaseDamage)

	if w.DamageCharacteristic.IsSet() {
		total += characteristicValue
		formula = fmt.Sprintf("%s + %s", w.DamageCharacteristic.Abbr(), formula)
	}
	if tally.NetSuccess > 0 {
		total += tally.NetSuccess
	}

	return Damage{Total: total, Formula: formula}
}

// ChatMessage is the artifact posted to the message feed
type ChatMessage struct {
	Kind        MessageKind            `json:"kind"`
	Speaker     string                 `json:"speaker,omitempty"`
	Description string                 `json:"description,omitempty"`
	Content     string                 `json:"content"`
	Tally       aggregator.ResultTally `json:"tally"`
	Percentile  []int                  `json:"percentile,omitempty"`
	Damage      *Damage                `json:"damage,omitempty"`
}

// SkillInput is everything needed to present a skill check
type SkillInput struct {
	Speaker     string
	Pool        string
	Description template.HTML
	Tally       aggregator.ResultTally
	Percentile  []int
}

// AttackInput is everything needed to present an attack
type AttackInput struct {
	Speaker             string
	Pool                string
	Description         template.HTML
	Tally               aggregator.ResultTally
	Percentile          []int
	Weapon              Weapon
	CharacteristicValue int
	ShowDamageOnFailure bool
}

// RenderSkill renders a skill check message
func RenderSkill(in SkillInput) (*ChatMessage, error) {
	content, err := render("skill", in)
	if err != nil {
		return nil, err
	}

	return &ChatMessage{
		Kind:        KindSkill,
		Speaker:     in.Speaker,
		Description: string(in.Description),
		Content:     content,
		Tally:       in.Tally,
		Percentile:  in.Percentile,
	}, nil
}

// RenderAttack renders an attack message including damage
func RenderAttack(in AttackInput) (*ChatMessage, error) {
	if in.Weapon.Name == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}

	damage := ComputeDamage(in.Weapon, in.CharacteristicValue, in.Tally)
	content, err := render("attack", struct {
		AttackInput
		TotalDamage   int
		DamageFormula string
		Critical      int
		Qualities     []Quality
	}{
		AttackInput:   in,
		TotalDamage:   damage.Total,
		DamageFormula: damage.Formula,
		Critical:      in.Weapon.Critical,
		Qualities:     in.Weapon.Qualities,
	})
	if err != nil {
		return nil, err
	}

	return &ChatMessage{
		Kind:        KindAttack,
		Speaker:     in.Speaker,
		Description: string(in.Description),
		Content:     content,
		Tally:       in.Tally,
		Percentile:  in.Percentile,
		Damage:      &damage,
	}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s message", name)
	}
	return strings.TrimSpace(buf.String()), nil
}
