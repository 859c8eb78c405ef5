// Package genesys holds the narrative dice definitions: result symbols,
// die types and their face tables.
package genesys

import "strings"

// Symbol is a single-character result code printed on a die face
type Symbol rune

// Result symbol codes
const (
	SymbolAdvantage Symbol = 'a'
	SymbolSuccess   Symbol = 's'
	SymbolTriumph   Symbol = 't'
	SymbolThreat    Symbol = 'h'
	SymbolFailure   Symbol = 'f'
	SymbolDespair   Symbol = 'd'
	SymbolBlank     Symbol = ' '
)

// Symbols lists the six canonical result symbols in tally order
var Symbols = []Symbol{
	SymbolAdvantage,
	SymbolSuccess,
	SymbolTriumph,
	SymbolThreat,
	SymbolFailure,
	SymbolDespair,
}

// DisplayOrder is the order symbols are shown in a compact summary
var DisplayOrder = []Symbol{
	SymbolTriumph,
	SymbolSuccess,
	SymbolAdvantage,
	SymbolDespair,
	SymbolFailure,
	SymbolThreat,
}

var symbolNames = map[Symbol]string{
	SymbolAdvantage: "advantage",
	SymbolSuccess:   "success",
	SymbolTriumph:   "triumph",
	SymbolThreat:    "threat",
	SymbolFailure:   "failure",
	SymbolDespair:   "despair",
	SymbolBlank:     "blank",
}

var symbolGlyphs = map[Symbol]string{
	SymbolTriumph:   "❂",
	SymbolSuccess:   "✷",
	SymbolAdvantage: "▲",
	SymbolDespair:   "⦻",
	SymbolFailure:   "⨯",
	SymbolThreat:    "⎊",
	SymbolBlank:     "□",
}

// String returns the symbol code as a one character string
func (s Symbol) String() string {
	return string(s)
}

// Name returns the long name of the symbol, or "" for unknown codes
func (s Symbol) Name() string {
	return symbolNames[s]
}

// Glyph returns the unicode glyph used when printing the symbol
func (s Symbol) Glyph() string {
	return symbolGlyphs[s]
}

// IsCanonical reports whether s is one of the six counted symbols
func (s Symbol) IsCanonical() bool {
	switch s {
	case SymbolAdvantage, SymbolSuccess, SymbolTriumph,
		SymbolThreat, SymbolFailure, SymbolDespair:
		return true
	}
	return false
}

// SymbolFromName resolves a long symbol name ("success") or a code ("s")
func SymbolFromName(name string) (Symbol, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 1 {
		s := Symbol(name[0])
		return s, s.IsCanonical()
	}
	for sym, n := range symbolNames {
		if n == name && sym != SymbolBlank {
			return sym, true
		}
	}
	return 0, false
}
