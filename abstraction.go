package subgame

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	allInLabel = "all-in"

	potPrefix   = "pot:"
	stackPrefix = "stack:"
	absPrefix   = "abs:"

	// Smallest bet the abstraction will produce for pot and stack fractions.
	minBetBB = 0.5
	// Pot fractions below this are raised to it.
	minPotFraction = 0.01
)

// ActionSpec is one concrete bet proposed by the action abstraction.
// Amount is expressed in big blinds.
type ActionSpec struct {
	Label  string
	Amount float64
}

// BlindSummary holds the blind levels of the hand.
type BlindSummary struct {
	Big float64
}

// GameStateSummary is the part of the opaque game state the solver reads.
// Missing fields are left at their zero values.
type GameStateSummary struct {
	Pot       float64
	Street    string
	Blinds    BlindSummary
	HoleCards []string
}

// ParseGameState decodes a serialized game state. Keys are matched exactly
// and unknown keys are ignored. A blob that is not an object, or whose pot,
// street or blinds have the wrong type, yields the zero summary. Hole cards
// are optional: a malformed hole_cards value only leaves them empty.
func ParseGameState(blob string) GameStateSummary {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return GameStateSummary{}
	}

	var summary GameStateSummary
	if !decodeField(fields, "pot", &summary.Pot) ||
		!decodeField(fields, "street", &summary.Street) ||
		!decodeBlinds(fields, &summary.Blinds) {
		return GameStateSummary{}
	}

	var cards []string
	if decodeField(fields, "hole_cards", &cards) {
		summary.HoleCards = cards
	}

	return summary
}

// decodeField decodes fields[key] into v. A missing key is not an error.
func decodeField(fields map[string]json.RawMessage, key string, v any) bool {
	raw, ok := fields[key]
	if !ok {
		return true
	}

	return json.Unmarshal(raw, v) == nil
}

func decodeBlinds(fields map[string]json.RawMessage, blinds *BlindSummary) bool {
	var nested map[string]json.RawMessage
	if !decodeField(fields, "blinds", &nested) {
		return false
	}

	return decodeField(nested, "big", &blinds.Big)
}

// BigBlind returns the big blind, treating anything below 1 chip as 1.
func (s GameStateSummary) BigBlind() float64 {
	return math.Max(s.Blinds.Big, 1.0)
}

// PotInBB returns the pot measured in big blinds, floored at 1.
func (s GameStateSummary) PotInBB() float64 {
	return math.Max(s.Pot/s.BigBlind(), 1.0)
}

// ParseActionSet translates raw bet-size tokens into concrete actions.
// Tokens that cannot be interpreted are dropped; the remaining actions
// keep the order of the input. An empty result means there is nothing
// to solve and the caller should treat the node as terminal.
func ParseActionSet(tokens []string, summary GameStateSummary, effectiveStackBB float64) []ActionSpec {
	if len(tokens) == 0 {
		return nil
	}

	potBB := summary.PotInBB()
	stackCap := math.Max(effectiveStackBB, 1.0)

	specs := make([]ActionSpec, 0, len(tokens))
	for _, token := range tokens {
		if spec, ok := parseActionToken(token, potBB, stackCap); ok {
			specs = append(specs, spec)
		}
	}

	return specs
}

func parseActionToken(token string, potBB, stackCap float64) (ActionSpec, bool) {
	if strings.EqualFold(token, allInLabel) {
		return ActionSpec{Label: allInLabel, Amount: stackCap}, true
	}

	if rest, ok := strings.CutPrefix(token, potPrefix); ok {
		fraction := math.Max(parseFloatOrZero(rest), minPotFraction)
		return ActionSpec{
			Label:  formatLabel("pot", fraction),
			Amount: clamp(fraction*potBB, minBetBB, stackCap),
		}, true
	}

	if rest, ok := strings.CutPrefix(token, stackPrefix); ok {
		fraction := clamp(parseFloatOrZero(rest), 0, 1)
		return ActionSpec{
			Label:  formatLabel("stack", fraction),
			Amount: math.Max(fraction*stackCap, minBetBB),
		}, true
	}

	if rest, ok := strings.CutPrefix(token, absPrefix); ok {
		value := math.Max(parseFloatOrZero(rest), 0)
		return ActionSpec{
			Label:  formatLabel("abs", value),
			Amount: math.Min(value, stackCap),
		}, true
	}

	// Bare numbers are absolute amounts in big blinds.
	if value, ok := parseFloat(token); ok && value > 0 {
		return ActionSpec{
			Label:  formatLabel("abs", value),
			Amount: math.Min(value, stackCap),
		}, true
	}

	return ActionSpec{}, false
}

func formatLabel(kind string, value float64) string {
	if math.IsInf(value, 1) {
		return kind + "-inf"
	}
	return fmt.Sprintf("%s-%.2f", kind, value)
}

// parseFloat reads a decimal number. Values too large for a float64 read
// as ±Inf, like "inf" itself, and are then bounded by the clamps applied
// to each token. NaN and hexadecimal floats are rejected.
func parseFloat(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

func parseFloatOrZero(s string) float64 {
	v, _ := parseFloat(s)
	return v
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
