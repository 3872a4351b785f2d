// Package prompt builds the three-layer prompts described in §4.10 and the
// ChoiceSpec contract of §4.4/§6 that every handler hands to a Participant.
package prompt

import (
	"strconv"

	"werewolf-engine/internal/domain"
)

// ChoiceKind is the shape of answer a ChoiceSpec accepts (§6).
type ChoiceKind int

const (
	ChoiceKindUnknown ChoiceKind = iota
	ChoiceKindSeat
	ChoiceKindAction
	ChoiceKindBoolean
	ChoiceKindText
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceKindSeat:
		return "seat"
	case ChoiceKindAction:
		return "action"
	case ChoiceKindBoolean:
		return "boolean"
	case ChoiceKindText:
		return "text"
	default:
		return "unknown"
	}
}

// Option is one valid answer (§6: "{value, display, seat_hint?}").
type Option struct {
	Value     string
	Display   string
	SeatHint  *domain.Seat
}

// ChoiceSpec declares exactly what answers a decision accepts (§4.4, §6).
// For Seat/Action kinds the parser requires an exact Value match; for Text,
// any non-empty string is accepted and an empty result triggers a retry.
type ChoiceSpec struct {
	Kind      ChoiceKind
	Prompt    string
	Options   []Option
	AllowNone bool
}

// SeatOption builds the common case of "this living seat is a valid answer".
func SeatOption(seat domain.Seat, display string) Option {
	s := seat
	return Option{Value: seatValue(seat), Display: display, SeatHint: &s}
}

func seatValue(seat domain.Seat) string {
	return "seat:" + strconv.Itoa(int(seat))
}

// NoneValue is the sentinel accepted when AllowNone is true (§6: "skip"/"none").
const NoneValue = "none"

// SeatChoicesFromSeats builds a seat-kind ChoiceSpec over the given seats,
// labeling each with its display string from names (falling back to a seat
// number when names is nil or short).
func SeatChoicesFromSeats(promptText string, seats []domain.Seat, names map[domain.Seat]string, allowNone bool) ChoiceSpec {
	opts := make([]Option, 0, len(seats))
	for _, s := range seats {
		display := names[s]
		if display == "" {
			display = "seat " + strconv.Itoa(int(s))
		}
		opts = append(opts, SeatOption(s, display))
	}
	return ChoiceSpec{Kind: ChoiceKindSeat, Prompt: promptText, Options: opts, AllowNone: allowNone}
}

// ParseSeat resolves a returned choice value back to a seat, or ok=false if
// value is the none sentinel or doesn't match any option.
func ParseSeat(spec ChoiceSpec, value string) (domain.Seat, bool) {
	if value == NoneValue {
		return 0, false
	}
	for _, opt := range spec.Options {
		if opt.Value == value && opt.SeatHint != nil {
			return *opt.SeatHint, true
		}
	}
	return 0, false
}
