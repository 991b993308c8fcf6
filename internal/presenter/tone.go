package presenter

import (
	"github.com/fatih/color"
)

// Tone is the color tag a report is displayed in
type Tone int

const (
	ToneDefault Tone = iota
	ToneBrightYellow
	ToneBrightBlue
	ToneDimmed
	ToneBrightCyan
	ToneBrightGreen
)

func (t Tone) String() string {
	switch t {
	case ToneBrightYellow:
		return "bright_yellow"
	case ToneBrightBlue:
		return "bright_blue"
	case ToneDimmed:
		return "dimmed"
	case ToneBrightCyan:
		return "bright_cyan"
	case ToneBrightGreen:
		return "bright_green"
	default:
		return "default"
	}
}

func (t Tone) attribute() (color.Attribute, bool) {
	switch t {
	case ToneBrightYellow:
		return color.FgHiYellow, true
	case ToneBrightBlue:
		return color.FgHiBlue, true
	case ToneDimmed:
		return color.Faint, true
	case ToneBrightCyan:
		return color.FgHiCyan, true
	case ToneBrightGreen:
		return color.FgHiGreen, true
	default:
		return 0, false
	}
}

// Paint wraps text in the tone's ANSI sequence.
// Output is plain when the tone is ToneDefault or color.NoColor is set.
func (t Tone) Paint(text string) string {
	attr, ok := t.attribute()
	if !ok {
		return text
	}
	return color.New(attr).Sprint(text)
}
