package font

// Thin returns the one-row face used for zone labels.
func Thin() Face { return thin }

// Thick returns the five-row block-digit face used for the time string.
// It covers '0'-'9', ':' and space; anything else renders blank.
func Thick() Face { return thick }

var thin = &textFace{name: "thin"}

var thick = &cellFace{
	name:   "thick",
	height: 5,
	blank:  []string{"   ", "   ", "   ", "   ", "   "},
	glyphs: map[rune][]string{
		'0': {
			"███",
			"█ █",
			"█ █",
			"█ █",
			"███",
		},
		'1': {
			"  █",
			"  █",
			"  █",
			"  █",
			"  █",
		},
		'2': {
			"███",
			"  █",
			"███",
			"█  ",
			"███",
		},
		'3': {
			"███",
			"  █",
			"███",
			"  █",
			"███",
		},
		'4': {
			"█ █",
			"█ █",
			"███",
			"  █",
			"  █",
		},
		'5': {
			"███",
			"█  ",
			"███",
			"  █",
			"███",
		},
		'6': {
			"███",
			"█  ",
			"███",
			"█ █",
			"███",
		},
		'7': {
			"███",
			"  █",
			"  █",
			"  █",
			"  █",
		},
		'8': {
			"███",
			"█ █",
			"███",
			"█ █",
			"███",
		},
		'9': {
			"███",
			"█ █",
			"███",
			"  █",
			"███",
		},
		':': {
			" ",
			"█",
			" ",
			"█",
			" ",
		},
		' ': {
			" ",
			" ",
			" ",
			" ",
			" ",
		},
	},
}
