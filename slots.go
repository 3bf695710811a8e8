package ttfslots

import "image/color"

// A line of text to be rasterized and cached under the given slot id.
type Text struct {
	ID int
	Text string
	Family string
	Size int
	Color color.Color
}

// Text color used by the demo.
var TextColor color.Color = color.RGBA{ 0, 0, 0xaf, 0xff }

// The texts rasterized at startup. Their ids match scene.DefaultSlots.
var DefaultTexts = []Text {
	{ ID: 0, Text: "Hello there", Family: "B612 Mono", Size: 42, Color: TextColor },
	{ ID: 1, Text: "What's up!", Family: "VT323", Size: 30, Color: TextColor },
	{ ID: 2, Text: "SUP!", Family: "Share Tech Mono", Size: 14, Color: TextColor },
}
