package ui

// NamedColor is a preset accent color for the picker.
type NamedColor struct {
	Name string
	Hex  string
}

// AccentPresets is the picker's built-in list. The picker also accepts
// a literal #rrggbb value typed into the filter.
var AccentPresets = []NamedColor{
	{"Sky", "#4cc9f0"},
	{"Azure", "#48bfe3"},
	{"Mint", "#2ec4b6"},
	{"Sea Green", "#57cc99"},
	{"Lime", "#9ef01a"},
	{"Gold", "#ffd60a"},
	{"Amber", "#ffb703"},
	{"Peach", "#ff9770"},
	{"Coral", "#ff7b5c"},
	{"Salmon", "#fa8072"},
	{"Crimson", "#e63946"},
	{"Rose", "#ff5d8f"},
	{"Flamingo", "#f28fad"},
	{"Orchid", "#c77dff"},
	{"Violet", "#8338ec"},
	{"Lavender", "#b8b8ff"},
	{"Indigo", "#5e60ce"},
	{"Cobalt", "#3a86ff"},
	{"Teal", "#0fa3b1"},
	{"Moss", "#80b918"},
}
