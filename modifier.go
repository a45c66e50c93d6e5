package alfrusco

import "strings"

// Key is one of the modifier keys Alfred recognizes in an item's mods.
type Key string

const (
	KeyCmd   Key = "cmd"
	KeyCtrl  Key = "ctrl"
	KeyAlt   Key = "alt"
	KeyShift Key = "shift"
	KeyFn    Key = "fn"
)

// Modifier is the variant of an item shown while a modifier key (or
// combination) is held down.
type Modifier struct {
	keys string

	Subtitle     string            `json:"subtitle"`
	Argument     *Arg              `json:"arg,omitempty"`
	ModIcon      *Icon             `json:"icon,omitempty"`
	Variables    map[string]string `json:"variables,omitempty"`
	Autocomplete string            `json:"autocomplete,omitempty"`
	IsValid      *bool             `json:"valid,omitempty"`
}

// NewModifier builds a modifier for a key or a combination of keys,
// e.g. NewModifier(KeyCmd, KeyShift).
func NewModifier(keys ...Key) *Modifier {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return &Modifier{keys: strings.Join(parts, "+")}
}

// Keys returns the combo string this modifier is registered under, e.g.
// "cmd" or "cmd+shift".
func (m *Modifier) Keys() string { return m.keys }

func (m *Modifier) WithSubtitle(subtitle string) *Modifier {
	m.Subtitle = subtitle
	return m
}

func (m *Modifier) Arg(arg string) *Modifier {
	m.Argument = &Arg{one: arg}
	return m
}

func (m *Modifier) Args(args ...string) *Modifier {
	many := args
	if many == nil {
		many = []string{}
	}
	m.Argument = &Arg{many: many}
	return m
}

func (m *Modifier) Var(key, value string) *Modifier {
	if m.Variables == nil {
		m.Variables = map[string]string{}
	}
	m.Variables[key] = value
	return m
}

func (m *Modifier) Icon(icon Icon) *Modifier {
	m.ModIcon = &icon
	return m
}

func (m *Modifier) WithAutocomplete(autocomplete string) *Modifier {
	m.Autocomplete = autocomplete
	return m
}

func (m *Modifier) Valid(valid bool) *Modifier {
	m.IsValid = &valid
	return m
}
