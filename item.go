package alfrusco

import "encoding/json"

// Arg is a script-filter argument: either a single string or a list of
// strings, serialized accordingly.
type Arg struct {
	one  string
	many []string
}

// MarshalJSON renders either the single value or the list, matching the
// two shapes Alfred accepts for an item's arg.
func (a Arg) MarshalJSON() ([]byte, error) {
	if a.many != nil {
		return json.Marshal(a.many)
	}
	return json.Marshal(a.one)
}

// Item is one row in Alfred's result list. Construct with NewItem and
// the chainable setters; zero-valued fields are omitted from the JSON.
type Item struct {
	Title        string               `json:"title"`
	Subtitle     string               `json:"subtitle,omitempty"`
	UID          string               `json:"uid,omitempty"`
	Argument     *Arg                 `json:"arg,omitempty"`
	Variables    map[string]string    `json:"variables,omitempty"`
	ItemIcon     *Icon                `json:"icon,omitempty"`
	IsValid      *bool                `json:"valid,omitempty"`
	Match        string               `json:"matches,omitempty"`
	Mods         map[string]*Modifier `json:"mods,omitempty"`
	Autocomplete string               `json:"autocomplete,omitempty"`
	QuicklookURL string               `json:"quicklookurl,omitempty"`
	ItemText     *Text                `json:"text,omitempty"`
}

// Text holds the two alternate texts of an item: Copy is what CMD-C
// copies, LargeType is what CMD-L displays in large type.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

func NewItem(title string) *Item {
	return &Item{Title: title}
}

func (it *Item) WithSubtitle(subtitle string) *Item {
	it.Subtitle = subtitle
	return it
}

func (it *Item) WithUID(uid string) *Item {
	it.UID = uid
	return it
}

// Arg sets a single-string argument.
func (it *Item) Arg(arg string) *Item {
	it.Argument = &Arg{one: arg}
	return it
}

// Args sets a list argument.
func (it *Item) Args(args ...string) *Item {
	many := args
	if many == nil {
		many = []string{}
	}
	it.Argument = &Arg{many: many}
	return it
}

// Var sets a workflow variable passed through with the item.
func (it *Item) Var(key, value string) *Item {
	if it.Variables == nil {
		it.Variables = map[string]string{}
	}
	it.Variables[key] = value
	return it
}

func (it *Item) Valid(valid bool) *Item {
	it.IsValid = &valid
	return it
}

func (it *Item) Icon(icon Icon) *Item {
	it.ItemIcon = &icon
	return it
}

// IconForFiletype shows the system icon for a file type UTI, e.g.
// "public.folder".
func (it *Item) IconForFiletype(uti string) *Item {
	it.ItemIcon = &Icon{Type: "filetype", Path: uti}
	return it
}

// IconFromImage shows the image at path.
func (it *Item) IconFromImage(path string) *Item {
	it.ItemIcon = &Icon{Path: path}
	return it
}

// Mod attaches a modifier-key variant, keyed by the modifier's combo.
func (it *Item) Mod(m *Modifier) *Item {
	if it.Mods == nil {
		it.Mods = map[string]*Modifier{}
	}
	it.Mods[m.keys] = m
	return it
}

func (it *Item) WithAutocomplete(autocomplete string) *Item {
	it.Autocomplete = autocomplete
	return it
}

// Matches overrides the text Alfred's own filtering runs against.
func (it *Item) Matches(matches string) *Item {
	it.Match = matches
	return it
}

func (it *Item) Quicklook(url string) *Item {
	it.QuicklookURL = url
	return it
}

func (it *Item) CopyText(text string) *Item {
	if it.ItemText == nil {
		it.ItemText = &Text{}
	}
	it.ItemText.Copy = text
	return it
}

func (it *Item) LargeTypeText(text string) *Item {
	if it.ItemText == nil {
		it.ItemText = &Text{}
	}
	it.ItemText.LargeType = text
	return it
}
