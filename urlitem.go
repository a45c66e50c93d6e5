package alfrusco

import "fmt"

// URLItem is a convenience builder for items representing a link. It
// expands into a full Item whose modifier variants copy the link as
// Markdown (cmd) or rich text (alt), with optional short and long title
// variants on the shift and ctrl combos.
type URLItem struct {
	title        string
	url          string
	shortTitle   string
	longTitle    string
	displayTitle string
	copyText     string
	icon         *Icon
}

func NewURLItem(title, url string) *URLItem {
	return &URLItem{title: title, url: url}
}

func (u *URLItem) ShortTitle(title string) *URLItem {
	u.shortTitle = title
	return u
}

func (u *URLItem) LongTitle(title string) *URLItem {
	u.longTitle = title
	return u
}

// DisplayTitle overrides the text shown in the result row without
// changing what the copy modifiers use.
func (u *URLItem) DisplayTitle(title string) *URLItem {
	u.displayTitle = title
	return u
}

func (u *URLItem) CopyText(text string) *URLItem {
	u.copyText = text
	return u
}

func (u *URLItem) IconForFiletype(uti string) *URLItem {
	u.icon = &Icon{Type: "filetype", Path: uti}
	return u
}

func (u *URLItem) IconFromImage(path string) *URLItem {
	u.icon = &Icon{Path: path}
	return u
}

// Item expands the URL item into a displayable Item.
func (u *URLItem) Item() *Item {
	display := u.displayTitle
	if display == "" {
		display = u.title
	}

	it := NewItem(display).
		WithSubtitle(u.url).
		WithUID(u.url).
		Arg(u.url).
		CopyText(u.url).
		Valid(true).
		Mod(copyLinkModifier(NewModifier(KeyCmd), commandMarkdown, u.title, u.url)).
		Mod(copyLinkModifier(NewModifier(KeyAlt), commandRichText, u.title, u.url))

	if u.icon != nil {
		it.Icon(*u.icon)
	}
	if u.shortTitle != "" {
		it.Mod(copyLinkModifier(NewModifier(KeyCmd, KeyShift), commandMarkdown, u.shortTitle, u.url).Valid(true))
		it.Mod(copyLinkModifier(NewModifier(KeyAlt, KeyShift), commandRichText, u.shortTitle, u.url).Valid(true))
	}
	if u.longTitle != "" {
		it.Mod(copyLinkModifier(NewModifier(KeyCmd, KeyCtrl), commandMarkdown, u.longTitle, u.url).Valid(true))
		it.Mod(copyLinkModifier(NewModifier(KeyAlt, KeyCtrl), commandRichText, u.longTitle, u.url).Valid(true))
	}
	if u.copyText != "" {
		it.CopyText(u.copyText)
	}
	return it
}

// copyLinkModifier wires a modifier to re-invoke the workflow in
// clipboard mode via the ALFRUSCO_COMMAND variables.
func copyLinkModifier(m *Modifier, command, title, url string) *Modifier {
	kind := "Markdown"
	if command == commandRichText {
		kind = "Rich Text"
	}
	return m.
		WithSubtitle(fmt.Sprintf("Copy %s Link '%s'", kind, title)).
		Arg("run").
		Var(envCommand, command).
		Var(envTitle, title).
		Var(envURL, url)
}
