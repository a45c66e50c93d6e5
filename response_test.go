package alfrusco

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalResponse(t *testing.T, r *Response) string {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

func TestEmptyResponse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"items":[]}`, marshalResponse(t, NewResponse()))
}

func TestResponseRerun(t *testing.T) {
	t.Parallel()
	r := NewResponse().Rerun(500 * time.Millisecond)
	assert.Equal(t, `{"rerun":0.5,"items":[]}`, marshalResponse(t, r))
}

func TestResponseCache(t *testing.T) {
	t.Parallel()
	r := NewResponse().Cache(5*time.Minute, true)
	assert.Equal(t, `{"cache":{"seconds":300,"loosereload":true},"items":[]}`, marshalResponse(t, r))
}

func TestResponseSkipKnowledge(t *testing.T) {
	t.Parallel()
	r := NewResponse().SkipKnowledge(true)
	assert.Equal(t, `{"skipknowledge":true,"items":[]}`, marshalResponse(t, r))
}

func TestResponseSingleItem(t *testing.T) {
	t.Parallel()
	r := NewResponse().AppendItems(NewItem("Desktop").
		WithSubtitle("~/Desktop").
		WithUID("desktop").
		Arg("~/Desktop").
		Valid(true).
		IconForFiletype("public.folder"))
	want := `{"items":[{"title":"Desktop","subtitle":"~/Desktop","uid":"desktop",` +
		`"arg":"~/Desktop","icon":{"type":"filetype","path":"public.folder"},"valid":true}]}`
	assert.Equal(t, want, marshalResponse(t, r))
}

func TestResponseItemVariablesAndText(t *testing.T) {
	t.Parallel()
	r := NewResponse().AppendItems(NewItem("Copy me").
		Var("ACTION", "copy").
		CopyText("copied value").
		LargeTypeText("LARGE").
		Quicklook("https://example.com"))
	want := `{"items":[{"title":"Copy me","variables":{"ACTION":"copy"},` +
		`"quicklookurl":"https://example.com","text":{"copy":"copied value","largetype":"LARGE"}}]}`
	assert.Equal(t, want, marshalResponse(t, r))
}

func TestResponseItemArgsList(t *testing.T) {
	t.Parallel()
	r := NewResponse().AppendItems(NewItem("multi").Args("one", "two"))
	assert.Equal(t, `{"items":[{"title":"multi","arg":["one","two"]}]}`, marshalResponse(t, r))
}

func TestResponseItemModifier(t *testing.T) {
	t.Parallel()
	mod := NewModifier(KeyCmd).
		WithSubtitle("Open in browser").
		Arg("open").
		Valid(true)
	r := NewResponse().AppendItems(NewItem("Example").Mod(mod))
	want := `{"items":[{"title":"Example","mods":{"cmd":{"subtitle":"Open in browser",` +
		`"arg":"open","valid":true}}}]}`
	assert.Equal(t, want, marshalResponse(t, r))
}

func TestResponsePrependItems(t *testing.T) {
	t.Parallel()
	r := NewResponse().AppendItems(NewItem("second"))
	r.PrependItems(NewItem("first"))
	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}

func TestResponseWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, NewResponse().AppendItems(NewItem("x")).Write(&buf))
	assert.Equal(t, `{"items":[{"title":"x"}]}`, buf.String())
}
