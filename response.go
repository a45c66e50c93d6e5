package alfrusco

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Response is the complete script-filter document: the items Alfred
// displays plus optional settings controlling re-runs, result caching,
// and Alfred's learned ordering.
type Response struct {
	rerun         time.Duration
	cache         *cacheSettings
	skipKnowledge *bool
	items         []*Item
}

type cacheSettings struct {
	seconds     time.Duration
	looseReload bool
}

func NewResponse() *Response {
	return &Response{}
}

// Rerun asks Alfred to re-run the script filter after the given interval.
func (r *Response) Rerun(d time.Duration) *Response {
	r.rerun = d
	return r
}

// Cache enables Alfred 5.5+ result caching for the given duration. With
// looseReload, Alfred shows the stale results while refreshing.
func (r *Response) Cache(d time.Duration, looseReload bool) *Response {
	r.cache = &cacheSettings{seconds: d, looseReload: looseReload}
	return r
}

// SkipKnowledge stops Alfred from reordering these results based on the
// user's previous selections.
func (r *Response) SkipKnowledge(skip bool) *Response {
	r.skipKnowledge = &skip
	return r
}

func (r *Response) AppendItems(items ...*Item) *Response {
	r.items = append(r.items, items...)
	return r
}

func (r *Response) PrependItems(items ...*Item) *Response {
	r.items = append(items, r.items...)
	return r
}

// Items returns the current result rows in display order.
func (r *Response) Items() []*Item {
	return r.items
}

// MarshalJSON serializes the document in the shape Alfred expects:
// durations become float seconds, and items is always present, even
// when empty.
func (r *Response) MarshalJSON() ([]byte, error) {
	type cacheJSON struct {
		Seconds     float64 `json:"seconds"`
		LooseReload bool    `json:"loosereload"`
	}
	aux := struct {
		Rerun         float64    `json:"rerun,omitempty"`
		Cache         *cacheJSON `json:"cache,omitempty"`
		SkipKnowledge *bool      `json:"skipknowledge,omitempty"`
		Items         []*Item    `json:"items"`
	}{
		Rerun:         r.rerun.Seconds(),
		SkipKnowledge: r.skipKnowledge,
		Items:         r.items,
	}
	if r.cache != nil {
		aux.Cache = &cacheJSON{
			Seconds:     r.cache.seconds.Seconds(),
			LooseReload: r.cache.looseReload,
		}
	}
	if aux.Items == nil {
		aux.Items = []*Item{}
	}
	return json.Marshal(aux)
}

// Write serializes the response to w.
func (r *Response) Write(w io.Writer) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
