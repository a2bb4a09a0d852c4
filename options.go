package deckview

import "context"

// options holds decode configuration. The Extractor copies it on every
// chained call, so configured extractors are safe to share.
type options struct {
	// slides selects 1-indexed slide numbers; empty means all.
	slides []int

	includeNotes bool

	// concurrency caps parallel slide extraction; 0 means automatic.
	concurrency int

	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

func (o options) clone() options {
	c := o
	c.slides = append([]int(nil), o.slides...)
	return c
}

// wantSlide reports whether the 1-indexed slide number is selected.
func (o options) wantSlide(num int) bool {
	if len(o.slides) == 0 {
		return true
	}
	for _, s := range o.slides {
		if s == num {
			return true
		}
	}
	return false
}
