package mock

import (
	"context"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of kosdex.URLFrontier.
type URLFrontier struct {
	PushFn func(link kosdex.DiscoveredLink) bool
	PopFn  func() (kosdex.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link kosdex.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (kosdex.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ kosdex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of kosdex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
