// Package lifecycle exposes the note event stream as a lifecycle.Source so it
// can be supervised next to other components.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/memotori/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	accept map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource wraps a channel returned by core.Service.Watch.
// When types is non-empty only those event types are forwarded.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var accept map[core.EventType]bool
	if len(types) > 0 {
		accept = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			accept[t] = true
		}
	}
	return &noteSource{
		events: events,
		accept: accept,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes,
// then closes the output channel.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.accept != nil && !s.accept[e.Type] {
					continue
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
