package localserver

import "github.com/aura-studio/hello/greet"

// ServeOption is either an Option or a greet.Option.
type ServeOption any

type serveOptionBag struct {
	http  []Option
	greet []greet.Option
}

func (b *serveOptionBag) apply(opts ...ServeOption) {
	for _, opt := range opts {
		switch o := opt.(type) {
		case Option:
			b.http = append(b.http, o)
		case greet.Option:
			b.greet = append(b.greet, o)
		}
	}
}
