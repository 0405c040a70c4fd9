package server

import (
	"fmt"

	"github.com/aura-studio/hello/greet"
	"github.com/aura-studio/hello/localserver"
)

// Serve starts the handler in the configured mode and blocks.
func Serve(opts ...Option) error {
	options := NewOptions(opts...)

	switch options.Lambda {
	case "", ModeLambda:
		greet.Serve(options.Greet...)
		return nil
	case ModeHTTP:
		serveOpts := make([]localserver.ServeOption, 0, len(options.Http)+len(options.Greet))
		for _, o := range options.Http {
			serveOpts = append(serveOpts, o)
		}
		for _, o := range options.Greet {
			serveOpts = append(serveOpts, o)
		}
		return localserver.Serve(serveOpts...)
	default:
		return fmt.Errorf("server: unrecognized mode: %q", options.Lambda)
	}
}

func Close() error {
	return localserver.Close()
}
