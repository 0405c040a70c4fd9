// Package localserver runs the handler behind a plain HTTP listener so it
// can be exercised without the Lambda runtime. Every request is one
// emulated invocation.
package localserver

import (
	"github.com/aura-studio/hello/greet"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Engine struct {
	*Options
	*gin.Engine
	greet *greet.Engine
	log   *logrus.Entry
}

// NewEngine panics if the greet log level or format is invalid.
func NewEngine(opts ...ServeOption) *Engine {
	bag := &serveOptionBag{}
	bag.apply(opts...)

	options := NewOptions(bag.http...)
	if !options.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// The handler's logger, from the greet log settings, is shared with the
	// emulator unless the emulator has its own.
	shared, err := greet.NewOptions(bag.greet...).BuildLogger()
	if err != nil {
		panic(err)
	}
	logger := options.Logger
	if logger == nil {
		logger = shared
	}
	greetOpts := append([]greet.Option{}, bag.greet...)
	greetOpts = append(greetOpts, greet.WithLogger(shared))

	e := &Engine{
		Options: options,
		Engine:  gin.New(),
		greet:   greet.NewEngine(greetOpts...),
		log:     logger.WithField("scope", "hello.localserver"),
	}

	e.Use(e.AccessLog, gin.Recovery())
	e.InstallHandlers()

	return e
}
