package localserver

import (
	"context"
	"net/http"
	"time"
)

var srv *http.Server

func Serve(opts ...ServeOption) error {
	e := NewEngine(opts...)
	srv = &http.Server{
		Addr:    e.Address,
		Handler: e,
	}

	e.log.Infof("Emulating %s:%s on %s", e.FunctionName, e.FunctionVersion, e.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
