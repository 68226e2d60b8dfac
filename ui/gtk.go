package ui

import (
	"fmt"

	"github.com/gotk3/gotk3/glib"
)

// onMain runs f on the GTK main loop and waits for it to return.
func onMain(f func() error) error {
	errc := make(chan error, 1)
	glib.IdleAdd(func() {
		defer func() {
			if r := recover(); r != nil {
				errc <- fmt.Errorf("gtk: %v", r)
			}
		}()
		errc <- f()
	})
	return <-errc
}

func mustT[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
