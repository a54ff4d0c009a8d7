package commands

import (
	"context"
	"sync"

	"github.com/doeshing/ha-assist/internal/app"
)

// Env is shared by every command. The container is built on first use so that
// commands like init and version work before a config exists.
type Env struct {
	Options app.Options

	once      sync.Once
	container *app.Container
	err       error
}

// Container returns the wired container, building it once.
func (e *Env) Container(ctx context.Context) (*app.Container, error) {
	e.once.Do(func() {
		e.container, e.err = app.BuildContainer(ctx, e.Options)
	})
	return e.container, e.err
}

// Close releases the container if it was built.
func (e *Env) Close() error {
	if e.container == nil {
		return nil
	}
	return e.container.Close()
}
