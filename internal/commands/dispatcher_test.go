// internal/commands/dispatcher_test.go
package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestDispatchRoutesToHandler(t *testing.T) {
	d := NewDispatcher("~", nil)

	calls := 0
	d.Register("getpoints", func(ctx *Context) error {
		calls++
		return nil
	})

	d.Dispatch(&Context{AuthorID: "100", Content: "~getpoints"})
	assert.Equal(t, 1, calls)
}

func TestDispatchIgnoresUnknownCommand(t *testing.T) {
	d := NewDispatcher("~", nil)

	calls := 0
	d.Register("getpoints", func(ctx *Context) error {
		calls++
		return nil
	})

	d.Dispatch(&Context{AuthorID: "100", Content: "~nosuchcommand"})
	assert.Zero(t, calls)
}

func TestDispatchIgnoresMessagesWithoutPrefix(t *testing.T) {
	d := NewDispatcher("~", nil)

	calls := 0
	d.Register("getpoints", func(ctx *Context) error {
		calls++
		return nil
	})

	d.Dispatch(&Context{AuthorID: "100", Content: "getpoints"})
	assert.Zero(t, calls)
}

func TestDispatchIgnoresEmptyCommand(t *testing.T) {
	d := NewDispatcher("~", nil)

	calls := 0
	d.Register("getpoints", func(ctx *Context) error {
		calls++
		return nil
	})

	d.Dispatch(&Context{AuthorID: "100", Content: "~"})
	d.Dispatch(&Context{AuthorID: "100", Content: "~   "})
	assert.Zero(t, calls)
}

func TestDispatchDropsRateLimitedCommands(t *testing.T) {
	limiter := NewRateLimiter(rate.Every(time.Minute), 1)
	d := NewDispatcher("~", limiter)

	calls := 0
	d.Register("store", func(ctx *Context) error {
		calls++
		return nil
	})

	d.Dispatch(&Context{AuthorID: "100", Content: "~store"})
	d.Dispatch(&Context{AuthorID: "100", Content: "~store"})
	assert.Equal(t, 1, calls)
}
