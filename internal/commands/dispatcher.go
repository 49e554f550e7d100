// internal/commands/dispatcher.go
package commands

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Context carries one inbound message through a handler invocation.
type Context struct {
	ChannelID string
	AuthorID  string
	// Roles is the invoker's guild role set, nil outside a guild.
	Roles []string
	// Content is the raw message text including the prefix; handlers
	// re-tokenize it in whichever mode they need.
	Content string
}

// HandlerFunc handles one command invocation. A returned error means
// the record store failed; argument problems are handled inside via
// usage replies and return nil.
type HandlerFunc func(ctx *Context) error

// Dispatcher maps command names to handlers. The mapping is built once
// at startup and never changes afterwards.
type Dispatcher struct {
	prefix   string
	handlers map[string]HandlerFunc
	limiter  *RateLimiter
}

func NewDispatcher(prefix string, limiter *RateLimiter) *Dispatcher {
	return &Dispatcher{
		prefix:   prefix,
		handlers: make(map[string]HandlerFunc),
		limiter:  limiter,
	}
}

func (d *Dispatcher) Register(name string, handler HandlerFunc) {
	d.handlers[name] = handler
}

// Dispatch routes one message to its handler. Messages without the
// prefix, empty commands and unknown command names are ignored without
// a reply.
func (d *Dispatcher) Dispatch(ctx *Context) {
	if !strings.HasPrefix(ctx.Content, d.prefix) {
		return
	}

	tokens := SplitSimple(ctx.Content, d.prefix)
	if len(tokens) == 0 {
		return
	}

	name := tokens[0]
	handler, ok := d.handlers[name]
	if !ok {
		return
	}

	if d.limiter != nil && !d.limiter.Allow(ctx.AuthorID) {
		logrus.WithFields(logrus.Fields{
			"command": name,
			"user":    ctx.AuthorID,
		}).Warn("Command dropped by rate limiter")
		return
	}

	start := time.Now()
	err := handler(ctx)
	fields := logrus.Fields{
		"command":  name,
		"user":     ctx.AuthorID,
		"channel":  ctx.ChannelID,
		"duration": time.Since(start).Milliseconds(),
	}

	if err != nil {
		logrus.WithError(err).WithFields(fields).Error("Command failed")
		return
	}

	logrus.WithFields(fields).Info("Command handled")
}
