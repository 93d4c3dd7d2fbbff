package wrapper

import (
	"fmt"
	"sync"
)

// Context carries the error state of a single script run. The host
// binds a fresh instance to the ctx global before every execution so
// a script can abort with a message the caller gets back as an error.
type Context struct {
	sync.RWMutex
	message string
	failed  bool
}

// NewContext creates a new *Context object.
func NewContext() *Context {
	return &Context{}
}

// Error sets this context to an error state with the given message.
func (ctx *Context) Error(msg string) {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = msg
	ctx.failed = true
}

// Errorf sets this context to an error state with a formatted message.
func (ctx *Context) Errorf(format string, args ...interface{}) {
	ctx.Error(fmt.Sprintf(format, args...))
}

// IsError returns true if an error has been set in this context.
func (ctx *Context) IsError() bool {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.failed
}

// Message returns the error message for this context.
func (ctx *Context) Message() string {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.message
}

// Reset resets this context instance to a neutral state so it can be
// bound to another run.
func (ctx *Context) Reset() {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = ""
	ctx.failed = false
}
