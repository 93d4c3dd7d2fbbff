package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/robertkrimen/otto"

	"github.com/matscript/matscript/wrapper"
)

// Compiled is a script that has been parsed, validated and evaluated
// inside its own VM, ready to have its entry point called.
type Compiled struct {
	sync.Mutex
	name  string
	src   string
	entry string
	vm    *VM
}

// Name returns the name this script was compiled with.
func (c *Compiled) Name() string {
	return c.name
}

// Entry returns the name of the function that Run calls.
func (c *Compiled) Entry() string {
	return c.entry
}

// Is returns true if this compiled script was built from the given
// source code.
func (c *Compiled) Is(name, code string) bool {
	return c.name == name && c.src == code
}

// Run calls the entry point of the script with the given arguments,
// returning the execution context, the returned value encoded as JSON
// and an error if the call failed or the script flagged the context.
func (c *Compiled) Run(args ...interface{}) (*wrapper.Context, []byte, error) {
	var ret otto.Value
	var err error

	ctx := wrapper.NewContext()
	func() {
		c.Lock()
		defer c.Unlock()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()

		// define the context and evaluate the entry point call
		c.vm.Set("ctx", ctx)
		ret, err = c.vm.Call(c.entry, nil, args...)
	}()

	if err != nil {
		return ctx, nil, err
	} else if ctx.IsError() {
		return ctx, nil, errors.New(ctx.Message())
	}

	obj, _ := ret.Export()
	raw, _ := json.Marshal(obj)

	return ctx, raw, nil
}
