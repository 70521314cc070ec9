// Package js exposes css.Styler operations to scripts running in the goja
// JavaScript engine (pure Go ES5.1+ implementation).
//
// Operations are registered by name in a Registry and reached through a
// jQuery-like wrapper function, $l(selector), that scripts call to select
// elements:
//
//	$l("li.tab").addClass("seen").setTransition("opacity 1s");
//	if (!$l("#banner").inViewport()) { ... }
package js

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus"
)

// Runtime wraps a goja runtime with a console bound to the logger.
type Runtime struct {
	vm     *goja.Runtime
	log    *logrus.Entry
	mu     sync.Mutex
	errors []error
}

// NewRuntime creates a JavaScript runtime. A nil logger selects
// logrus.StandardLogger().
func NewRuntime(log logrus.FieldLogger) *Runtime {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Runtime{
		vm:  goja.New(),
		log: log.WithField("component", "js"),
	}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (goja.Value, error) {
	return r.run("<eval>", code)
}

// ExecuteScript runs the code of a script named src. Scripts are compiled in
// non-strict mode; a "use strict" directive opts in.
func (r *Runtime) ExecuteScript(code, src string) error {
	_, err := r.run(src, code)
	return err
}

func (r *Runtime) run(src, code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// goja's parser can panic on malformed input
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script panic in %s: %v", src, p)
			r.record(src, err)
		}
	}()

	program, err := goja.Compile(src, code, false)
	if err != nil {
		r.record(src, err)
		return nil, err
	}
	result, err = r.vm.RunProgram(program)
	if err != nil {
		r.record(src, err)
	}
	return result, err
}

func (r *Runtime) record(src string, err error) {
	r.errors = append(r.errors, err)
	r.log.WithField("script", src).WithError(err).Warn("script failed")
}

// Errors returns all errors that occurred during execution.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error{}, r.errors...)
}

// setupConsole installs console.log/info/warn/error/debug, routed to the
// logger.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	levels := map[string]logrus.Level{
		"log":   logrus.InfoLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"debug": logrus.DebugLevel,
	}
	for name, level := range levels {
		level := level
		console.Set(name, func(call goja.FunctionCall) goja.Value {
			r.log.Log(level, formatArgs(call.Arguments))
			return goja.Undefined()
		})
	}
	r.vm.Set("console", console)
}

// formatArgs joins console arguments with spaces.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = formatValue(arg)
	}
	return strings.Join(parts, " ")
}

// formatValue formats a single value for output.
func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.String()
}
