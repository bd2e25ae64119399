//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/cefgo/cefstring"
	"github.com/obinnaokechukwu/cefgo/internal/bindings"
	"github.com/obinnaokechukwu/cefgo/refcount"
)

// CommandLine creates and parses command lines (cef_command_line_t).
// Arguments with "--", "-" and, on Windows, "/" prefixes are switches.
// Switches precede plain arguments, may carry a value after "=", and are
// matched case-insensitively. A "--" argument ends switch parsing.
//
// A CommandLine can be used before CEF is initialized. Methods on a closed
// CommandLine return zero values.
type CommandLine struct {
	ref refcount.Ref[cefCommandLine]
}

// NewCommandLine returns an empty command line.
func NewCommandLine() (*CommandLine, error) {
	p := bindings.CommandLineCreate()
	if p == nil {
		return nil, ErrNotLoaded
	}
	return &CommandLine{ref: refcount.FromPtr((*cefCommandLine)(p))}, nil
}

// GlobalCommandLine returns the read-only command line of the current
// process. It is available once CEF has been initialized.
func GlobalCommandLine() (*CommandLine, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	p := bindings.CommandLineGetGlobal()
	if p == nil {
		return nil, ErrNoCommandLine
	}
	return &CommandLine{ref: refcount.FromPtr((*cefCommandLine)(p))}, nil
}

func (c *CommandLine) cl() *cefCommandLine {
	if c == nil {
		return nil
	}
	return c.ref.Ptr()
}

// IsValid reports whether the command line may be used.
func (c *CommandLine) IsValid() bool {
	p := c.cl()
	return p != nil && p.IsValid()
}

// IsReadOnly reports whether modifications are ignored. The global command
// line and the one passed to App callbacks are read-only.
func (c *CommandLine) IsReadOnly() bool {
	p := c.cl()
	return p == nil || p.IsReadOnly()
}

// Copy returns a writable copy.
func (c *CommandLine) Copy() *CommandLine {
	p := c.cl()
	if p == nil {
		return nil
	}
	r := p.Copy()
	if r.IsNil() {
		return nil
	}
	return &CommandLine{ref: r}
}

// InitFromArgv replaces the contents with argv, whose first element is the
// program. CEF supports this on non-Windows platforms only.
func (c *CommandLine) InitFromArgv(argv []string) {
	p := c.cl()
	if p == nil || len(argv) == 0 {
		return
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	ptrs := make([]*byte, len(argv))
	for i, a := range argv {
		b := append([]byte(a), 0)
		pinner.Pin(&b[0])
		ptrs[i] = &b[0]
	}
	pinner.Pin(&ptrs[0])
	p.InitFromArgv(int32(len(argv)), unsafe.Pointer(&ptrs[0]))
}

// InitFromString replaces the contents by parsing s. CEF supports this on
// Windows only.
func (c *CommandLine) InitFromString(s string) {
	if p := c.cl(); p != nil {
		p.InitFromString(s)
	}
}

// Reset removes all switches and arguments but keeps the program.
func (c *CommandLine) Reset() {
	if p := c.cl(); p != nil {
		p.Reset()
	}
}

// Argv returns the original argument list, program first.
func (c *CommandLine) Argv() []string {
	return c.list(func(p *cefCommandLine, h uintptr) { p.GetArgv(h) })
}

// String returns the command line as a single string.
func (c *CommandLine) String() string {
	p := c.cl()
	if p == nil {
		return ""
	}
	return p.GetCommandLineString()
}

// Program returns the program part of the command line.
func (c *CommandLine) Program() string {
	p := c.cl()
	if p == nil {
		return ""
	}
	return p.GetProgram()
}

// SetProgram sets the program part of the command line.
func (c *CommandLine) SetProgram(program string) {
	if p := c.cl(); p != nil {
		p.SetProgram(program)
	}
}

// HasSwitches reports whether any switch is present.
func (c *CommandLine) HasSwitches() bool {
	p := c.cl()
	return p != nil && p.HasSwitches()
}

// HasSwitch reports whether the named switch is present.
func (c *CommandLine) HasSwitch(name string) bool {
	p := c.cl()
	return p != nil && p.HasSwitch(name)
}

// SwitchValue returns the value of the named switch, or "" if it is absent
// or has no value.
func (c *CommandLine) SwitchValue(name string) string {
	p := c.cl()
	if p == nil {
		return ""
	}
	return p.GetSwitchValue(name)
}

// Switches returns every switch and its value.
func (c *CommandLine) Switches() map[string]string {
	p := c.cl()
	if p == nil {
		return nil
	}
	m, err := cefstring.NewMap()
	if err != nil {
		return nil
	}
	defer m.Free()
	p.GetSwitches(m.Handle())
	return m.ToMap()
}

// AppendSwitch adds a switch without a value.
func (c *CommandLine) AppendSwitch(name string) {
	if p := c.cl(); p != nil {
		p.AppendSwitch(name)
	}
}

// AppendSwitchWithValue adds a switch with a value.
func (c *CommandLine) AppendSwitchWithValue(name, value string) {
	if p := c.cl(); p != nil {
		p.AppendSwitchWithValue(name, value)
	}
}

// HasArguments reports whether any plain arguments are present.
func (c *CommandLine) HasArguments() bool {
	p := c.cl()
	return p != nil && p.HasArguments()
}

// Arguments returns the plain arguments.
func (c *CommandLine) Arguments() []string {
	return c.list(func(p *cefCommandLine, h uintptr) { p.GetArguments(h) })
}

// AppendArgument adds a plain argument.
func (c *CommandLine) AppendArgument(arg string) {
	if p := c.cl(); p != nil {
		p.AppendArgument(arg)
	}
}

// PrependWrapper inserts a command, such as a debugger, before the program.
func (c *CommandLine) PrependWrapper(wrapper string) {
	if p := c.cl(); p != nil {
		p.PrependWrapper(wrapper)
	}
}

// Close releases the command line.
func (c *CommandLine) Close() {
	if c != nil {
		c.ref.Release()
	}
}

func (c *CommandLine) list(fill func(p *cefCommandLine, h uintptr)) []string {
	p := c.cl()
	if p == nil {
		return nil
	}
	l, err := cefstring.NewList()
	if err != nil {
		return nil
	}
	defer l.Free()
	fill(p, l.Handle())
	return l.Values()
}
