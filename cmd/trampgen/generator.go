package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"
)

type CodeBuilder struct {
	buf    bytes.Buffer
	indent int
}

func (b *CodeBuilder) P(format string, args ...interface{}) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("\t")
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteString("\n")
}

func (b *CodeBuilder) In()  { b.indent++ }
func (b *CodeBuilder) Out() { b.indent-- }

func (b *CodeBuilder) Bytes() ([]byte, error) {
	return format.Source(b.buf.Bytes())
}

// BuildConstraint is carried by every generated file; trampolines need purego.
const BuildConstraint = "!ios && !android && (amd64 || arm64)"

// generator accumulates the body first so imports can be decided afterwards.
type generator struct {
	m    *Manifest
	body CodeBuilder

	usesPurego    bool
	usesCefstring bool
}

// Generate renders the Go source for every struct in the manifest.
// source names the manifest in the generated header.
func Generate(m *Manifest, source string) ([]byte, error) {
	gen := &generator{m: m}
	for _, s := range m.Structs {
		switch s.Direction {
		case DirectionHost:
			gen.hostStruct(s)
		case DirectionNative:
			gen.nativeStruct(s)
		}
	}

	g := &CodeBuilder{}
	g.P("// Code generated by trampgen from %s. DO NOT EDIT.", source)
	g.P("")
	g.P("//go:build %s", BuildConstraint)
	g.P("")
	g.P("package %s", m.Package)
	g.P("")
	g.P("import (")
	g.In()
	g.P(`"unsafe"`)
	g.P("")
	if gen.usesPurego {
		g.P(`"github.com/ebitengine/purego"`)
		g.P("")
	}
	if gen.usesCefstring {
		g.P(`"%s/cefstring"`, m.Module)
	}
	g.P(`"%s/refcount"`, m.Module)
	g.P(`"%s/trampoline"`, m.Module)
	g.Out()
	g.P(")")
	g.P("")
	g.buf.Write(gen.body.buf.Bytes())

	return g.Bytes()
}

func (gen *generator) mirror(s StructDefinition) {
	g := &gen.body
	if s.Doc != "" {
		for _, line := range strings.Split(strings.TrimSpace(s.Doc), "\n") {
			g.P("// %s", line)
		}
		g.P("//")
	}
	g.P("// %s mirrors %s.", s.GoName, s.CName)
	g.P("type %s struct {", s.GoName)
	g.In()
	g.P("base refcount.Base")
	for _, slot := range s.Slots {
		g.P("%s uintptr", fieldName(slot.Name))
	}
	g.Out()
	g.P("}")
	g.P("")
}

func (gen *generator) hostStruct(s StructDefinition) {
	g := &gen.body
	gen.usesPurego = true
	gen.mirror(s)

	// Interface
	g.P("// %s is the Go side of %s.", s.Interface, s.CName)
	g.P("type %s interface {", s.Interface)
	g.In()
	for _, slot := range s.Slots {
		ret := mustKind(slot.Returns)
		var params []string
		for _, p := range slot.Params {
			k := mustKind(p.Kind)
			params = append(params, goIdent(p.Name)+" "+gen.goType(k))
		}
		line := fmt.Sprintf("%s(%s)", slot.Method, strings.Join(params, ", "))
		if ret.Base != KindVoid {
			line += " " + gen.goType(ret)
		}
		g.P("%s", line)
	}
	g.Out()
	g.P("}")
	g.P("")

	// Constructor
	g.P("// %s wraps impl in a %s holding one reference.", constructorName(s), s.CName)
	g.P("func %s(impl %s) *%s {", constructorName(s), s.Interface, s.GoName)
	g.In()
	g.P("return refcount.Wrap(%s{", s.GoName)
	g.In()
	for _, slot := range s.Slots {
		g.P("%s: trampoline.Callback(%q, %s),", fieldName(slot.Name), slotKey(s, slot), trampolineName(s, slot))
	}
	g.Out()
	g.P("}, impl)")
	g.Out()
	g.P("}")
	g.P("")

	for _, slot := range s.Slots {
		gen.hostSlot(s, slot)
	}
}

func (gen *generator) hostSlot(s StructDefinition, slot SlotDefinition) {
	g := &gen.body
	ret := mustKind(slot.Returns)

	sig := []string{"_ purego.CDecl", "self unsafe.Pointer"}
	var pre, args []string
	for _, p := range slot.Params {
		k := mustKind(p.Kind)
		name := goIdent(p.Name)
		sig = append(sig, name+" "+abiType(k))
		switch k.Base {
		case KindBool:
			args = append(args, "trampoline.IsTrue("+name+")")
		case KindString:
			gen.usesCefstring = true
			args = append(args, "cefstring.ReadPtr("+name+")")
		case KindRef:
			r := name + "Ref"
			pre = append(pre,
				fmt.Sprintf("%s := refcount.FromPtr((*%s)(%s))", r, k.Target, name),
				fmt.Sprintf("defer %s.Release()", r))
			args = append(args, r)
		default:
			args = append(args, name)
		}
	}
	call := fmt.Sprintf("refcount.Impl[%s, %s](self).%s(%s)", s.GoName, s.Interface, slot.Method, strings.Join(args, ", "))
	key := slotKey(s, slot)

	g.P("// %s", gen.cSignature(s, slot))
	if ret.Base == KindVoid {
		g.P("func %s(%s) {", trampolineName(s, slot), strings.Join(sig, ", "))
		g.In()
		g.P("trampoline.Guard(%q, func() {", key)
		g.In()
		for _, line := range pre {
			g.P("%s", line)
		}
		g.P("%s", call)
		g.Out()
		g.P("})")
		g.Out()
		g.P("}")
		g.P("")
		return
	}

	rt := abiReturnType(ret)
	g.P("func %s(%s) %s {", trampolineName(s, slot), strings.Join(sig, ", "), rt)
	g.In()
	g.P("return trampoline.GuardValue(%q, func() %s {", key, rt)
	g.In()
	for _, line := range pre {
		g.P("%s", line)
	}
	switch ret.Base {
	case KindBool:
		g.P("return trampoline.Bool(%s)", call)
	case KindRaw:
		g.P("return uintptr(%s)", call)
	case KindRef:
		g.P("r := %s", call)
		g.P("return uintptr(unsafe.Pointer(r.IntoRaw()))")
	default:
		g.P("return %s", call)
	}
	g.Out()
	g.P("})")
	g.Out()
	g.P("}")
	g.P("")
}

func (gen *generator) nativeStruct(s StructDefinition) {
	gen.mirror(s)
	for _, slot := range s.Slots {
		if slot.Method != "" {
			gen.nativeSlot(s, slot)
		}
	}
}

func (gen *generator) nativeSlot(s StructDefinition, slot SlotDefinition) {
	g := &gen.body
	ret := mustKind(slot.Returns)

	var params, pre []string
	args := []string{"uintptr(unsafe.Pointer(s))"}
	for _, p := range slot.Params {
		k := mustKind(p.Kind)
		name := goIdent(p.Name)
		params = append(params, name+" "+gen.goType(k))
		switch k.Base {
		case KindBool:
			args = append(args, "uintptr(trampoline.Bool("+name+"))")
		case KindString:
			gen.usesCefstring = true
			// The header must not live on the goroutine stack.
			v := name + "Arg"
			pre = append(pre,
				fmt.Sprintf("%s := cefstring.NewArg(%s)", v, name),
				fmt.Sprintf("defer %s.Free()", v))
			args = append(args, v+".Addr()")
		case KindRef:
			// The callee receives its own reference.
			v := name + "Ref"
			pre = append(pre, fmt.Sprintf("%s := %s.Clone()", v, name))
			args = append(args, "uintptr(unsafe.Pointer("+v+".IntoRaw()))")
		case KindHandle:
			args = append(args, name)
		default:
			args = append(args, "uintptr("+name+")")
		}
	}

	sig := fmt.Sprintf("func (s *%s) %s(%s)", s.GoName, slot.Method, strings.Join(params, ", "))
	if ret.Base != KindVoid {
		sig += " " + gen.goType(ret)
	}
	invoke := fmt.Sprintf("trampoline.Invoke(s.%s, %s)", fieldName(slot.Name), strings.Join(args, ", "))

	g.P("// %s calls %s.", slot.Method, slotKey(s, slot))
	g.P("%s {", sig)
	g.In()
	for _, line := range pre {
		g.P("%s", line)
	}
	if ret.Base == KindVoid {
		g.P("%s", invoke)
	} else {
		g.P("r := %s", invoke)
		switch ret.Base {
		case KindBool:
			g.P("return trampoline.IsTrue(int32(r))")
		case KindInt32, KindInt64, KindUint32:
			g.P("return %s(r)", ret.Base)
		case KindUserfree:
			gen.usesCefstring = true
			g.P("return cefstring.TakeUserfree(unsafe.Pointer(r))")
		case KindHandle:
			g.P("return r")
		case KindRaw:
			g.P("return unsafe.Pointer(r)")
		case KindRef:
			g.P("return refcount.FromPtr((*%s)(unsafe.Pointer(r)))", ret.Target)
		}
	}
	g.Out()
	g.P("}")
	g.P("")
}

// goType is the Go type a slot value has on the Go side of the bridge.
func (gen *generator) goType(k Kind) string {
	switch k.Base {
	case KindBool:
		return "bool"
	case KindString, KindUserfree:
		return "string"
	case KindHandle:
		return "uintptr"
	case KindRaw:
		return "unsafe.Pointer"
	case KindRef:
		return "refcount.Ref[" + k.Target + "]"
	default:
		return k.Base
	}
}

// abiType is the Go type of a trampoline parameter as purego delivers it.
func abiType(k Kind) string {
	switch k.Base {
	case KindBool:
		return "int32"
	case KindString, KindRaw, KindRef:
		return "unsafe.Pointer"
	case KindHandle:
		return "uintptr"
	default:
		return k.Base
	}
}

func abiReturnType(k Kind) string {
	switch k.Base {
	case KindBool:
		return "int32"
	case KindRaw, KindRef, KindHandle:
		return "uintptr"
	default:
		return k.Base
	}
}

func (gen *generator) cType(k Kind) string {
	switch k.Base {
	case KindVoid:
		return "void"
	case KindInt32, KindBool:
		return "int"
	case KindInt64:
		return "int64_t"
	case KindUint32:
		return "uint32_t"
	case KindString:
		return "const cef_string_t*"
	case KindUserfree:
		return "cef_string_userfree_t"
	case KindRef:
		if t := gen.m.structByGoName(k.Target); t != nil {
			return t.CName + "*"
		}
	}
	return "void*"
}

func (gen *generator) cSignature(s StructDefinition, slot SlotDefinition) string {
	params := []string{s.CName + "* self"}
	for _, p := range slot.Params {
		params = append(params, gen.cType(mustKind(p.Kind))+" "+p.Name)
	}
	return fmt.Sprintf("%s %s(%s)", gen.cType(mustKind(slot.Returns)), slot.Name, strings.Join(params, ", "))
}

func mustKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		// Validate has already rejected bad kinds.
		panic(err)
	}
	return k
}

func slotKey(s StructDefinition, slot SlotDefinition) string {
	return s.CName + "." + slot.Name
}

func fieldName(slot string) string {
	return goIdent(slot)
}

func trampolineName(s StructDefinition, slot SlotDefinition) string {
	return s.GoName + camel(slot.Name, true) + "Trampoline"
}

func constructorName(s StructDefinition) string {
	return "new" + capitalize(s.GoName)
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// goIdent turns a C snake_case name into a lower camelCase Go identifier.
func goIdent(name string) string {
	id := camel(name, false)
	if goKeywords[id] {
		return id + "_"
	}
	return id
}

func camel(name string, upper bool) string {
	var b strings.Builder
	for i, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if i == 0 && !upper {
			b.WriteString(part)
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(capitalize(part))
	}
	return b.String()
}

var initialisms = map[string]string{
	"id":  "ID",
	"url": "URL",
	"uri": "URI",
	"ui":  "UI",
	"io":  "IO",
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
