package main

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const ExpectedVersion = 1

// Directions of a callback struct.
const (
	DirectionHost   = "host"   // slots implemented in Go, called by libcef
	DirectionNative = "native" // slots implemented by libcef, called from Go
)

// Manifest describes the C callback structs to generate code for.
type Manifest struct {
	Version uint32             `yaml:"version"`
	Package string             `yaml:"package"`
	Module  string             `yaml:"module"`
	Structs []StructDefinition `yaml:"structs"`
}

type StructDefinition struct {
	CName     string           `yaml:"c_name"`
	GoName    string           `yaml:"go_name"`
	Direction string           `yaml:"direction"`
	Interface string           `yaml:"interface"`
	Doc       string           `yaml:"doc"`
	Slots     []SlotDefinition `yaml:"slots"`
}

type SlotDefinition struct {
	Name    string            `yaml:"name"`
	Method  string            `yaml:"method"`
	Params  []ParamDefinition `yaml:"params"`
	Returns string            `yaml:"returns"`
}

type ParamDefinition struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// ParseManifest decodes and validates a YAML manifest. Unknown fields are
// rejected so typos in slot definitions do not silently drop code.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	if m.Version != ExpectedVersion {
		return fmt.Errorf("version mismatch: got %d, expected %d", m.Version, ExpectedVersion)
	}
	if m.Package == "" {
		return fmt.Errorf("manifest: package is required")
	}
	if m.Module == "" {
		return fmt.Errorf("manifest: module is required")
	}

	names := map[string]bool{}
	for _, s := range m.Structs {
		if s.CName == "" || s.GoName == "" {
			return fmt.Errorf("struct %q: c_name and go_name are required", s.CName)
		}
		if names[s.GoName] {
			return fmt.Errorf("struct %s: duplicate go_name", s.GoName)
		}
		names[s.GoName] = true
	}

	for _, s := range m.Structs {
		switch s.Direction {
		case DirectionHost:
			if s.Interface == "" {
				return fmt.Errorf("struct %s: host structs need an interface name", s.CName)
			}
		case DirectionNative:
		default:
			return fmt.Errorf("struct %s: unknown direction %q", s.CName, s.Direction)
		}

		for _, slot := range s.Slots {
			if slot.Name == "" {
				return fmt.Errorf("struct %s: slot without name", s.CName)
			}
			if s.Direction == DirectionHost && slot.Method == "" {
				return fmt.Errorf("struct %s: host slot %s needs a method", s.CName, slot.Name)
			}
			for _, p := range slot.Params {
				k, err := ParseKind(p.Kind)
				if err != nil {
					return fmt.Errorf("%s.%s param %s: %w", s.CName, slot.Name, p.Name, err)
				}
				if k.Base == KindVoid || k.Base == KindUserfree {
					return fmt.Errorf("%s.%s param %s: kind %s is only valid as a return", s.CName, slot.Name, p.Name, k.Base)
				}
				if k.Base == KindRef && !names[k.Target] {
					return fmt.Errorf("%s.%s param %s: unknown ref target %s", s.CName, slot.Name, p.Name, k.Target)
				}
			}
			k, err := ParseKind(slot.Returns)
			if err != nil {
				return fmt.Errorf("%s.%s return: %w", s.CName, slot.Name, err)
			}
			if k.Base == KindString {
				return fmt.Errorf("%s.%s return: use userfree for returned strings", s.CName, slot.Name)
			}
			if k.Base == KindUserfree && s.Direction == DirectionHost {
				return fmt.Errorf("%s.%s return: host slots cannot return userfree strings", s.CName, slot.Name)
			}
			if k.Base == KindRef && !names[k.Target] {
				return fmt.Errorf("%s.%s return: unknown ref target %s", s.CName, slot.Name, k.Target)
			}
		}
	}
	return nil
}

func (m *Manifest) structByGoName(name string) *StructDefinition {
	for i := range m.Structs {
		if m.Structs[i].GoName == name {
			return &m.Structs[i]
		}
	}
	return nil
}

// Kinds of slot parameters and returns.
const (
	KindVoid     = "void"
	KindInt32    = "int32"
	KindInt64    = "int64"
	KindUint32   = "uint32"
	KindBool     = "bool"
	KindString   = "string"   // const cef_string_t*
	KindUserfree = "userfree" // cef_string_userfree_t, returns only
	KindHandle   = "handle"   // opaque list/map handle
	KindRaw      = "raw"      // pointer passed through untouched
	KindRef      = "ref"      // ref-counted struct pointer, ref:<go_name>
)

type Kind struct {
	Base   string
	Target string // go_name of the pointee for ref
}

func ParseKind(s string) (Kind, error) {
	if s == "" {
		return Kind{Base: KindVoid}, nil
	}
	if target, ok := strings.CutPrefix(s, KindRef+":"); ok {
		if target == "" {
			return Kind{}, fmt.Errorf("ref kind without target")
		}
		return Kind{Base: KindRef, Target: target}, nil
	}
	switch s {
	case KindVoid, KindInt32, KindInt64, KindUint32, KindBool, KindString,
		KindUserfree, KindHandle, KindRaw:
		return Kind{Base: s}, nil
	}
	return Kind{}, fmt.Errorf("unknown kind %q", s)
}
