package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `
version: 1
package: cefgo
module: github.com/obinnaokechukwu/cefgo
structs:
  - c_name: cef_task_t
    go_name: cefTask
    direction: host
    interface: taskHandler
    slots:
      - name: execute
        method: Execute
  - c_name: cef_thing_t
    go_name: cefThing
    direction: native
    slots:
      - name: is_valid
        method: IsValid
        returns: bool
      - name: unused_slot
      - name: get_name
        method: GetName
        params:
          - {name: type, kind: string}
        returns: userfree
      - name: copy
        method: Copy
        returns: ref:cefThing
  - c_name: cef_handler_t
    go_name: cefHandler
    direction: host
    interface: handlerSlots
    slots:
      - name: on_event
        method: OnEvent
        params:
          - {name: thing, kind: "ref:cefThing"}
          - {name: url, kind: string}
          - {name: flags, kind: uint32}
          - {name: enabled, kind: bool}
        returns: bool
      - name: get_thing
        method: GetThing
        returns: ref:cefThing
`

func TestGoIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"execute", "execute"},
		{"on_complete", "onComplete"},
		{"num_deleted", "numDeleted"},
		{"on_before_command_line_processing", "onBeforeCommandLineProcessing"},
		{"type", "type_"},
		{"range", "range_"},
		{"thread_id", "threadID"},
		{"target_url", "targetURL"},
	}

	for _, test := range tests {
		result := goIdent(test.input)
		if result != test.expected {
			t.Errorf("goIdent(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"", Kind{Base: KindVoid}},
		{"int32", Kind{Base: KindInt32}},
		{"bool", Kind{Base: KindBool}},
		{"string", Kind{Base: KindString}},
		{"userfree", Kind{Base: KindUserfree}},
		{"ref:cefBrowser", Kind{Base: KindRef, Target: "cefBrowser"}},
	}
	for _, test := range tests {
		got, err := ParseKind(test.input)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseKind(%q) = %+v, expected %+v", test.input, got, test.want)
		}
	}

	for _, bad := range []string{"float", "ref:", "int"} {
		if _, err := ParseKind(bad); err == nil {
			t.Errorf("ParseKind(%q) should fail", bad)
		}
	}
}

func TestParseManifestValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"version",
			"version: 2\npackage: p\nmodule: m\n",
			"version mismatch",
		},
		{
			"unknown field",
			"version: 1\npackage: p\nmodule: m\nbogus: 1\n",
			"bogus",
		},
		{
			"direction",
			"version: 1\npackage: p\nmodule: m\nstructs:\n  - {c_name: a_t, go_name: a, direction: sideways}\n",
			"unknown direction",
		},
		{
			"host without interface",
			"version: 1\npackage: p\nmodule: m\nstructs:\n  - {c_name: a_t, go_name: a, direction: host}\n",
			"interface",
		},
		{
			"unknown ref",
			"version: 1\npackage: p\nmodule: m\nstructs:\n  - c_name: a_t\n    go_name: a\n    direction: native\n    slots:\n      - {name: get, method: Get, returns: \"ref:b\"}\n",
			"unknown ref target",
		},
		{
			"string return",
			"version: 1\npackage: p\nmodule: m\nstructs:\n  - c_name: a_t\n    go_name: a\n    direction: native\n    slots:\n      - {name: get, method: Get, returns: string}\n",
			"userfree",
		},
		{
			"userfree param",
			"version: 1\npackage: p\nmodule: m\nstructs:\n  - c_name: a_t\n    go_name: a\n    direction: native\n    slots:\n      - name: set\n        method: Set\n        params: [{name: v, kind: userfree}]\n",
			"only valid as a return",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(test.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not mention %q", err, test.wantErr)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}

	code, err := Generate(m, "test.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	codeStr := string(code)

	expectedElements := []string{
		"// Code generated by trampgen from test.yaml. DO NOT EDIT.",
		"//go:build " + BuildConstraint,
		"package cefgo",
		`"github.com/ebitengine/purego"`,
		`"github.com/obinnaokechukwu/cefgo/cefstring"`,
		`"github.com/obinnaokechukwu/cefgo/refcount"`,
		`"github.com/obinnaokechukwu/cefgo/trampoline"`,

		// host struct
		"type cefTask struct",
		"base    refcount.Base",
		"execute uintptr",
		"type taskHandler interface",
		"func newCefTask(impl taskHandler) *cefTask",
		`trampoline.Callback("cef_task_t.execute", cefTaskExecuteTrampoline)`,
		"// void execute(cef_task_t* self)",
		"func cefTaskExecuteTrampoline(_ purego.CDecl, self unsafe.Pointer) {",
		`trampoline.Guard("cef_task_t.execute", func() {`,
		"refcount.Impl[cefTask, taskHandler](self).Execute()",

		// native struct
		"type cefThing struct",
		"unusedSlot uintptr",
		"func (s *cefThing) IsValid() bool",
		"return trampoline.IsTrue(int32(r))",
		"func (s *cefThing) GetName(type_ string) string",
		"type_Arg := cefstring.NewArg(type_)",
		"defer type_Arg.Free()",
		"trampoline.Invoke(s.getName, uintptr(unsafe.Pointer(s)), type_Arg.Addr())",
		"return cefstring.TakeUserfree(unsafe.Pointer(r))",
		"func (s *cefThing) Copy() refcount.Ref[cefThing]",
		"return refcount.FromPtr((*cefThing)(unsafe.Pointer(r)))",

		// marshalling in host trampolines
		"// int on_event(cef_handler_t* self, cef_thing_t* thing, const cef_string_t* url, uint32_t flags, int enabled)",
		"OnEvent(thing refcount.Ref[cefThing], url string, flags uint32, enabled bool) bool",
		"thing unsafe.Pointer, url unsafe.Pointer, flags uint32, enabled int32) int32",
		"thingRef := refcount.FromPtr((*cefThing)(thing))",
		"defer thingRef.Release()",
		"return trampoline.Bool(refcount.Impl[cefHandler, handlerSlots](self).OnEvent(thingRef, cefstring.ReadPtr(url), flags, trampoline.IsTrue(enabled)))",
		"GetThing() refcount.Ref[cefThing]",
		"return uintptr(unsafe.Pointer(r.IntoRaw()))",
	}

	for _, element := range expectedElements {
		if !strings.Contains(codeStr, element) {
			t.Errorf("Generated code missing expected element: %q", element)
		}
	}

	// Slots without a method keep their field but get no helper.
	if strings.Contains(codeStr, "UnusedSlot(") {
		t.Error("native slot without method should not get a helper")
	}
}

func TestGenerateWithoutStrings(t *testing.T) {
	m := &Manifest{
		Version: ExpectedVersion,
		Package: "p",
		Module:  "example.com/m",
		Structs: []StructDefinition{{
			CName:     "cef_callback_t",
			GoName:    "cefCallback",
			Direction: DirectionNative,
			Slots: []SlotDefinition{
				{Name: "cont", Method: "Continue"},
				{Name: "cancel", Method: "Cancel"},
			},
		}},
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	code, err := Generate(m, "x.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	codeStr := string(code)
	if strings.Contains(codeStr, "cefstring") || strings.Contains(codeStr, "purego") {
		t.Errorf("unused imports emitted:\n%s", codeStr)
	}
	if !strings.Contains(codeStr, "trampoline.Invoke(s.cont, uintptr(unsafe.Pointer(s)))") {
		t.Errorf("missing Continue helper:\n%s", codeStr)
	}
}

func TestCheckedInManifestGenerates(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "capi.yaml"))
	if err != nil {
		t.Skipf("capi.yaml not found: %v", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("capi.yaml: %v", err)
	}
	if _, err := Generate(m, "capi.yaml"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
}

func TestRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "capi.yaml")
	out := filepath.Join(dir, "zz_generated_capi.go")
	if err := os.WriteFile(in, []byte(testManifest), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	run := func(args ...string) error {
		app := newApp()
		app.Writer = &stdout
		return app.Run(append([]string{"trampgen"}, args...))
	}

	if err := run("--input", in, "--output", out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "Generated:") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	code, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "package cefgo") {
		t.Error("output file does not contain generated code")
	}

	// --check passes on a fresh file and fails after an edit.
	if err := run("-i", in, "-o", out, "--check"); err != nil {
		t.Errorf("check on fresh output: %v", err)
	}
	if err := os.WriteFile(out, append(code, []byte("// edited\n")...), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run("-i", in, "-o", out, "--check"); err == nil {
		t.Error("check should fail on stale output")
	}
}
