package exttool

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// editorScript writes an executable shell script and returns its path. The
// edited file arrives as $1.
func editorScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPromptChoiceDisabled(t *testing.T) {
	s := NewShell(Options{Interactive: false, ChooserCommand: "false"})
	got, err := s.PromptChoice([]string{"a", "b"})
	if err != nil {
		t.Fatalf("PromptChoice: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty selection when not interactive", got)
	}
}

func TestPromptChoiceExternal(t *testing.T) {
	s := NewShell(Options{Interactive: true, ChooserCommand: "head -n 1"})
	got, err := s.PromptChoice([]string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("PromptChoice: %v", err)
	}
	if got != "alpha\n" {
		t.Errorf("got %q, want alpha with its trailing newline", got)
	}
}

func TestPromptChoiceCancelled(t *testing.T) {
	// Choosers exit non-zero with no output when dismissed.
	s := NewShell(Options{Interactive: true, ChooserCommand: "false"})
	got, err := s.PromptChoice([]string{"alpha"})
	if err != nil {
		t.Fatalf("PromptChoice: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty selection", got)
	}
}

func TestPromptChoiceEmptyOptions(t *testing.T) {
	s := NewShell(Options{Interactive: true, ChooserCommand: "head -n 1"})
	got, err := s.PromptChoice(nil)
	if err != nil {
		t.Fatalf("PromptChoice: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty selection for no options", got)
	}
}

func TestRenderViewDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewShell(Options{RenderEnabled: false, Stdout: &buf})
	if err := s.RenderView(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want none when rendering disabled", buf.String())
	}
}

func TestRenderViewBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note")
	if err := os.WriteFile(path, []byte("hello render\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	s := NewShell(Options{RenderEnabled: true, Stdout: &buf})
	if err := s.RenderView(path); err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if !strings.Contains(buf.String(), "hello render") {
		t.Errorf("output %q missing note content", buf.String())
	}
}

func TestRenderViewBuiltinMissingFile(t *testing.T) {
	var buf bytes.Buffer
	s := NewShell(Options{RenderEnabled: true, Stdout: &buf})
	if err := s.RenderView(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderViewExternal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note")
	if err := os.WriteFile(path, []byte("raw content"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	s := NewShell(Options{RenderEnabled: true, RendererCommand: "cat", Stdout: &buf})
	if err := s.RenderView(path); err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if !strings.Contains(buf.String(), "raw content") {
		t.Errorf("output %q missing file content", buf.String())
	}
}

func TestRenderViewExternalExitIgnored(t *testing.T) {
	s := NewShell(Options{RenderEnabled: true, RendererCommand: "false", Stdout: io.Discard})
	if err := s.RenderView("whatever"); err != nil {
		t.Errorf("viewer exit status should not be an error, got %v", err)
	}
}

func TestInvokeEditorSuccess(t *testing.T) {
	t.Setenv("EDITOR", "true")
	s := NewShell(Options{})
	if err := s.InvokeEditor(filepath.Join(t.TempDir(), "note")); err != nil {
		t.Fatalf("InvokeEditor: %v", err)
	}
}

func TestInvokeEditorNonZeroExit(t *testing.T) {
	t.Setenv("EDITOR", editorScript(t, "exit 2"))
	s := NewShell(Options{})
	err := s.InvokeEditor(filepath.Join(t.TempDir(), "note"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := "editor exited with non-zero status: 2"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestInvokeEditorReceivesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note")
	t.Setenv("EDITOR", editorScript(t, `echo edited > "$1"`))
	s := NewShell(Options{})
	if err := s.InvokeEditor(path); err != nil {
		t.Fatalf("InvokeEditor: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(got), "edited") {
		t.Errorf("content = %q, want edit visible", got)
	}
}

func TestEditorResolution(t *testing.T) {
	t.Setenv("EDITOR", "")

	s := NewShell(Options{EditorFallback: "myedit -f"})
	if got := s.editor(); len(got) != 2 || got[0] != "myedit" || got[1] != "-f" {
		t.Errorf("editor() = %v, want [myedit -f]", got)
	}

	bare := NewShell(Options{})
	if got := bare.editor(); len(got) != 1 || got[0] != DefaultEditor {
		t.Errorf("editor() = %v, want [%s]", got, DefaultEditor)
	}

	t.Setenv("EDITOR", "   ")
	if got := bare.editor(); len(got) != 1 || got[0] != DefaultEditor {
		t.Errorf("editor() = %v, want [%s] for blank EDITOR", got, DefaultEditor)
	}

	t.Setenv("EDITOR", "nano")
	if got := bare.editor(); len(got) != 1 || got[0] != "nano" {
		t.Errorf("editor() = %v, want [nano]", got)
	}
}
