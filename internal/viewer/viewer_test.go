package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"copyline/internal/command"
	"copyline/internal/config"
	"copyline/internal/host"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.go")
	content := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)

	v, err := New(Options{
		Path:     path,
		Config:   config.Default(),
		Registry: command.NewRegistry(),
		Screen:   screen,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

func TestNewRejectsMissingFile(t *testing.T) {
	_, err := New(Options{Path: filepath.Join(t.TempDir(), "absent.go")})
	if err == nil {
		t.Error("New(absent file) should fail")
	}
	if _, err := New(Options{}); err == nil {
		t.Error("New(no path) should fail")
	}
}

func TestActiveDocument(t *testing.T) {
	v := newTestViewer(t)

	doc, ok := v.ActiveDocument()
	if !ok {
		t.Fatal("ActiveDocument() ok = false")
	}
	if doc.Scheme != host.SchemeFile {
		t.Errorf("Scheme = %q, want file", doc.Scheme)
	}
	if !doc.Saved() {
		t.Error("viewed file should report as saved")
	}
}

func TestCursorMovement(t *testing.T) {
	v := newTestViewer(t) // 7 lines

	if v.CursorLine() != 0 {
		t.Fatalf("initial cursor = %d", v.CursorLine())
	}

	v.moveCursor(3)
	if v.CursorLine() != 3 {
		t.Errorf("cursor = %d, want 3", v.CursorLine())
	}

	// Clamped at both ends.
	v.moveCursor(100)
	if got, want := v.CursorLine(), len(v.lines)-1; got != want {
		t.Errorf("cursor = %d, want %d", got, want)
	}
	v.moveCursor(-100)
	if v.CursorLine() != 0 {
		t.Errorf("cursor = %d, want 0", v.CursorLine())
	}

	v.moveCursorTo(5)
	if v.CursorLine() != 5 {
		t.Errorf("cursor = %d, want 5", v.CursorLine())
	}
}

func TestHandleKeyNavigation(t *testing.T) {
	v := newTestViewer(t)

	if quit := v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)); quit {
		t.Fatal("Down requested quit")
	}
	if v.CursorLine() != 1 {
		t.Errorf("cursor = %d after Down", v.CursorLine())
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	if v.CursorLine() != 2 {
		t.Errorf("cursor = %d after j", v.CursorLine())
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	if v.CursorLine() != 1 {
		t.Errorf("cursor = %d after k", v.CursorLine())
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone))
	if got, want := v.CursorLine(), len(v.lines)-1; got != want {
		t.Errorf("cursor = %d after G, want %d", got, want)
	}

	if quit := v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Error("configured quit key did not quit")
	}
	if quit := v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Error("Escape did not quit")
	}
}

func TestNotifyStoresNotice(t *testing.T) {
	v := newTestViewer(t)

	if err := v.Notify("Copied: main.go:1", host.NotifyInfo); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	v.mu.Lock()
	got := v.notice
	v.mu.Unlock()

	if got.text != "Copied: main.go:1" || got.level != host.NotifyInfo {
		t.Errorf("notice = %+v", got)
	}
}

func TestWorkspaceRel(t *testing.T) {
	ws := Workspace{Root: "/proj"}

	tests := []struct {
		in   string
		want string
	}{
		{in: "/proj/src/index.ts", want: "src/index.ts"},
		{in: "/proj/main.go", want: "main.go"},
		{in: "/elsewhere/main.go", want: "/elsewhere/main.go"}, // outside root
		{in: "/proj", want: "/proj"},                           // the root itself
	}
	for _, tt := range tests {
		if got := ws.Rel(tt.in); got != tt.want {
			t.Errorf("Rel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// No root: pass-through.
	none := Workspace{}
	if got := none.Rel("/proj/main.go"); got != "/proj/main.go" {
		t.Errorf("Rel with no root = %q", got)
	}
}

func TestWorkspaceAbs(t *testing.T) {
	ws := Workspace{Root: "/proj"}
	if got := ws.Abs("/proj/main.go"); got != "/proj/main.go" {
		t.Errorf("Abs(absolute) = %q", got)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got := ws.Abs("main.go"); got != filepath.Join(wd, "main.go") {
		t.Errorf("Abs(relative) = %q", got)
	}
}
