package clipboard

import (
	"errors"
	"testing"
)

func TestMemoryWriteRead(t *testing.T) {
	m := NewMemory()

	if err := m.Write("first"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := m.Write("second"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Read() = %q, want %q", got, "second")
	}

	writes := m.Writes()
	if len(writes) != 2 || writes[0] != "first" || writes[1] != "second" {
		t.Errorf("Writes() = %v", writes)
	}
}

func TestMemoryFailWith(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.FailWith(boom)

	if err := m.Write("text"); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want %v", err, boom)
	}
	if len(m.Writes()) != 0 {
		t.Errorf("failed write was recorded: %v", m.Writes())
	}

	m.FailWith(nil)
	if err := m.Write("text"); err != nil {
		t.Errorf("Write() after reset error = %v", err)
	}
}
