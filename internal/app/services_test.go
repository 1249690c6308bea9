package app

import (
	"io"
	"log/slog"
	"testing"
)

func TestNewServices_WiresEverything(t *testing.T) {
	t.Parallel()

	// A nil pool is fine here: construction wires dependencies without
	// touching the database.
	s := NewServices(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	if s.WorkoutLogs == nil {
		t.Error("WorkoutLogs service not wired")
	}
	if s.Exercises == nil {
		t.Error("Exercises service not wired")
	}
	if s.Measurements == nil {
		t.Error("Measurements service not wired")
	}
	if s.Templates == nil {
		t.Error("Templates service not wired")
	}
	if s.History == nil {
		t.Error("History service not wired")
	}
	if s.Users == nil {
		t.Error("Users service not wired")
	}
}
