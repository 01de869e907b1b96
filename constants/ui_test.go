package constants

import (
	"strings"
	"testing"
	"time"
)

// TestRevealWorstCaseLine verifies a full-width line finishes well before the next welcome message
func TestRevealWorstCaseLine(t *testing.T) {
	tests := []struct {
		name  string
		chars int
	}{
		{name: "Short line", chars: 10},
		{name: "Longest welcome", chars: longestWelcome()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worst := time.Duration(tt.chars)*(RevealCharBase+RevealCharJitter) + RevealLinePause
			if worst >= 2*WelcomeStagger {
				t.Errorf("Expected reveal of %d chars under %v, got %v", tt.chars, 2*WelcomeStagger, worst)
			}
		})
	}
}

func longestWelcome() int {
	n := 0
	for _, msg := range WelcomeMessages {
		n = max(n, len([]rune(msg)))
	}
	return n
}

// TestSessionTimingConstants verifies lifecycle delays
func TestSessionTimingConstants(t *testing.T) {
	if OpenDelay != 500*time.Millisecond {
		t.Errorf("Expected OpenDelay to be 500ms, got %v", OpenDelay)
	}

	if CloseDelay != 300*time.Millisecond {
		t.Errorf("Expected CloseDelay to be 300ms, got %v", CloseDelay)
	}

	if ResponseDelay >= SequenceStagger {
		t.Error("Response delay should be shorter than the sequence stagger")
	}

	if len(WelcomeMessages) != 5 {
		t.Errorf("Expected 5 welcome messages, got %d", len(WelcomeMessages))
	}
}

// TestShortcutCommands verifies shortcut buttons are lowercase single words
func TestShortcutCommands(t *testing.T) {
	if len(ShortcutCommands) == 0 {
		t.Fatal("Expected at least one shortcut command")
	}
	for _, cmd := range ShortcutCommands {
		if cmd != strings.ToLower(cmd) || strings.ContainsAny(cmd, " \t") {
			t.Errorf("Expected lowercase single-word shortcut, got %q", cmd)
		}
	}
}

// TestOverlayMinimumFitsChrome verifies the smallest overlay keeps a log row
func TestOverlayMinimumFitsChrome(t *testing.T) {
	// Border (2) + input line + shortcut row
	if OverlayMinHeight-4 < 1 {
		t.Errorf("Expected at least one log row at minimum height, got %d", OverlayMinHeight-4)
	}
	if FloatAmplitude <= 0 || FloatAmplitude > 2 {
		t.Errorf("Expected float amplitude within (0, 2], got %v", FloatAmplitude)
	}
}
