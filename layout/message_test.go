package layout

import (
	"strings"
	"testing"
)

func TestFormatMessage_ShortMessageStaysSingleLine(t *testing.T) {
	messages := []string{
		"",
		"Happy holidays!",
		"Exactly thirty characters oka!", // 30 chars
	}
	for _, msg := range messages {
		got := FormatMessage(msg)
		if got.ShouldBreak {
			t.Errorf("FormatMessage(%q): ShouldBreak = true, want false", msg)
		}
		if got.FirstLine != msg || got.SecondLine != "" {
			t.Errorf("FormatMessage(%q) = %+v, want message unchanged on first line", msg, got)
		}
	}
}

func TestFormatMessage_AccentedShortMessageStaysSingleLine(t *testing.T) {
	// 18 characters but 35 bytes; the limit counts characters.
	msg := "éééééééééé ñññññññ"

	got := FormatMessage(msg)
	if got.ShouldBreak {
		t.Fatalf("FormatMessage(%q): ShouldBreak = true, want false", msg)
	}
	if got.FirstLine != msg || got.SecondLine != "" {
		t.Errorf("FormatMessage(%q) = %+v, want message unchanged on first line", msg, got)
	}
}

func TestFormatMessage_MidpointCountsCharactersNotBytes(t *testing.T) {
	// 38 characters, half = 19: the boundary after the ASCII word sits one
	// character past the midpoint, so the break lands there. Measured in
	// bytes (54, half 27) the walk would instead include "éééé" on line one.
	msg := strings.Repeat("a", 20) + " éééé " + strings.Repeat("é", 12)

	got := FormatMessage(msg)
	if !got.ShouldBreak {
		t.Fatalf("FormatMessage(%q): ShouldBreak = false, want true", msg)
	}
	if got.FirstLine != strings.Repeat("a", 20) {
		t.Errorf("FirstLine = %q, want the bare ASCII word", got.FirstLine)
	}
	if got.SecondLine != "éééé "+strings.Repeat("é", 12) {
		t.Errorf("SecondLine = %q", got.SecondLine)
	}
}

func TestFormatMessage_HolidayGreeting(t *testing.T) {
	msg := "Warmest wishes for a joyful and restful holiday season."

	got := FormatMessage(msg)
	if !got.ShouldBreak {
		t.Fatalf("FormatMessage(%q): ShouldBreak = false, want true", msg)
	}
	// The word boundary nearest floor(55/2)=27 sits right after "joyful",
	// yielding a perfectly balanced 27/27 split.
	if got.FirstLine != "Warmest wishes for a joyful" {
		t.Errorf("FirstLine = %q", got.FirstLine)
	}
	if got.SecondLine != "and restful holiday season." {
		t.Errorf("SecondLine = %q", got.SecondLine)
	}
}

func TestFormatMessage_TieIncludesWord(t *testing.T) {
	// len = 31, half = 15; the second word's boundaries sit at 10 and 20,
	// both 5 away from the midpoint. Ties break toward including the word.
	msg := "aaaaaaaaaa bbbbbbbbb cccccccccc"

	got := FormatMessage(msg)
	if !got.ShouldBreak {
		t.Fatalf("ShouldBreak = false, want true")
	}
	if got.FirstLine != "aaaaaaaaaa bbbbbbbbb" {
		t.Errorf("FirstLine = %q, want tie to include the middle word", got.FirstLine)
	}
	if got.SecondLine != "cccccccccc" {
		t.Errorf("SecondLine = %q", got.SecondLine)
	}
}

func TestFormatMessage_SingleLongWordDoesNotBreak(t *testing.T) {
	msg := strings.Repeat("x", 45)
	got := FormatMessage(msg)
	if got.ShouldBreak {
		t.Errorf("a single unbreakable word must not break, got %+v", got)
	}
	if got.FirstLine != msg {
		t.Errorf("FirstLine = %q, want full message", got.FirstLine)
	}
}

func TestFormatMessage_OverlongFirstWord(t *testing.T) {
	// One dominant word: the only boundary closer to the midpoint is after
	// it, so the break lands there however unbalanced the lines end up.
	msg := strings.Repeat("y", 40) + " z"
	got := FormatMessage(msg)
	if !got.ShouldBreak {
		t.Fatalf("ShouldBreak = false, want true")
	}
	if got.FirstLine != strings.Repeat("y", 40) || got.SecondLine != "z" {
		t.Errorf("got %q / %q", got.FirstLine, got.SecondLine)
	}
}

func TestFormatMessage_Deterministic(t *testing.T) {
	msg := "May this season bring you warmth, laughter and well earned rest."
	want := FormatMessage(msg)
	for i := 0; i < 100; i++ {
		if got := FormatMessage(msg); got != want {
			t.Fatalf("call %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestFormatMessage_RejoinsWithSingleSpaces(t *testing.T) {
	msg := "Wishing   you a truly   wonderful and bright    holiday season"
	got := FormatMessage(msg)
	if !got.ShouldBreak {
		t.Fatalf("ShouldBreak = false, want true")
	}
	if strings.Contains(got.FirstLine, "  ") || strings.Contains(got.SecondLine, "  ") {
		t.Errorf("lines must be rejoined with single spaces: %q / %q", got.FirstLine, got.SecondLine)
	}
}

// bruteForceBestDiff returns the smallest achievable |len(first)-len(second)|
// over every word-boundary split of the message.
func bruteForceBestDiff(msg string) int {
	words := strings.Fields(msg)
	best := -1
	for k := 1; k < len(words); k++ {
		first := strings.Join(words[:k], " ")
		second := strings.Join(words[k:], " ")
		diff := len(first) - len(second)
		if diff < 0 {
			diff = -diff
		}
		if best < 0 || diff < best {
			best = diff
		}
	}
	return best
}

func TestFormatMessage_SplitBalanceIsMinimal(t *testing.T) {
	messages := []string{
		"Warmest wishes for a joyful and restful holiday season.",
		"Thank you for another wonderful year of working together as one",
		"Sending love and light to you and all of yours this winter",
		"Cheers to new beginnings and to everything still ahead of us",
		"From our whole family to yours, have a peaceful new year",
	}

	for _, msg := range messages {
		if len(msg) <= 30 {
			t.Fatalf("test string %q must be longer than 30 chars (len=%d)", msg, len(msg))
		}

		got := FormatMessage(msg)
		if !got.ShouldBreak {
			t.Errorf("FormatMessage(%q): expected a break", msg)
			continue
		}

		diff := len(got.FirstLine) - len(got.SecondLine)
		if diff < 0 {
			diff = -diff
		}
		if best := bruteForceBestDiff(msg); diff != best {
			t.Errorf("FormatMessage(%q): balance diff = %d, brute-force best = %d (%q / %q)",
				msg, diff, best, got.FirstLine, got.SecondLine)
		}
	}
}
