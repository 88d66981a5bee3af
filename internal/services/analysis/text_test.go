package analysis

import "testing"

func TestSegmentSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "short fragments dropped",
			text: "Too short. This sentence easily clears the minimum length bar! Tiny?",
			want: []string{"This sentence easily clears the minimum length bar"},
		},
		{
			name: "terminator runs collapse",
			text: "What could this possibly mean for us?! Nobody is entirely certain about that...",
			want: []string{
				"What could this possibly mean for us",
				"Nobody is entirely certain about that",
			},
		},
		{
			name: "order preserved",
			text: "First we gather all of the ingredients together. Then we combine them in a large bowl.",
			want: []string{
				"First we gather all of the ingredients together",
				"Then we combine them in a large bowl",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentSentences(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SegmentSentences() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SegmentSentences()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentParagraphs(t *testing.T) {
	text := "This opening paragraph is comfortably longer than fifty characters in total.\n\nshort\n\n   Another paragraph that also clears the fifty character minimum easily.   "

	got := SegmentParagraphs(text)
	if len(got) != 2 {
		t.Fatalf("SegmentParagraphs() returned %d paragraphs, want 2: %v", len(got), got)
	}
	if got[0] != "This opening paragraph is comfortably longer than fifty characters in total." {
		t.Errorf("first paragraph = %q", got[0])
	}
	if got[1] != "Another paragraph that also clears the fifty character minimum easily." {
		t.Errorf("second paragraph not trimmed: %q", got[1])
	}
}

func TestSegmentParagraphsEmpty(t *testing.T) {
	if got := SegmentParagraphs(""); len(got) != 0 {
		t.Errorf("SegmentParagraphs(\"\") = %v, want empty", got)
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Hello world. Second sentence.", "Hello world"},
		{"No terminator here", "No terminator here"},
		{". leading terminator", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstSentence(tt.text); got != tt.want {
			t.Errorf("firstSentence(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"mixed whitespace", "one  two\nthree\t four", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{4000, 20},
	}

	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120, 0, 100); got != 100 {
		t.Errorf("Clamp(120) = %d, want 100", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Clamp(-5) = %d, want 0", got)
	}
	if got := Clamp(50, 0, 100); got != 50 {
		t.Errorf("Clamp(50) = %d, want 50", got)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{4000, "4,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.n); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
