package ui

import "testing"

func TestExitPrompt(t *testing.T) {
	var p ExitPrompt
	if p.Answer("y") != AnswerNone {
		t.Fatal("closed prompt accepted an answer")
	}

	tests := []struct {
		keys []string
		want PromptAnswer
		open bool
	}{
		{keys: []string{"y"}, want: AnswerExit, open: false},
		{keys: []string{"Y"}, want: AnswerExit, open: false},
		{keys: []string{"n"}, want: AnswerStay, open: false},
		{keys: []string{"x", "q"}, want: AnswerNone, open: true},
		{keys: []string{"x", "N"}, want: AnswerStay, open: false},
	}
	for _, tt := range tests {
		p := ExitPrompt{}
		p.Open()
		var got PromptAnswer
		for _, k := range tt.keys {
			got = p.Answer(k)
		}
		if got != tt.want || p.Visible() != tt.open {
			t.Fatalf("keys %v: answer %d open %v, want %d open %v", tt.keys, got, p.Visible(), tt.want, tt.open)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title(42.5, 7); got != "Burned: 42.5%  Step: 7" {
		t.Fatalf("Title = %q", got)
	}
	if got := Title(100, 0); got != "Burned: 100.0%  Step: 0" {
		t.Fatalf("Title = %q", got)
	}
}
