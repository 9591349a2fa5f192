package card

import "testing"

func TestRenderCloze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		hidden   string
		revealed string
	}{
		{
			name:     "single span",
			text:     "{{c1::Hidden}} shown",
			hidden:   "____ shown",
			revealed: "Hidden shown",
		},
		{
			name:     "multiple spans",
			text:     "{{c1::Paris}} is the capital of {{c2::France}}",
			hidden:   "____ is the capital of ____",
			revealed: "Paris is the capital of France",
		},
		{
			name:     "repeated index",
			text:     "{{c1::a}} and {{c1::b}}",
			hidden:   "____ and ____",
			revealed: "a and b",
		},
		{
			name:     "no span passes through",
			text:     "no cloze here",
			hidden:   "no cloze here",
			revealed: "no cloze here",
		},
		{
			name:     "malformed span never matches",
			text:     "{{c::missing digits}} and {{cx1::bad}}",
			hidden:   "{{c::missing digits}} and {{cx1::bad}}",
			revealed: "{{c::missing digits}} and {{cx1::bad}}",
		},
		{
			name:     "lazy match stops at first close",
			text:     "{{c1::a}} mid {{c2::b}}",
			hidden:   "____ mid ____",
			revealed: "a mid b",
		},
		{
			name:     "empty hidden text",
			text:     "x {{c1::}} y",
			hidden:   "x ____ y",
			revealed: "x  y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderCloze(tt.text, false); got != tt.hidden {
				t.Errorf("RenderCloze(false) = %q, want %q", got, tt.hidden)
			}
			if got := RenderCloze(tt.text, true); got != tt.revealed {
				t.Errorf("RenderCloze(true) = %q, want %q", got, tt.revealed)
			}
		})
	}
}

func TestQuestionAnswer(t *testing.T) {
	basic := &Card{Kind: Basic, Front: "f", Back: "b"}
	if basic.Question() != "f" || basic.Answer() != "b" {
		t.Errorf("basic Question/Answer = %q/%q", basic.Question(), basic.Answer())
	}

	cloze := &Card{Kind: Cloze, Text: "{{c1::Hidden}} shown"}
	if cloze.Question() != "____ shown" {
		t.Errorf("cloze Question = %q", cloze.Question())
	}
	if cloze.Answer() != "Hidden shown" {
		t.Errorf("cloze Answer = %q", cloze.Answer())
	}
}
