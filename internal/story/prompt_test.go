package story

import (
	"strings"
	"testing"
)

func scenarioRequest() Request {
	return Request{
		Archetype: "Anh hùng",
		Setting:   "Kỳ ảo",
		Location:  "Rừng cổ",
		Gender:    "Nam",
		Age:       17,
		Genres:    []string{"Phiêu lưu", "Kịch tính"},
		Provider:  "OpenAI",
	}
}

func TestBuildPrompt_ContainsAllFields(t *testing.T) {
	prompt := BuildPrompt(scenarioRequest())

	for _, want := range []string{"Anh hùng", "Kỳ ảo", "Rừng cổ", "Nam", "17", "Phiêu lưu, Kịch tính"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := scenarioRequest()

	first := BuildPrompt(req)
	second := BuildPrompt(req)
	if first != second {
		t.Fatalf("prompt not deterministic:\n%s\n---\n%s", first, second)
	}
}

func TestBuildPrompt_GenreOrderFollowsSelection(t *testing.T) {
	req := scenarioRequest()
	req.Genres = []string{"Kịch tính", "Phiêu lưu"}

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "Kịch tính, Phiêu lưu") {
		t.Fatalf("genres not joined in selection order:\n%s", prompt)
	}
}

func TestBuildPrompt_TwoStepInstruction(t *testing.T) {
	prompt := BuildPrompt(scenarioRequest())

	premise := strings.Index(prompt, "gợi ý câu chuyện ngắn")
	story := strings.Index(prompt, "viết một câu chuyện ngắn dựa trên gợi ý đó")
	if premise < 0 || story < 0 {
		t.Fatalf("missing premise/story instructions:\n%s", prompt)
	}
	if premise > story {
		t.Fatal("premise instruction must come before the story instruction")
	}
}

func TestBuildPrompt_EmptyFields(t *testing.T) {
	// Total: zero-valued input still yields the full template.
	prompt := BuildPrompt(Request{})

	if !strings.Contains(prompt, "- Tuổi: 0") {
		t.Fatalf("expected zero age in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Thể loại và Phong cách: \n") {
		t.Fatalf("expected empty genre line in prompt:\n%s", prompt)
	}
}
