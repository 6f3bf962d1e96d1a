package story

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCollect_Valid(t *testing.T) {
	req, err := Collect(Fields{
		Archetype: "Anh hùng",
		Setting:   "Kỳ ảo",
		Location:  "  Rừng cổ ",
		Gender:    "Nam",
		Age:       17,
		Genres:    []string{"Phiêu lưu", "Kịch tính", "Phiêu lưu"},
		Provider:  "OpenAI",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Location != "Rừng cổ" {
		t.Errorf("expected trimmed location, got %q", req.Location)
	}
	if len(req.Genres) != 2 || req.Genres[0] != "Phiêu lưu" || req.Genres[1] != "Kịch tính" {
		t.Errorf("expected deduplicated genres in selection order, got %v", req.Genres)
	}
	if req.Provider != "OpenAI" {
		t.Errorf("expected provider OpenAI, got %s", req.Provider)
	}
}

func TestCollect_PassesThroughUnknownProvider(t *testing.T) {
	f := DefaultFields()
	f.Provider = "Unknown"

	req, err := Collect(f)
	if err != nil {
		t.Fatalf("collector must not validate the provider: %v", err)
	}
	if req.Provider != "Unknown" {
		t.Errorf("expected provider Unknown, got %s", req.Provider)
	}
}

func TestCollect_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		want   string
	}{
		{name: "archetype", mutate: func(f *Fields) { f.Archetype = "Pirate" }, want: "archetype"},
		{name: "setting", mutate: func(f *Fields) { f.Setting = "Space" }, want: "setting"},
		{name: "gender", mutate: func(f *Fields) { f.Gender = "?" }, want: "gender"},
		{name: "negative age", mutate: func(f *Fields) { f.Age = -1 }, want: "age"},
		{name: "genre", mutate: func(f *Fields) { f.Genres = []string{"Phiêu lưu", "Western"} }, want: "genre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFields()
			tt.mutate(&f)

			_, err := Collect(f)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCollect_AgeBounds(t *testing.T) {
	for _, age := range []int{MinAge, 150, 151, 1000} {
		f := DefaultFields()
		f.Age = age
		if _, err := Collect(f); err != nil {
			t.Errorf("age %d should be accepted: %v", age, err)
		}
	}
}

func TestOptionLists(t *testing.T) {
	if len(Archetypes) != 4 || len(Settings) != 4 || len(Genders) != 4 {
		t.Fatalf("expected 4 archetypes, settings and genders, got %d/%d/%d", len(Archetypes), len(Settings), len(Genders))
	}
	if len(Genres) != 16 {
		t.Fatalf("expected 16 genres, got %d", len(Genres))
	}
}

func TestExportStory_JSON(t *testing.T) {
	s := Story{
		Provider:    "OpenAI",
		Model:       "gpt-4-turbo-preview",
		Prompt:      BuildPrompt(scenarioRequest()),
		Text:        "Ngày xửa ngày xưa <b>",
		Request:     scenarioRequest(),
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := ExportStory(s, "JSON", &buf); err != nil {
		t.Fatalf("ExportStory failed: %v", err)
	}

	if !strings.Contains(buf.String(), "<b>") {
		t.Error("expected HTML characters to be written unescaped")
	}

	var got Story
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if got.Model != "gpt-4-turbo-preview" || got.Request.Location != "Rừng cổ" {
		t.Errorf("unexpected export: %+v", got)
	}
}

func TestExportStory_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := ExportStory(Story{}, "xml", &buf)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("expected 'unsupported export format' error, got: %v", err)
	}
}
