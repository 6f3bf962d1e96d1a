// Package story holds the story parameters collected from the user, the fixed
// prompt template built from them, and the generated story record.
package story

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid story request")
)

// MinAge is the smallest accepted age. Ages have no upper bound.
const MinAge = 0

// Option lists offered by the form. Values are sent to the model verbatim.
var (
	Archetypes = []string{"Anh hùng", "Kẻ phản diện", "Kẻ lừa đảo", "Người cố vấn"}

	Settings = []string{"Kỳ ảo", "Khoa học viễn tưởng", "Lịch sử", "Hiện thực"}

	Genders = []string{"Nam", "Nữ", "LGBTQ+", "Không xác định"}

	Genres = []string{
		"Hành động", "Phiêu lưu", "Hài hước", "Kịch tính", "Kinh dị", "Bí ẩn", "Lãng mạn", "Giật gân",
		"Ngôi thứ nhất", "Ngôi thứ ba", "Dạng thư tín", "Dòng ý thức",
		"Tối giản", "Dài dòng", "Thơ ca", "Châm biếm",
	}
)

// Request is the set of story parameters for a single generation.
type Request struct {
	Archetype string   `json:"archetype"`
	Setting   string   `json:"setting"`
	Location  string   `json:"location"`
	Gender    string   `json:"gender"`
	Age       int      `json:"age"`
	Genres    []string `json:"genres"`

	// Provider is the selector naming which text-generation provider to use.
	// It is not validated here; the dispatcher owns the set of known providers.
	Provider string `json:"provider"`
}

// Fields are the raw form inputs before collection.
type Fields struct {
	Archetype string
	Setting   string
	Location  string
	Gender    string
	Age       int
	Genres    []string
	Provider  string
}

// DefaultFields returns the form's initial selection.
func DefaultFields() Fields {
	return Fields{
		Archetype: Archetypes[0],
		Setting:   Settings[0],
		Gender:    Genders[0],
		Provider:  "Gemini",
	}
}

// Collect turns raw form inputs into a Request. Dropdown fields must be one of
// the offered options, age must be within bounds, and genres keep their
// selection order with duplicates removed.
func Collect(f Fields) (Request, error) {
	if !slices.Contains(Archetypes, f.Archetype) {
		return Request{}, fmt.Errorf("%w: unknown archetype %q", ErrInvalidRequest, f.Archetype)
	}
	if !slices.Contains(Settings, f.Setting) {
		return Request{}, fmt.Errorf("%w: unknown setting %q", ErrInvalidRequest, f.Setting)
	}
	if !slices.Contains(Genders, f.Gender) {
		return Request{}, fmt.Errorf("%w: unknown gender %q", ErrInvalidRequest, f.Gender)
	}
	if f.Age < MinAge {
		return Request{}, fmt.Errorf("%w: age %d must not be negative", ErrInvalidRequest, f.Age)
	}

	genres := make([]string, 0, len(f.Genres))
	seen := make(map[string]struct{}, len(f.Genres))
	for _, g := range f.Genres {
		if !slices.Contains(Genres, g) {
			return Request{}, fmt.Errorf("%w: unknown genre %q", ErrInvalidRequest, g)
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}

	return Request{
		Archetype: f.Archetype,
		Setting:   f.Setting,
		Location:  strings.TrimSpace(f.Location),
		Gender:    f.Gender,
		Age:       f.Age,
		Genres:    genres,
		Provider:  f.Provider,
	}, nil
}
