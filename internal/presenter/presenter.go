// Package presenter renders story results and errors for the terminal.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/Yates-Labs/storyteller/internal/dispatch"
	"github.com/Yates-Labs/storyteller/internal/story"
	"github.com/charmbracelet/lipgloss"
)

// Localized labels shown to the user.
const (
	Title         = "Trình tạo câu chuyện AI"
	ProgressLabel = "Đang tạo câu chuyện..."
	ErrorLabel    = "Đã xảy ra lỗi:"
)

var (
	headerColor  = lipgloss.Color("#F780FF") // Bright pink
	contextColor = lipgloss.Color("#6272A4") // Muted purple
	errorColor   = lipgloss.Color("#FF5555") // Red
	numberColor  = lipgloss.Color("#FF79C6") // Pink
)

// Presenter writes the output panel: a progress line, then either the story
// or a single error line.
type Presenter struct {
	out io.Writer

	headerStyle  lipgloss.Style
	contextStyle lipgloss.Style
	errorStyle   lipgloss.Style
	numberStyle  lipgloss.Style
}

// New creates a presenter writing to w. Colors are dropped when w is not a terminal.
func New(w io.Writer) *Presenter {
	r := lipgloss.NewRenderer(w)
	return &Presenter{
		out:          w,
		headerStyle:  r.NewStyle().Foreground(headerColor).Bold(true),
		contextStyle: r.NewStyle().Foreground(contextColor).Italic(true),
		errorStyle:   r.NewStyle().Foreground(errorColor).Bold(true),
		numberStyle:  r.NewStyle().Foreground(numberColor),
	}
}

// Progress announces that generation has started.
func (p *Presenter) Progress() {
	fmt.Fprintln(p.out, p.contextStyle.Render(ProgressLabel))
}

// Story prints the title, the provider line and the story text verbatim.
func (p *Presenter) Story(s *story.Story) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.headerStyle.Render(Title))
	fmt.Fprintln(p.out, p.contextStyle.Render(fmt.Sprintf("%s · %s", s.Provider, s.Model)))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.Text)
}

// Error prints the localized error line carrying err's message.
func (p *Presenter) Error(err error) {
	fmt.Fprintf(p.out, "%s %s\n", p.errorStyle.Render(ErrorLabel), err.Error())
}

// Options lists the choices the form offers and the provider/model table.
func (p *Presenter) Options() {
	section := func(name string, values []string) {
		fmt.Fprintln(p.out, p.headerStyle.Render(name))
		for i, v := range values {
			fmt.Fprintf(p.out, "  %s %s\n", p.numberStyle.Render(fmt.Sprintf("%2d.", i+1)), v)
		}
		fmt.Fprintln(p.out)
	}

	rows := make([]string, len(dispatch.Providers))
	for i, pr := range dispatch.Providers {
		rows[i] = fmt.Sprintf("%-10s %s", pr, p.contextStyle.Render(pr.Model()))
	}

	section("Mô hình AI", rows)
	section("Nhân vật", story.Archetypes)
	section("Bối cảnh", story.Settings)
	section("Giới tính", story.Genders)
	section("Thể loại & Phong cách", story.Genres)
	fmt.Fprintln(p.out, p.contextStyle.Render(fmt.Sprintf("Tuổi: số nguyên ≥ %d", story.MinAge)))
}

// Exported reports where the story was written.
func (p *Presenter) Exported(path string) {
	fmt.Fprintln(p.out, p.contextStyle.Render(fmt.Sprintf("✓ %s", strings.TrimSpace(path))))
}
