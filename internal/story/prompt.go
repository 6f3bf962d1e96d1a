package story

import (
	"fmt"
	"strings"
)

// GenreSeparator joins the selected genres inside the prompt.
const GenreSeparator = ", "

// BuildPrompt formats the request into the fixed story prompt. It is pure:
// the same request always yields the same prompt.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Tạo một câu chuyện ngắn bằng tiếng Việt dựa trên các yếu tố sau:\n")
	b.WriteString(fmt.Sprintf("- Nguyên mẫu nhân vật: %s\n", req.Archetype))
	b.WriteString(fmt.Sprintf("- Bối cảnh: %s\n", req.Setting))
	b.WriteString(fmt.Sprintf("- Địa điểm: %s\n", req.Location))
	b.WriteString(fmt.Sprintf("- Giới tính: %s\n", req.Gender))
	b.WriteString(fmt.Sprintf("- Tuổi: %d\n", req.Age))
	b.WriteString(fmt.Sprintf("- Thể loại và Phong cách: %s\n\n", strings.Join(req.Genres, GenreSeparator)))

	b.WriteString("Trước tiên, hãy tạo một gợi ý câu chuyện ngắn kết hợp các yếu tố này. ")
	b.WriteString("Sau đó, viết một câu chuyện ngắn dựa trên gợi ý đó.")

	return b.String()
}
