package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
)

// TaskDetailProps holds the task shown in the detail popup
type TaskDetailProps struct {
	Task     *models.Task
	Username string
	Width    int
}

// RenderTaskDetail renders the scrollable body of the detail popup:
// the fields of the card, the description as markdown, then any fields
// the server returned that the board does not model.
func RenderTaskDetail(props TaskDetailProps) string {
	task := props.Task
	if task == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", TitleStyle.Render(fmt.Sprintf("Tarefa #%d", task.ID)))

	rows := [][2]string{
		{"Setor", orPlaceholder(task.Sector, "sem setor")},
		{"Prioridade", orPlaceholder(task.Priority, "sem prioridade")},
		{"Usuário", props.Username},
		{"Status", task.Status.Label()},
		{"Cadastro", task.CreatedAt.DateString()},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render(fmt.Sprintf("%-11s", row[0]+":")), row[1])
	}

	b.WriteString("\n")
	b.WriteString(RenderDescription(DescriptionProps{
		Description: task.Description,
		Width:       props.Width,
	}))

	if keys := task.ExtraKeys(); len(keys) > 0 {
		b.WriteString("\n\n" + SubtleStyle.Render("Outros campos") + "\n")
		for _, key := range keys {
			raw, _ := task.Extra(key)
			fmt.Fprintf(&b, "  %s: %s\n", key, fit(string(raw), max(props.Width-len(key)-4, 8)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
