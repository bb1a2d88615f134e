package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
)

const dialogWidth = 50

// StatusPickerProps holds what the status picker shows
type StatusPickerProps struct {
	Task    *models.Task
	Options []models.StatusOption
	Cursor  int
}

// RenderStatusPicker renders the constrained status selector.
// The task's current status is marked with a bullet.
func RenderStatusPicker(props StatusPickerProps) string {
	items := make([]string, 0, len(props.Options))
	for i, opt := range props.Options {
		prefix := "  "
		if i == props.Cursor {
			prefix = "> "
		}
		line := prefix + opt.Label
		if props.Task != nil && opt.Value == props.Task.Status {
			line += " •"
		}
		if i == props.Cursor {
			line = TitleStyle.Render(line)
		}
		items = append(items, line)
	}

	var header string
	if props.Task != nil {
		header = fit(TaskSummaryLine(props.Task), dialogWidth-6) + "\n"
	}

	content := header + "Alterar status:\n\n" +
		lipgloss.JoinVertical(lipgloss.Left, items...) +
		"\n\n" + SubtleStyle.Render(PickerFooterConfirm)

	return StatusPickerBoxStyle.Width(dialogWidth).Render(content)
}

// RenderDeleteConfirm renders the delete confirmation for a task
func RenderDeleteConfirm(task *models.Task) string {
	name := "esta tarefa"
	if task != nil {
		name = fit(TaskSummaryLine(task), dialogWidth-16)
	}
	return DeleteConfirmBoxStyle.
		Width(dialogWidth).
		Render(fmt.Sprintf("Excluir %s?\n\n%s", name, ConfirmFooter))
}

// RenderAck renders the blocking acknowledgment shown after a change
func RenderAck(message string, failed bool) string {
	style := AckSuccessBoxStyle
	if failed {
		style = AckErrorBoxStyle
	}
	return style.
		Width(dialogWidth).
		Render(message + "\n\n" + SubtleStyle.Render(AckFooter))
}

// RenderHelp renders the keyboard shortcuts for the current key mappings
func RenderHelp(km config.KeyMappings) string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"TAREFAS", [][2]string{
			{km.ChangeStatus, "Alterar status"},
			{km.EditTask, "Editar tarefa (abre a página web)"},
			{km.DeleteTask, "Excluir tarefa"},
			{km.ViewTask, "Ver detalhes"},
			{km.Reload, "Recarregar"},
		}},
		{"PÁGINAS", [][2]string{
			{km.AddTask, "Cadastro de Tarefas"},
			{km.ManageTasks, "Gerenciar Tarefas"},
			{km.RegisterUser, "Cadastro de Usuários"},
		}},
		{"NAVEGAÇÃO", [][2]string{
			{km.PrevColumn, "Coluna anterior"},
			{km.NextColumn, "Próxima coluna"},
			{km.PrevTask, "Tarefa anterior"},
			{km.NextTask, "Próxima tarefa"},
		}},
		{"OUTROS", [][2]string{
			{km.ShowHelp, "Mostrar esta ajuda"},
			{km.Quit, "Sair"},
		}},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("QUADRO - Atalhos"))
	for _, section := range sections {
		b.WriteString("\n\n" + section.title)
		for _, row := range section.rows {
			fmt.Fprintf(&b, "\n  %-7s %s", row[0], row[1])
		}
	}
	b.WriteString("\n\n" + SubtleStyle.Render("Pressione qualquer tecla para fechar"))

	return HelpBoxStyle.Width(dialogWidth + 4).Render(b.String())
}
