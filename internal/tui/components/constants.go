package components

const (
	TaskCardHeight       = 6 // TaskCardHeight is the fixed height of the task card
	columnBorderOverhead = 3 // top border + bottom padding + bottom border
	headerLines          = 1 // column name and count
	topIndicatorLines    = 1 // empty line or "▲ more above"
	cardChrome           = 4 // card border and padding on both sides

	// Dialog footer/help text strings
	PickerFooterConfirm = "Enter: confirmar  Esc: cancelar"
	ConfirmFooter       = "[y] sim  [n] não"
	AckFooter           = "Enter: OK"
	DetailFooter        = "[e] editar  [s] status  [d] excluir  Esc: fechar"
	emptyColumnMessage  = "Nenhuma tarefa"
	moreAboveIndicator  = "▲ mais acima"
	moreBelowIndicator  = "▼ mais abaixo"
)
