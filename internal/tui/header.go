package tui

// renderHeader draws the title banner across the full width.
func renderHeader(title string, width int) string {
	return headerStyle.Width(width - headerStyle.GetHorizontalBorderSize()).Render(title)
}
