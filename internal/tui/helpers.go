package tui

// truncate shortens a string to max runes with ellipsis. Slicing runes, not
// bytes, keeps multibyte names intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
