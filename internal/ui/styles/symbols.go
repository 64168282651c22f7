package styles

// Symbols prefixed to per-candidate report lines
const (
	SymbolOK   = "✓"
	SymbolWarn = "⚠"
	SymbolFail = "✗"
)

// OK returns a success-styled line.
func OK(text string) string {
	return Render(SuccessStyle, SymbolOK) + " " + text
}

// Warn returns a warning-styled line.
func Warn(text string) string {
	return Render(WarningStyle, SymbolWarn) + " " + text
}

// Fail returns an error-styled line.
func Fail(text string) string {
	return Render(ErrorStyle, SymbolFail) + " " + text
}
