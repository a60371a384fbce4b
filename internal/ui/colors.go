package ui

// The Color* helpers return the escape sequence of the active theme, or an
// empty string when colors are disabled.

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorCyan() string      { return GetCurrentTheme().Info }
func ColorGrey() string      { return GetCurrentTheme().Secondary }

// ColorProvider adapts the active theme to apperrors.ColorProvider.
type ColorProvider struct{}

func (ColorProvider) Red() string    { return ColorRed() }
func (ColorProvider) Yellow() string { return ColorYellow() }
func (ColorProvider) Reset() string  { return ColorReset() }
