package color

import "github.com/muesli/termenv"

var profile = termenv.ColorProfile()

// Enable turns colored output on or off; off renders plain text
func Enable(enable bool) {
	if enable {
		profile = termenv.ColorProfile()
	} else {
		profile = termenv.Ascii
	}
}

// IsEnabled reports whether colored output is active
func IsEnabled() bool {
	return profile != termenv.Ascii
}

func colorize(c termenv.ANSIColor, text string) string {
	if profile == termenv.Ascii {
		return text
	}
	return termenv.String(text).Foreground(profile.Convert(c)).String()
}

func Red(text string) string {
	return colorize(termenv.ANSIRed, text)
}

func BrightRed(text string) string {
	return colorize(termenv.ANSIBrightRed, text)
}

func Green(text string) string {
	return colorize(termenv.ANSIGreen, text)
}

func Yellow(text string) string {
	return colorize(termenv.ANSIYellow, text)
}

func Cyan(text string) string {
	return colorize(termenv.ANSICyan, text)
}

func Gray(text string) string {
	return colorize(termenv.ANSIBrightBlack, text)
}

// Bold renders text bold when color is enabled
func Bold(text string) string {
	if profile == termenv.Ascii {
		return text
	}
	return termenv.String(text).Bold().String()
}
