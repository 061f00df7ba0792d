package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thPlainTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// thPalette builds a theme from a base palette: idle blocks use the plain
// foreground, the other states draw the background color on a state color.
func thPalette(name, bg, fg, dim, accent, ok, warn, crit string) Theme {
	return Theme{
		Name:        name,
		Idle:        Colors{Fg: fg, Bg: bg},
		Info:        Colors{Fg: bg, Bg: accent},
		Good:        Colors{Fg: bg, Bg: ok},
		Warning:     Colors{Fg: bg, Bg: warn},
		Critical:    Colors{Fg: bg, Bg: crit},
		Separator:   "|",
		SeparatorFg: dim,
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return thPalette("default", "#1e1e1e", "#d4d4d4", "#6b6b6b", "#7C3AED", "#4ec970", "#e5c07b", "#e06c75")
}

// thPlainTheme uses the terminal's own colors everywhere.
func thPlainTheme() Theme {
	return Theme{Name: "plain", Separator: "|"}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return thPalette("gruvbox", "#282828", "#ebdbb2", "#928374", "#fe8019", "#b8bb26", "#fabd2f", "#fb4934")
}

// thNordTheme returns the arctic, north-bluish Nord theme.
func thNordTheme() Theme {
	return thPalette("nord", "#2e3440", "#eceff4", "#4c566a", "#88c0d0", "#a3be8c", "#ebcb8b", "#bf616a")
}

// thCatppuccinTheme returns the Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return thPalette("catppuccin", "#1e1e2e", "#cdd6f4", "#6c7086", "#cba6f7", "#a6e3a1", "#f9e2af", "#f38ba8")
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return thPalette("dracula", "#282a36", "#f8f8f2", "#6272a4", "#bd93f9", "#50fa7b", "#f1fa8c", "#ff5555")
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return thPalette("tokyo-night", "#1a1b26", "#c0caf5", "#565f89", "#7aa2f7", "#9ece6a", "#e0af68", "#f7768e")
}
