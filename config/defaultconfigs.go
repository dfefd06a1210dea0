package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		ShowPreview: true,
		Colors: ConfigColors{
			Background: "#2E303E",
			Slot:       "#232530",
			Focus:      "#343747",
			PlayerA:    "#E95379",
			PlayerB:    "#27D796",
		},
		Symbols: ConfigSymbols{
			Stone: '●',
			Slot:  '○',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Players: PlayersConfig{
			A: "Pink",
			B: "Teal",
		},
		FreezeMillis: 1500,
		Log: LogConfig{
			Level: "info",
		},
	}
}
