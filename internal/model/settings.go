package model

type Settings struct {
	ShowProgressBar bool
	EnableGlow      bool
}

func DefaultSettings() Settings {
	return Settings{
		ShowProgressBar: true,
		EnableGlow:      true,
	}
}
