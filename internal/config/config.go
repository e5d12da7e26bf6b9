package config

type Config struct {
	FPS        int
	Width      int
	Height     int
	MinScale   float64
	Workers    int
	ShowStats  bool
	ScorePath  string
	ScoresDir  string
	OutputPath string
}

// Default returns the settings used when flags leave them unset. Workers 0
// means "size from the machine" (see engine.DefaultWorkers).
func Default() *Config {
	return &Config{
		FPS:       30,
		Width:     1280,
		Height:    720,
		MinScale:  1.0,
		ScoresDir: "scores",
	}
}
