// Package config handles loading and saving of the tutorial program settings.
package config

// Config holds all settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Scene    SceneConfig    `yaml:"scene"`
	Shaders  ShadersConfig  `yaml:"shaders"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// WindowConfig holds display and context settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// SceneConfig selects the program to run.
type SceneConfig struct {
	Name      string  `yaml:"name"` // rectangle, textured or cubes
	MixValue  float32 `yaml:"mix_value"`
	Offset    float32 `yaml:"offset"`
	Wireframe bool    `yaml:"wireframe"`
}

// ShadersConfig points at shader sources on disk. An empty Dir uses the
// sources built into the binary.
type ShadersConfig struct {
	Dir string `yaml:"dir"`
}

// TexturesConfig holds image paths for the textured scenes.
type TexturesConfig struct {
	Container string `yaml:"container"`
	Face      string `yaml:"face"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer helpers.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"` // where P saves PNG captures
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "LearnOpenGL",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Backend:    "sdl",
		},
		Scene: SceneConfig{
			Name:     "textured",
			MixValue: 0.2,
			Offset:   0.0,
		},
		Textures: TexturesConfig{
			Container: "assets/container.jpg",
			Face:      "assets/awesomeface.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}
