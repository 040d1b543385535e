package config

// Varcssfile represents the structure of the varcss.yaml configuration file.
type Varcssfile struct {
	Document string    `yaml:"document"`
	Export   ExportDTO `yaml:"export"`
	Log      LogDTO    `yaml:"log"`
}

// ExportDTO holds the default export selection.
type ExportDTO struct {
	Root              string `yaml:"root"`
	Theme             string `yaml:"theme"`
	UseOverrideSyntax bool   `yaml:"useOverrideSyntax"`
}

// LogDTO configures log output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
