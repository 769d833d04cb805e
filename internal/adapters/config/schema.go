package config

// Packfile represents the structure of the pack.yaml configuration file.
type Packfile struct {
	Namespace     string         `yaml:"namespace" validate:"required,namespace"`
	Root          string         `yaml:"root"`
	Parallelism   int            `yaml:"parallelism" validate:"gte=0"`
	OutputTargets []TargetDTO    `yaml:"outputTargets" validate:"dive"`
	Components    []ComponentDTO `yaml:"components" validate:"dive"`
}

// TargetDTO represents an output target in the configuration.
type TargetDTO struct {
	Type      string `yaml:"type" validate:"required,oneof=webcomponent www dist docs stats"`
	Dir       string `yaml:"dir" validate:"required_if=Type webcomponent"`
	BuildDir  string `yaml:"buildDir"`
	Namespace string `yaml:"namespace" validate:"omitempty,namespace"`
}

// ComponentDTO represents a compiled component in the configuration.
type ComponentDTO struct {
	Tag      string     `yaml:"tag" validate:"required,tag_name"`
	Source   string     `yaml:"source" validate:"required"`
	Features []string   `yaml:"features"`
	Styles   []StyleDTO `yaml:"styles" validate:"dive"`
}

// StyleDTO represents the stylesheet of a component for one style mode.
// An empty mode is the default mode.
type StyleDTO struct {
	Mode string `yaml:"mode" validate:"omitempty,excludes=/"`
	File string `yaml:"file" validate:"required"`
}
