package config

// File represents the structure of the roam.yaml configuration file.
type File struct {
	Listen   string `yaml:"listen"`
	Source   string `yaml:"source"`
	Player   string `yaml:"player"`
	Public   string `yaml:"public"`
	Debounce string `yaml:"debounce"`
	Log      LogDTO `yaml:"log"`
	Trace    *bool  `yaml:"trace"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	JSON *bool `yaml:"json"`
}
