package config

import (
	"bytes"
	_ "embed"
	"text/template"
)

// Defaults carries the built-in defaults rendered into the starter config.
type Defaults struct {
	Threads int
	Depth   int
	MinSize string
}

// starter contains the commented-out starter configuration.
//
//go:embed config.toml.tmpl
var starter string

// Render renders the starter configuration with the given defaults.
func Render(defaults Defaults) (string, error) {
	tmpl, err := template.New("config.toml").Parse(starter)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, defaults); err != nil {
		return "", err
	}

	return buf.String(), nil
}
