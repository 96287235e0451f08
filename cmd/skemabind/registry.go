package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtinTemplates []byte

// Template is one scaffold source the generator can clone from.
type Template struct {
	Name        string `yaml:"name"`
	Repo        string `yaml:"repo"`
	Description string `yaml:"description"`
}

// Registry lists the templates offered by `skemabind new`.
type Registry struct {
	Templates []Template `yaml:"templates"`
}

func (r Registry) find(name string) (Template, bool) {
	for _, t := range r.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// loadRegistry starts from the embedded registry and merges the user file at
// <UserConfigDir>/skemabind/templates.yaml when present: a user entry with a
// known name replaces the builtin, new names are appended.
func loadRegistry() (Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(builtinTemplates, &reg); err != nil {
		return Registry{}, fmt.Errorf("builtin templates: %w", err)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return reg, nil
	}
	b, err := os.ReadFile(filepath.Join(dir, "skemabind", "templates.yaml"))
	if err != nil {
		return reg, nil
	}
	var user Registry
	if err := yaml.Unmarshal(b, &user); err != nil {
		return Registry{}, fmt.Errorf("user templates: %w", err)
	}
	return mergeRegistries(reg, user), nil
}

func mergeRegistries(base, over Registry) Registry {
	out := Registry{Templates: append([]Template(nil), base.Templates...)}
	for _, t := range over.Templates {
		replaced := false
		for i, b := range out.Templates {
			if b.Name == t.Name {
				out.Templates[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			out.Templates = append(out.Templates, t)
		}
	}
	return out
}
