// Package profile persists named column selections so a filter can be
// replayed without the interactive prompt.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile is a saved column selection.
type Profile struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []string `yaml:"columns" json:"columns"`
}

type store struct {
	Profiles []Profile `yaml:"profiles"`
}

// DefaultPath returns the profile file location, ~/.sheetpick/profiles.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sheetpick", "profiles.yaml")
	}
	return filepath.Join(home, ".sheetpick", "profiles.yaml")
}

// Load reads all profiles from path. A missing file is not an error — it
// just means no profiles have been saved yet.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read profiles file %s: %w", path, err)
	}

	var s store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid profiles YAML in %s: %w", path, err)
	}

	if err := validate(s.Profiles); err != nil {
		return nil, fmt.Errorf("invalid profiles file %s: %w", path, err)
	}
	return s.Profiles, nil
}

// Save writes the profile list to path, creating the parent directory if
// needed.
func Save(path string, profiles []Profile) error {
	if err := validate(profiles); err != nil {
		return err
	}

	data, err := yaml.Marshal(store{Profiles: profiles})
	if err != nil {
		return fmt.Errorf("could not encode profiles: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write profiles file %s: %w", path, err)
	}
	return nil
}

// Get finds a profile by name.
func Get(profiles []Profile, name string) (*Profile, error) {
	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i], nil
		}
	}

	available := make([]string, len(profiles))
	for i, p := range profiles {
		available[i] = p.Name
	}
	return nil, fmt.Errorf("profile %q not found — available profiles: %v", name, available)
}

// Put replaces the profile with the same name or appends a new one.
func Put(profiles []Profile, p Profile) []Profile {
	for i := range profiles {
		if profiles[i].Name == p.Name {
			profiles[i] = p
			return profiles
		}
	}
	return append(profiles, p)
}

// Delete removes a profile by name. It is an error if no such profile exists.
func Delete(profiles []Profile, name string) ([]Profile, error) {
	for i := range profiles {
		if profiles[i].Name == name {
			return append(profiles[:i], profiles[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", name)
}

func validate(profiles []Profile) error {
	seen := make(map[string]bool)
	for i, p := range profiles {
		if p.Name == "" {
			return fmt.Errorf("profile %d is missing a name", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate profile name %q", p.Name)
		}
		seen[p.Name] = true

		if len(p.Columns) == 0 {
			return fmt.Errorf("profile %q has no columns", p.Name)
		}
	}
	return nil
}
