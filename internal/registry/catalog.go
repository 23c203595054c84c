package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"actionsearch/internal/domain"
)

// catalogFile is the on-disk layout of a YAML action catalog:
//
//	groups:
//	  - name: edit
//	    actions:
//	      - name: edit-undo
//	        label: _Undo
//	        shortcut: Ctrl+Z
type catalogFile struct {
	Groups []catalogGroup `yaml:"groups"`
}

type catalogGroup struct {
	Name    string          `yaml:"name"`
	Actions []catalogAction `yaml:"actions"`
}

type catalogAction struct {
	Name      string `yaml:"name"`
	Label     string `yaml:"label"`
	Tooltip   string `yaml:"tooltip"`
	Icon      string `yaml:"icon"`
	Shortcut  string `yaml:"shortcut"`
	Value     string `yaml:"value"`
	Toggle    bool   `yaml:"toggle"`
	Active    bool   `yaml:"active"`
	Sensitive *bool  `yaml:"sensitive"`
}

// LoadCatalog reads action groups from a YAML catalog and adds them to r.
func (r *Registry) LoadCatalog(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	groups, err := DecodeCatalog(f)
	if err != nil {
		return fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	for _, g := range groups {
		r.AddGroup(g)
	}
	return nil
}

// DecodeCatalog parses a YAML catalog. Actions are sensitive unless the
// catalog says otherwise.
func DecodeCatalog(r io.Reader) ([]*domain.ActionGroup, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	groups := make([]*domain.ActionGroup, 0, len(file.Groups))
	for _, g := range file.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("catalog group without a name")
		}
		group := &domain.ActionGroup{Name: g.Name}
		seen := make(map[string]bool, len(g.Actions))
		for _, a := range g.Actions {
			if a.Name == "" {
				return nil, fmt.Errorf("group %q: action without a name", g.Name)
			}
			if seen[a.Name] {
				return nil, fmt.Errorf("group %q: duplicate action %q", g.Name, a.Name)
			}
			seen[a.Name] = true

			sensitive := true
			if a.Sensitive != nil {
				sensitive = *a.Sensitive
			}
			group.Actions = append(group.Actions, &domain.Action{
				Name:      a.Name,
				Label:     a.Label,
				Tooltip:   a.Tooltip,
				Icon:      a.Icon,
				Shortcut:  a.Shortcut,
				Value:     a.Value,
				Toggle:    a.Toggle,
				Active:    a.Active,
				Sensitive: sensitive,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}
