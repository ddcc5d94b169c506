// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower tuning file and overrides TowerLibrary.
// The file holds a map keyed by the tower tag ("ARROW", "FLAME", ...).
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var raw map[string]TowerDefinition
	if err := json.Unmarshal(file, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for tag, def := range raw {
		kind, ok := ParseTowerKind(tag)
		if !ok {
			return fmt.Errorf("unknown tower tag %q in %s", tag, path)
		}
		if def.FireRate <= 0 {
			return fmt.Errorf("tower %q: fire_rate must be positive", tag)
		}
		TowerLibrary[kind] = def
	}
	return nil
}

// LoadLevelDefinition reads an authored level file and returns it.
func LoadLevelDefinition(path string) (LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var level LevelDefinition
	if err := json.Unmarshal(file, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if len(level.Waypoints) < 2 {
		return LevelDefinition{}, fmt.Errorf("level %s: needs at least two waypoints", path)
	}
	return level, nil
}
