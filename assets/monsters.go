package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

//go:embed monsters.yaml
var defaultMonsters []byte

// MonsterTemplate describes one kind of monster.
type MonsterTemplate struct {
	Name    string `yaml:"name"`
	Glyph   string `yaml:"glyph"`
	Color   string `yaml:"color"`
	MaxHP   int    `yaml:"max_hp"`
	Defense int    `yaml:"defense"`
	Power   int    `yaml:"power"`
}

// FG returns the template's foreground color, or red when the name is not a
// known tcell color.
func (m MonsterTemplate) FG() tcell.Color {
	if c := tcell.GetColor(m.Color); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorRed
}

// ErrNoMonsters is returned for a table without entries.
var ErrNoMonsters = errors.New("monster table is empty")

// ParseMonsters decodes and checks a YAML monster table.
func ParseMonsters(data []byte) ([]MonsterTemplate, error) {
	var table []MonsterTemplate
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding monster table: %w", err)
	}
	if len(table) == 0 {
		return nil, ErrNoMonsters
	}
	for i, m := range table {
		switch {
		case m.Name == "":
			return nil, fmt.Errorf("monster %d: missing name", i)
		case m.Glyph == "":
			return nil, fmt.Errorf("monster %q: missing glyph", m.Name)
		case m.MaxHP < 1:
			return nil, fmt.Errorf("monster %q: max_hp must be >= 1, got %d", m.Name, m.MaxHP)
		}
	}
	return table, nil
}

// LoadMonsters reads the table at path, or the embedded table when path is
// empty.
func LoadMonsters(path string) ([]MonsterTemplate, error) {
	if path == "" {
		return ParseMonsters(defaultMonsters)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading monster table: %w", err)
	}
	return ParseMonsters(data)
}
