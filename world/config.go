package world

import (
	"fmt"
)

// WorldConfig holds the rules of a game which are not hardcoded.
type WorldConfig struct {
	NCols           int64 `yaml:"NCols"`
	NRows           int64 `yaml:"NRows"`
	SpawnCol        int64 `yaml:"SpawnCol"`
	SpawnRow        int64 `yaml:"SpawnRow"`
	NormalDropTicks int64 `yaml:"NormalDropTicks"`
	SoftDropTicks   int64 `yaml:"SoftDropTicks"`
	RowBonus        int64 `yaml:"RowBonus"`
	NColors         int64 `yaml:"NColors"`
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		NCols:           10,
		NRows:           24,
		SpawnCol:        4,
		SpawnRow:        0,
		NormalDropTicks: 3,
		SoftDropTicks:   1,
		RowBonus:        100,
		NColors:         3,
	}
}

func (c WorldConfig) SpawnAnchor() Pt {
	return Pt{c.SpawnCol, c.SpawnRow}
}

// Level is what a World starts from: the rules and the initial contents of
// the grid. An empty Cells means an empty grid.
type Level struct {
	Config WorldConfig
	Cells  []int64
}

func DefaultLevel() Level {
	return Level{Config: DefaultWorldConfig()}
}

// MaxGridSide bounds both dimensions of a grid.
const MaxGridSide = 1000

// Validate reports the configurations a World can't be created from.
func (c WorldConfig) Validate() error {
	if c.NCols <= 0 || c.NRows <= 0 || c.NCols > MaxGridSide ||
		c.NRows > MaxGridSide {
		return fmt.Errorf("invalid grid size %dx%d", c.NCols, c.NRows)
	}
	if c.NormalDropTicks <= 0 || c.SoftDropTicks <= 0 {
		return fmt.Errorf("drop ticks must be positive, got %d and %d",
			c.NormalDropTicks, c.SoftDropTicks)
	}
	return nil
}

// Validate checks the configuration and that Cells, if present, covers the
// whole grid with piece ids.
func (l Level) Validate() error {
	if err := l.Config.Validate(); err != nil {
		return err
	}
	if len(l.Cells) == 0 {
		return nil
	}
	if int64(len(l.Cells)) != l.Config.NCols*l.Config.NRows {
		return fmt.Errorf("level has %d cells, a %dx%d grid needs %d",
			len(l.Cells), l.Config.NCols, l.Config.NRows,
			l.Config.NCols*l.Config.NRows)
	}
	for _, id := range l.Cells {
		if id < 0 {
			return fmt.Errorf("invalid piece id %d", id)
		}
	}
	return nil
}
