// Package tuning loads optional gameplay overrides from a TOML file.
//
// Example:
//
//	[board]
//	width = 12
//	height = 22
//
//	[[board.blocks]]
//	column = 0
//	row = 21
//	shape = "T"
//
//	[scoring]
//	line_points = [0, 40, 100, 300, 1200]
//	lines_per_level = 8
//	initial_tick = "700ms"
//	tick_floor = "50ms"
//
//	[timed]
//	time_limit = "2m"
package tuning

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
	"github.com/mcoot/blockgame-go/internal/services/scheduler"
	"github.com/mcoot/blockgame-go/internal/services/scoring"
)

// File mirrors the TOML layout. Unset fields keep their defaults.
type File struct {
	Board   Board   `toml:"board"`
	Scoring Scoring `toml:"scoring"`
	Timed   Timed   `toml:"timed"`
}

type Board struct {
	Width       int  `toml:"width"`
	Height      int  `toml:"height"`
	SpawnColumn *int `toml:"spawn_column"`
	SpawnRow    *int `toml:"spawn_row"`

	// Blocks preset the starting layout, coloured by shape letter
	Blocks []LayoutBlock `toml:"blocks"`
}

type LayoutBlock struct {
	Column int    `toml:"column"`
	Row    int    `toml:"row"`
	Shape  string `toml:"shape"`
}

type Scoring struct {
	LinePoints    []int         `toml:"line_points"`
	LinesPerLevel int           `toml:"lines_per_level"`
	InitialTick   time.Duration `toml:"initial_tick"`
	CoarseStep    time.Duration `toml:"coarse_step"`
	FineStep      time.Duration `toml:"fine_step"`
	TickFloor     time.Duration `toml:"tick_floor"`
}

type Timed struct {
	TimeLimit time.Duration `toml:"time_limit"`
}

// Settings are the fully resolved configs for a game
type Settings struct {
	Engine    engine.Config
	Scoring   scoring.Config
	Scheduler scheduler.Config
}

// Defaults returns the settings used when no tuning file is given
func Defaults() Settings {
	return Settings{
		Engine:    engine.DefaultConfig(),
		Scoring:   scoring.DefaultConfig(),
		Scheduler: scheduler.DefaultConfig(),
	}
}

// Load reads a tuning file and applies it over the defaults. Unknown keys are rejected.
func Load(path string) (Settings, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Settings{}, err
	}
	return f.Apply(Defaults())
}

// Parse decodes tuning from TOML text and applies it over the defaults
func Parse(data string) (Settings, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Settings{}, err
	}
	return f.Apply(Defaults())
}

// Apply overlays the file onto base and validates the result
func (f File) Apply(base Settings) (Settings, error) {
	s := base

	if f.Board.Width > 0 {
		s.Engine.Width = f.Board.Width
	}
	if f.Board.Height > 0 {
		s.Engine.Height = f.Board.Height
	}
	if f.Board.SpawnColumn != nil {
		s.Engine.SpawnColumn = *f.Board.SpawnColumn
	}
	if f.Board.SpawnRow != nil {
		s.Engine.SpawnRow = *f.Board.SpawnRow
	}

	if len(f.Board.Blocks) > 0 {
		layout := make([]model.Block, 0, len(f.Board.Blocks))
		for _, lb := range f.Board.Blocks {
			t, err := model.ParseShapeType(lb.Shape)
			if err != nil {
				return Settings{}, fmt.Errorf("board block at (%d,%d): %w", lb.Column, lb.Row, err)
			}
			layout = append(layout, model.Block{
				Coordinate: model.Coordinate{Column: lb.Column, Row: lb.Row},
				Color:      t.Color(),
			})
		}
		s.Engine.StartingLayout = layout
	}

	if len(f.Scoring.LinePoints) > 0 {
		s.Scoring.LinePoints = append([]int(nil), f.Scoring.LinePoints...)
	}
	if f.Scoring.LinesPerLevel > 0 {
		s.Scoring.LinesPerLevel = f.Scoring.LinesPerLevel
	}
	if f.Scoring.InitialTick > 0 {
		s.Scoring.InitialTickInterval = f.Scoring.InitialTick
	}
	if f.Scoring.CoarseStep > 0 {
		s.Scoring.CoarseTickStep = f.Scoring.CoarseStep
	}
	if f.Scoring.FineStep > 0 {
		s.Scoring.FineTickStep = f.Scoring.FineStep
	}
	if f.Scoring.TickFloor > 0 {
		s.Scoring.TickFloor = f.Scoring.TickFloor
	}

	if f.Timed.TimeLimit > 0 {
		s.Scheduler.TimeLimit = f.Timed.TimeLimit
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every component config
func (s Settings) Validate() error {
	if err := s.Engine.Validate(); err != nil {
		return err
	}
	if err := s.Scoring.Validate(); err != nil {
		return err
	}
	return s.Scheduler.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown tuning keys %s: %w", strings.Join(keys, ", "), model.ErrInvalidConfig)
}
