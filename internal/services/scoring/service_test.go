package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockgame-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	service, err := New(DefaultConfig())
	s.Require().NoError(err)
	s.service = service
}

func (s *ServiceSuite) newState() *model.GameState {
	return &model.GameState{
		Level:        1,
		TickInterval: s.service.InitialTickInterval(),
	}
}

// Config tests

func (s *ServiceSuite) TestDefaultConfigIsValid() {
	s.NoError(DefaultConfig().Validate())
}

func (s *ServiceSuite) TestValidateRejectsBadTables() {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty points", func(c *Config) { c.LinePoints = nil }},
		{"nonzero base", func(c *Config) { c.LinePoints = []int{10, 100} }},
		{"not increasing", func(c *Config) { c.LinePoints = []int{0, 100, 100} }},
		{"not rewarding multi clears", func(c *Config) { c.LinePoints = []int{0, 100, 200} }},
		{"zero lines per level", func(c *Config) { c.LinesPerLevel = 0 }},
		{"zero floor", func(c *Config) { c.TickFloor = 0 }},
		{"initial below floor", func(c *Config) { c.InitialTickInterval = 10 * time.Millisecond }},
		{"zero coarse step", func(c *Config) { c.CoarseTickStep = 0 }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			s.ErrorIs(cfg.Validate(), model.ErrInvalidConfig)
			_, err := New(cfg)
			s.ErrorIs(err, model.ErrInvalidConfig)
		})
	}
}

func (s *ServiceSuite) TestNewCopiesPointTable() {
	cfg := DefaultConfig()
	service, err := New(cfg)
	s.Require().NoError(err)

	cfg.LinePoints[1] = 99999
	s.Equal(DefaultConfig().LinePoints[1], service.BasePoints(1))
}

// Points tests

func (s *ServiceSuite) TestPointsAreMonotonicAndRewardMultiClears() {
	for _, cfg := range []Config{DefaultConfig(), withPoints(0, 40, 100, 300, 1200), withPoints(0, 10, 25)} {
		service, err := New(cfg)
		s.Require().NoError(err)

		single := service.BasePoints(1)
		for n := 1; n <= 8; n++ {
			s.Greater(service.BasePoints(n), service.BasePoints(n-1), "lines=%d", n)
			if n > 1 {
				s.Greater(service.BasePoints(n), n*single, "lines=%d", n)
			}
		}
	}
}

func (s *ServiceSuite) TestPointsScaleWithLevel() {
	for lines := 1; lines <= 4; lines++ {
		base := s.service.PointsFor(lines, 1)
		s.Equal(base*3, s.service.PointsFor(lines, 3))
	}
	s.Equal(0, s.service.PointsFor(0, 5))
	s.Equal(s.service.PointsFor(2, 1), s.service.PointsFor(2, 0))
}

// Level tests

func (s *ServiceSuite) TestLevelForLines() {
	per := DefaultConfig().LinesPerLevel
	s.Equal(1, s.service.LevelForLines(0))
	s.Equal(1, s.service.LevelForLines(per-1))
	s.Equal(2, s.service.LevelForLines(per))
	s.Equal(3, s.service.LevelForLines(2*per+1))
}

// Tick curve tests

func (s *ServiceSuite) TestTickCurveFromDefault() {
	expected := []time.Duration{500, 400, 300, 200, 100, 50, 50, 50}
	current := s.service.InitialTickInterval()
	for i, want := range expected {
		current = s.service.NextTickInterval(current)
		s.Equal(want*time.Millisecond, current, "step %d", i)
	}
}

func (s *ServiceSuite) TestTickCurveSteps() {
	cases := []struct {
		current time.Duration
		want    time.Duration
	}{
		{180, 80},
		{150, 50},
		{120, 50},
		{100, 50},
		{99, 50},
		{75, 50},
		{50, 50},
		{250, 150},
		{1000, 900},
	}
	for _, tc := range cases {
		got := s.service.NextTickInterval(tc.current * time.Millisecond)
		s.Equal(tc.want*time.Millisecond, got, "from %dms", tc.current)
	}
}

func (s *ServiceSuite) TestTickCurveWithCustomSteps() {
	service, err := New(Config{
		LinePoints:          []int{0, 100, 300},
		LinesPerLevel:       5,
		InitialTickInterval: 400 * time.Millisecond,
		CoarseTickStep:      150 * time.Millisecond,
		FineTickStep:        20 * time.Millisecond,
		TickFloor:           30 * time.Millisecond,
	})
	s.Require().NoError(err)

	expected := []time.Duration{250, 100, 80, 60, 40, 30, 30}
	current := service.InitialTickInterval()
	for i, want := range expected {
		current = service.NextTickInterval(current)
		s.Equal(want*time.Millisecond, current, "step %d", i)
	}
}

func (s *ServiceSuite) TestTickCurveNeverIncreasesOrUndershootsFloor() {
	cfg := DefaultConfig()
	for start := cfg.TickFloor; start <= time.Second; start += 7 * time.Millisecond {
		current := start
		for i := 0; i < 40; i++ {
			next := s.service.NextTickInterval(current)
			s.LessOrEqual(next, current)
			s.GreaterOrEqual(next, cfg.TickFloor)
			current = next
		}
	}
}

// ApplyLineClear tests

func (s *ServiceSuite) TestApplyLineClearNoLines() {
	state := s.newState()
	outcome := s.service.ApplyLineClear(state, 0)

	s.Equal(LineClearOutcome{}, outcome)
	s.Equal(0, state.Score)
	s.Equal(1, state.Level)
}

func (s *ServiceSuite) TestApplyLineClearAwardsPoints() {
	state := s.newState()
	outcome := s.service.ApplyLineClear(state, 2)

	s.Equal(s.service.PointsFor(2, 1), outcome.Points)
	s.Equal(outcome.Points, state.Score)
	s.Equal(2, state.TotalLinesCleared)
	s.Zero(outcome.LevelsGained)
	s.Equal(s.service.InitialTickInterval(), state.TickInterval)
}

func (s *ServiceSuite) TestApplyLineClearCrossesThreshold() {
	state := s.newState()
	per := DefaultConfig().LinesPerLevel
	state.TotalLinesCleared = per - 1

	outcome := s.service.ApplyLineClear(state, 1)

	s.Equal(1, outcome.LevelsGained)
	s.Equal(2, state.Level)
	s.Equal(s.service.NextTickInterval(s.service.InitialTickInterval()), state.TickInterval)
}

func (s *ServiceSuite) TestApplyLineClearCanGainSeveralLevels() {
	cfg := DefaultConfig()
	cfg.LinesPerLevel = 1
	service, err := New(cfg)
	s.Require().NoError(err)

	state := &model.GameState{Level: 1, TickInterval: cfg.InitialTickInterval}
	outcome := service.ApplyLineClear(state, 4)

	s.Equal(4, outcome.LevelsGained)
	s.Equal(5, state.Level)
	s.Equal(200*time.Millisecond, state.TickInterval)
}

func (s *ServiceSuite) TestScoreAndLevelMonotonicAcrossClears() {
	state := s.newState()
	prevScore, prevLevel, prevTick := state.Score, state.Level, state.TickInterval
	counts := []int{1, 0, 4, 2, 3, 1, 1, 4, 4, 4, 0, 2, 3, 4, 4, 4, 4, 1}
	for _, n := range counts {
		s.service.ApplyLineClear(state, n)
		s.GreaterOrEqual(state.Score, prevScore)
		s.GreaterOrEqual(state.Level, prevLevel)
		s.LessOrEqual(state.TickInterval, prevTick)
		s.GreaterOrEqual(state.TickInterval, DefaultConfig().TickFloor)
		prevScore, prevLevel, prevTick = state.Score, state.Level, state.TickInterval
	}
}

func withPoints(points ...int) Config {
	cfg := DefaultConfig()
	cfg.LinePoints = points
	return cfg
}
