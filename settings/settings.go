package settings

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/oerror"
	"github.com/oomph-ac/aimtrace/render"
	"github.com/oomph-ac/aimtrace/trajectory"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// ErrExists is returned by SaveDefault if there already is a file at the path passed.
var ErrExists = oerror.New("settings file already exists")

// Settings contains everything that can be configured about predicting and drawing paths.
type Settings struct {
	Render struct {
		// Style is one of "line", "particles" or "preview".
		Style        string
		PathColour   []float64
		ImpactColour []float64
		// ParticleInterval is the amount of samples between two particles.
		ParticleInterval int
		// PreviewPoints is the amount of samples drawn in the preview style.
		PreviewPoints int
	}
	Simulation struct {
		// Substeps is the amount of integration substeps per tick.
		Substeps int
		// PointLimit is the maximum amount of samples of a single path.
		PointLimit int
		// MaxTicks limits the amount of ticks simulated. Zero means no limit.
		MaxTicks int
	}
	Launch struct {
		// SpreadAngle is the yaw offset in degrees of the side projectiles of a multishot crossbow.
		// Zero means the default of 15.
		SpreadAngle float64
	}
	Log struct {
		Level string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	r := render.DefaultRenderer()
	s.Render.Style = r.Style.String()
	s.Render.PathColour = colourToSlice(r.PathColour)
	s.Render.ImpactColour = colourToSlice(r.ImpactColour)
	s.Render.ParticleInterval = r.ParticleInterval
	s.Render.PreviewPoints = r.PreviewPoints

	s.Simulation.Substeps = trajectory.DefaultSubsteps
	s.Simulation.PointLimit = trajectory.DefaultPointLimit

	s.Launch.SpreadAngle = launch.DefaultSpreadAngle
	s.Log.Level = logrus.InfoLevel.String()
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, ErrExists is returned.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return ErrExists
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return oerror.New("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.New("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from the settings file at the path passed. Values missing or left at zero
// in the file take their default. The settings are validated before being returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, oerror.New("error reading settings: %v", err)
	}
	return Decode(data)
}

// Decode decodes and validates TOML encoded settings.
func Decode(data []byte) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, oerror.New("error decoding settings: %v", err)
	}
	s.fillDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// fillDefaults replaces every zero value with its default. MaxTicks has no default other than zero.
func (s *Settings) fillDefaults() {
	d := DefaultSettings()
	if s.Render.Style == "" {
		s.Render.Style = d.Render.Style
	}
	if len(s.Render.PathColour) == 0 {
		s.Render.PathColour = d.Render.PathColour
	}
	if len(s.Render.ImpactColour) == 0 {
		s.Render.ImpactColour = d.Render.ImpactColour
	}
	if s.Render.ParticleInterval == 0 {
		s.Render.ParticleInterval = d.Render.ParticleInterval
	}
	if s.Render.PreviewPoints == 0 {
		s.Render.PreviewPoints = d.Render.PreviewPoints
	}
	if s.Simulation.Substeps == 0 {
		s.Simulation.Substeps = d.Simulation.Substeps
	}
	if s.Simulation.PointLimit == 0 {
		s.Simulation.PointLimit = d.Simulation.PointLimit
	}
	if s.Launch.SpreadAngle == 0 {
		s.Launch.SpreadAngle = d.Launch.SpreadAngle
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
}

// Validate returns an error describing the first invalid value of the settings.
func (s Settings) Validate() error {
	if _, err := render.ParseStyle(s.Render.Style); err != nil {
		return oerror.New("Render.Style: %v", err)
	}
	if err := validateColour(s.Render.PathColour); err != nil {
		return oerror.New("Render.PathColour: %v", err)
	}
	if err := validateColour(s.Render.ImpactColour); err != nil {
		return oerror.New("Render.ImpactColour: %v", err)
	}
	if s.Render.ParticleInterval < 1 {
		return oerror.New("Render.ParticleInterval must be at least 1, got %d", s.Render.ParticleInterval)
	}
	if s.Render.PreviewPoints < 1 {
		return oerror.New("Render.PreviewPoints must be at least 1, got %d", s.Render.PreviewPoints)
	}
	if s.Simulation.Substeps < 1 || s.Simulation.Substeps > 64 {
		return oerror.New("Simulation.Substeps must be between 1 and 64, got %d", s.Simulation.Substeps)
	}
	if s.Simulation.PointLimit < 1 || s.Simulation.PointLimit > trajectory.DefaultPointLimit {
		return oerror.New("Simulation.PointLimit must be between 1 and %d, got %d", trajectory.DefaultPointLimit, s.Simulation.PointLimit)
	}
	if s.Simulation.MaxTicks < 0 {
		return oerror.New("Simulation.MaxTicks must not be negative, got %d", s.Simulation.MaxTicks)
	}
	if s.Launch.SpreadAngle <= 0 || s.Launch.SpreadAngle > 90 {
		return oerror.New("Launch.SpreadAngle must be above 0 and at most 90, got %v", s.Launch.SpreadAngle)
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return oerror.New("Log.Level: %v", err)
	}
	return nil
}

// Renderer returns the path renderer configured by the settings. The settings must be valid.
func (s Settings) Renderer() render.Renderer {
	style, _ := render.ParseStyle(s.Render.Style)
	return render.Renderer{
		Style:            style,
		PathColour:       colourFromSlice(s.Render.PathColour),
		ImpactColour:     colourFromSlice(s.Render.ImpactColour),
		ParticleInterval: s.Render.ParticleInterval,
		PreviewPoints:    s.Render.PreviewPoints,
	}
}

// Options returns the simulation options configured by the settings.
func (s Settings) Options() trajectory.Options {
	return trajectory.Options{
		Substeps:   s.Simulation.Substeps,
		PointLimit: s.Simulation.PointLimit,
		MaxTicks:   s.Simulation.MaxTicks,
	}
}

// Classifier returns the launch classifier configured by the settings.
func (s Settings) Classifier() launch.Classifier {
	return launch.Classifier{SpreadAngle: s.Launch.SpreadAngle}
}

// LogLevel returns the configured log level, or logrus.InfoLevel if it is invalid.
func (s Settings) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func validateColour(c []float64) error {
	if len(c) != 4 {
		return oerror.New("expected 4 components, got %d", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 1 {
			return oerror.New("component %v out of range [0, 1]", v)
		}
	}
	return nil
}

func colourToSlice(c mgl32.Vec4) []float64 {
	return []float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}
}

func colourFromSlice(c []float64) mgl32.Vec4 {
	var v mgl32.Vec4
	for i := 0; i < len(c) && i < 4; i++ {
		v[i] = float32(c[i])
	}
	return v
}
