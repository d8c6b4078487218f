package aimtrace

import (
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/render"
	"github.com/oomph-ac/aimtrace/settings"
	"github.com/oomph-ac/aimtrace/trajectory"
	"github.com/oomph-ac/aimtrace/utils"
	"github.com/sirupsen/logrus"
)

// Predictor predicts and draws the paths of the projectiles that the item held by a holder would
// launch. A Predictor is driven once per frame from a single goroutine.
type Predictor struct {
	Classifier launch.Classifier
	Simulator  *trajectory.Simulator
	Renderer   render.Renderer

	log *logrus.Logger
	// paths holds the paths predicted in the last frame. It is reset at the start of every frame.
	paths []trajectory.Path
}

// New returns a Predictor configured by the settings passed, predicting paths in the world and
// against the entities passed. The entity source may be nil, in which case entities are never hit.
func New(log *logrus.Logger, s settings.Settings, w trajectory.World, e trajectory.EntitySource) *Predictor {
	if log == nil {
		log = logrus.New()
	}
	opts := s.Options()
	if log.IsLevelEnabled(logrus.TraceLevel) {
		opts.Debugf = log.Tracef
	}
	return &Predictor{
		Classifier: s.Classifier(),
		Simulator:  &trajectory.Simulator{World: w, Entities: e, Options: opts},
		Renderer:   s.Renderer(),
		log:        log,
		paths:      make([]trajectory.Path, 0, 3),
	}
}

// Frame predicts the paths of the item held by the holder and draws them to the target, relative to
// the camera. It returns the amount of paths drawn. Nothing is drawn if any of the holder, camera or
// target is nil, if there is no world, or if the held item does not launch anything right now.
func (p *Predictor) Frame(holder *launch.Holder, cam *render.Camera, t render.Target) int {
	clear(p.paths)
	p.paths = p.paths[:0]
	if holder == nil || cam == nil || t == nil || p.Simulator == nil || p.Simulator.World == nil {
		return 0
	}

	d := p.Classifier.Classify(*holder)
	if d.Kind == launch.KindNone {
		return 0
	}
	p.log.Debugf("predicting %s paths: %s", d.Kind, utils.PrettyParameters(map[string]any{
		"class": d.Class,
		"yaw":   holder.Yaw,
		"pitch": holder.Pitch,
		"ticks": holder.UseTicks,
	}))

	l := trajectory.Launcher{
		Position:  holder.Position,
		EyeHeight: holder.EyeHeight,
		Yaw:       holder.Yaw,
		Pitch:     holder.Pitch,
		UseTicks:  holder.UseTicks,
		Shooter:   holder.RuntimeID,
	}
	drawn := 0
	for _, offset := range d.YawOffsets {
		path := p.Simulator.Simulate(l, d.Class, offset)
		p.paths = append(p.paths, path)
		if path.Empty() {
			continue
		}
		p.Renderer.Render(path, *cam, t)
		drawn++
		end, _ := path.End()
		p.log.Debugf("path (yaw offset %.1f): %s", offset, utils.PrettyParameters(map[string]any{
			"points": len(path.Points),
			"stop":   path.Stop,
			"end":    game.RoundVec64(end, 3),
		}))
	}
	return drawn
}

// Paths returns the paths predicted in the last frame. The slice is only valid until the next call
// to Frame.
func (p *Predictor) Paths() []trajectory.Path {
	return p.paths
}
