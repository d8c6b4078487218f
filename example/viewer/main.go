package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace"
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/item"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/oerror"
	"github.com/oomph-ac/aimtrace/render"
	"github.com/oomph-ac/aimtrace/settings"
	"github.com/oomph-ac/aimtrace/trajectory"
	"github.com/oomph-ac/aimtrace/world"
	"github.com/sirupsen/logrus"
)

const (
	tickRate    = 50 * time.Millisecond
	rotateStep  = 2.0
	defaultPath = "settings.toml"
)

// The following program draws the predicted path of the item held in a scene to the terminal, seen
// from the side of the holder.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./viewer <scene.toml> [settings.toml]")
		return
	}
	settingsPath := defaultPath
	if len(os.Args) > 2 {
		settingsPath = os.Args[2]
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, AttachStacktrace: true}); err != nil {
			fmt.Printf("unable to initialize sentry: %v\n", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	s, err := loadSettings(settingsPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	f, err := os.OpenFile("viewer.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetOutput(f)
	logger.SetLevel(s.LogLevel())

	w, holder, err := world.LoadScene(os.Args[1])
	if err != nil {
		logger.Errorf("unable to load scene: %v", err)
		fmt.Println(err)
		os.Exit(1)
	}
	logger.Infof("loaded scene %s with %d entities, holding %q", os.Args[1], w.EntityCount(), holder.MainHand.Item)

	v, err := newView(logger, aimtrace.New(logger, s, w, w), w, holder)
	if err != nil {
		logger.Errorf("unable to create screen: %v", err)
		fmt.Println(err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			v.screen.Fini()
			logger.Errorf("viewer panic: %v", r)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("scene", os.Args[1])
				scope.SetTag("item", holder.MainHand.Item)
			})
			hub.Recover(oerror.New("%v", r))
			hub.Flush(time.Second * 5)
			panic(r)
		}
	}()
	v.run()
	v.screen.Fini()
}

// loadSettings loads the settings at the path passed, writing the default settings there first if
// the file does not exist yet.
func loadSettings(path string) (settings.Settings, error) {
	if err := settings.SaveDefault(path); err != nil && !errors.Is(err, settings.ErrExists) {
		return settings.Settings{}, err
	}
	return settings.Load(path)
}

// view is the terminal program state.
type view struct {
	log       *logrus.Logger
	screen    tcell.Screen
	predictor *aimtrace.Predictor
	world     *world.World
	holder    launch.Holder
	drawn     int
}

func newView(log *logrus.Logger, p *aimtrace.Predictor, w *world.World, holder launch.Holder) (*view, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &view{log: log, screen: screen, predictor: p, world: w, holder: holder}, nil
}

func (v *view) run() {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(v.screen, events, done)

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			if v.holder.Using {
				v.holder.UseTicks++
			}
			v.draw()
		}
	}
}

// pollEvents sends the events of the screen to the channel passed until the screen is finalised or
// done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent handles a terminal event and returns false if the program should exit.
func (v *view) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.holder.Yaw -= rotateStep
		case tcell.KeyRight:
			v.holder.Yaw += rotateStep
		case tcell.KeyUp:
			v.holder.Pitch = max(v.holder.Pitch-rotateStep, -90)
		case tcell.KeyDown:
			v.holder.Pitch = min(v.holder.Pitch+rotateStep, 90)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.toggleUse()
			case 't':
				v.aimAtNearest()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// toggleUse starts or stops using the held item. A crossbow is loaded once it was drawn long enough.
func (v *view) toggleUse() {
	h := &v.holder
	if !h.Using {
		h.Using, h.UseTicks = true, 0
		return
	}
	if item.Lookup(h.MainHand.Item) == item.ClassCrossbow && h.UseTicks >= crossbowLoadTicks {
		h.MainHand.Charged = true
	}
	h.Using = false
	v.log.Debugf("stopped using %s after %d ticks", h.MainHand.Item, h.UseTicks)
}

// aimAtNearest rotates the holder to look at the centre of the closest attackable entity.
func (v *view) aimAtNearest() {
	eye := v.holder.Position.Add(mgl64.Vec3{0, v.holder.EyeHeight})
	area := cube.Box(-aimRange, -aimRange, -aimRange, aimRange, aimRange, aimRange).Translate(eye)
	entities := v.world.EntitiesWithin(area, func(e trajectory.Entity) bool {
		return e.RuntimeID() != v.holder.RuntimeID && e.Attackable() && !e.Spectator()
	})

	var (
		target  mgl64.Vec3
		minDist = math.MaxFloat64
	)
	for _, e := range entities {
		bb := e.BBox()
		centre := bb.Min().Add(bb.Max()).Mul(0.5)
		if dist := centre.Sub(eye).LenSqr(); dist < minDist {
			target, minDist = centre, dist
		}
	}
	if minDist == math.MaxFloat64 {
		return
	}
	v.holder.Yaw, v.holder.Pitch = game.RotationToPoint(eye, target)
}

// aimRange is how far away an entity may be to be aimed at.
const aimRange = 64.0

// crossbowLoadTicks is the amount of ticks a crossbow without Quick Charge takes to load.
const crossbowLoadTicks = 25

func (v *view) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	proj := newProjection(v.holder, width, height)

	drawScene(v.screen, v.world, proj)
	target := &screenTarget{screen: v.screen, proj: proj}
	cam := render.Camera{Position: v.holder.Position}
	v.drawn = v.predictor.Frame(&v.holder, &cam, target)
	drawHolder(v.screen, proj)

	status := fmt.Sprintf(" %s | yaw %.0f pitch %.0f | using %v (%d ticks) | paths %d | arrows: aim  t: target  space: use  q: quit",
		v.holder.MainHand.Item, v.holder.Yaw, v.holder.Pitch, v.holder.Using, v.holder.UseTicks, v.drawn)
	drawText(v.screen, 0, height-1, status, tcell.StyleDefault.Reverse(true))
	v.screen.Show()
}
