// Package game hosts the deck in an ebiten window: it polls pointer and
// keyboard input, drives the rotation engine, the deck and the HUD cursor once
// per tick, and draws the turntable.
package game

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/vinyl-deck/internal/config"
	"github.com/iburimskiy/vinyl-deck/internal/cursor"
	"github.com/iburimskiy/vinyl-deck/internal/deck"
	"github.com/iburimskiy/vinyl-deck/internal/input"
	"github.com/iburimskiy/vinyl-deck/internal/rotation"
	"github.com/iburimskiy/vinyl-deck/internal/ui"
)

const grooveCount = 14

type Game struct {
	cfg *config.Config
	log *slog.Logger

	deck    *deck.Deck
	engine  *rotation.Engine
	pointer input.Tracker
	cursor  *cursor.Cursor
	layout  ui.Layout
	list    ui.List

	// record
	angle    float64
	trail    *angleTrail
	armAngle float64
	labels   map[string]*ebiten.Image

	// button state
	pressedButton ui.Button
	pressedRow    int
	pressedMore   bool
	shownIndex    int

	lastErr error
}

// New wires the deck, engine and cursor together.
func New(cfg *config.Config, tracks []deck.Track, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		cfg:        cfg,
		log:        logger,
		deck:       deck.New(tracks, logger),
		cursor:     cursor.New(cfg.Cursor.TrailFactor),
		trail:      newAngleTrail(cfg.Vinyl.TrailSize),
		armAngle:   cfg.ToneArm.RestAngle,
		labels:     map[string]*ebiten.Image{},
		pressedRow: -1,
	}
	g.relayout()

	params := rotation.Params{
		Friction:   cfg.Vinyl.Friction,
		Threshold:  cfg.Vinyl.MomentumThreshold,
		SpinRate:   cfg.Vinyl.SpinRate,
		PulseTicks: cfg.PulseTicks(),
	}
	g.engine = rotation.New(params, g.deck, g, g)
	g.deck.OnPlay = g.engine.CancelMomentum
	g.deck.OnRestart = g.engine.Pulse
	return g
}

// SetRotation implements rotation.Sink.
func (g *Game) SetRotation(deg float64) {
	g.angle = deg
}

// Center implements rotation.Bounds.
func (g *Game) Center() (float64, float64) {
	return g.layout.Record.X, g.layout.Record.Y
}

func (g *Game) relayout() {
	g.layout = ui.NewLayout(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Vinyl.Radius, len(g.deck.Tracks()))
	g.list = ui.List{Top: g.list.Top, Visible: len(g.layout.Rows), Total: len(g.deck.Tracks())}
	g.list.Clamp()
	g.list.Reveal(g.deck.Index())
	g.shownIndex = g.deck.Index()
}

func (g *Game) Update() error {
	ev := g.pointer.Update(pollPointer())
	g.handlePointer(ev)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.deck.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.deck.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.deck.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openTrackList()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.list.Scroll(-int(math.Copysign(1, wy)))
	}
	if i := g.deck.Index(); i != g.shownIndex {
		g.list.Reveal(i)
		g.shownIndex = i
	}
	if p, ok := g.pointer.Position(); ok {
		g.cursor.Hovering = g.layout.Interactive(p.X, p.Y)
	}

	g.engine.Tick()
	g.trail.push(g.angle)
	g.deck.Advance(g.cfg.TickDuration())
	g.cursor.Tick()

	target := g.cfg.ToneArm.RestAngle
	if g.deck.IsPlaying() {
		target = g.cfg.ToneArm.PlayAngle
	}
	g.armAngle = cursor.Ease(g.armAngle, target, g.cfg.ToneArm.Easing)

	return nil
}

// pollPointer reads the primary pointer. An active touch wins over the mouse.
func pollPointer() input.Raw {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return input.Raw{Source: input.SourceTouch, Pressed: true, X: float64(x), Y: float64(y)}
	}
	x, y := ebiten.CursorPosition()
	return input.Raw{
		Source:  input.SourceMouse,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       float64(x),
		Y:       float64(y),
	}
}

func (g *Game) handlePointer(ev input.Event) {
	if ev.Kind == input.None {
		return
	}
	x, y := ev.Sample.X, ev.Sample.Y
	g.cursor.Move(x, y)

	switch ev.Kind {
	case input.Down:
		if b := g.layout.ButtonAt(x, y); b != ui.NoButton {
			g.pressedButton = b
			return
		}
		if row := g.layout.RowAt(x, y); row >= 0 {
			g.pressedRow = row
			return
		}
		if g.layout.OnMore(x, y) {
			g.pressedMore = true
			return
		}
		if g.layout.Record.Contains(x, y) {
			g.engine.BeginDrag(ev.Sample)
		}
	case input.Move:
		g.engine.ContinueDrag(ev.Sample)
	case input.Up:
		g.engine.EndDrag()
		if g.pressedButton != ui.NoButton && g.layout.ButtonAt(x, y) == g.pressedButton {
			g.click(g.pressedButton)
		}
		if g.pressedRow >= 0 && g.layout.RowAt(x, y) == g.pressedRow {
			g.deck.Select(g.list.Track(g.pressedRow))
		}
		if g.pressedMore && g.layout.OnMore(x, y) {
			g.list.Page()
		}
		g.pressedButton = ui.NoButton
		g.pressedRow = -1
		g.pressedMore = false
	}
}

func (g *Game) click(b ui.Button) {
	switch b {
	case ui.PrevButton:
		g.deck.Prev()
	case ui.PlayButton:
		g.deck.Toggle()
	case ui.NextButton:
		g.deck.Next()
	case ui.OpenButton:
		g.openTrackList()
	}
}

func (g *Game) openTrackList() {
	if err := g.openTrackListDialog(); err != nil {
		g.log.Error("loading track list failed", "error", err)
		g.lastErr = err
	}
}

func (g *Game) openTrackListDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Track List"),
		zenity.FileFilters{{
			Name:     "Track list",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.LoadTrackList(filename)
}

// LoadTrackList replaces the deck's tracks with the CSV at path.
func (g *Game) LoadTrackList(path string) error {
	tracks, err := deck.LoadTracksFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	g.deck.SetTracks(tracks)
	g.relayout()
	g.lastErr = nil
	g.log.Info("track list loaded", "path", path, "tracks", len(tracks))
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 13, B: 12, A: 255})

	g.drawRecord(screen)
	g.drawTrail(screen)
	g.drawToneArm(screen)
	g.drawNowPlaying(screen)
	g.drawButtons(screen)
	g.drawTrackList(screen)
	g.drawCursor(screen)

	status := "Paused - drag the record, Space to play"
	if g.deck.IsPlaying() {
		status = "Playing - Space to pause, Left/Right to change track"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawRecord(screen *ebiten.Image) {
	rec := g.layout.Record
	cx, cy, r := float32(rec.X), float32(rec.Y), float32(rec.R)

	vector.DrawFilledCircle(screen, cx, cy, r, color.RGBA{R: 8, G: 8, B: 8, A: 255}, true)
	for i := 0; i < grooveCount; i++ {
		gr := r * (0.42 + 0.55*float32(i)/grooveCount)
		shade := uint8(28 + 6*(i%3))
		vector.StrokeCircle(screen, cx, cy, gr, 1, color.RGBA{R: shade, G: shade, B: shade, A: 255}, true)
	}

	labelR := rec.R * 0.36
	if img := g.label(g.deck.Current().Art); img != nil {
		op := &ebiten.DrawImageOptions{}
		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(2*labelR/w, 2*labelR/h)
		op.GeoM.Rotate(radians(g.angle))
		op.GeoM.Translate(rec.X, rec.Y)
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledCircle(screen, cx, cy, float32(labelR), labelColor(g.deck.Index(), len(g.deck.Tracks())), true)
	}

	// index mark shows the rotation
	a := radians(g.angle)
	x1 := rec.X + math.Cos(a)*labelR*0.3
	y1 := rec.Y + math.Sin(a)*labelR*0.3
	x2 := rec.X + math.Cos(a)*labelR
	y2 := rec.Y + math.Sin(a)*labelR
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 3, color.RGBA{R: 240, G: 236, B: 228, A: 255}, true)

	vector.DrawFilledCircle(screen, cx, cy, 5, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

// label loads and caches the art for path. Missing art falls back to a
// plain label and is not retried.
func (g *Game) label(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if img, ok := g.labels[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		g.log.Warn("label art unavailable", "path", path, "error", err)
		img = nil
	}
	g.labels[path] = img
	return img
}

func (g *Game) drawTrail(screen *ebiten.Image) {
	rec := g.layout.Record
	angles := g.trail.snapshot(g.cfg.Vinyl.TrailSize)
	for i, deg := range angles {
		fade := float64(i+1) / float64(len(angles))
		a := radians(deg)
		x := rec.X + math.Cos(a)*rec.R*0.97
		y := rec.Y + math.Sin(a)*rec.R*0.97
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2, color.RGBA{R: 240, G: 120, B: 60, A: uint8(180 * fade)}, true)
	}
}

func (g *Game) drawToneArm(screen *ebiten.Image) {
	arm := g.layout.ToneArm
	a := radians(90 + g.armAngle)
	x2 := arm.X + math.Cos(a)*arm.W
	y2 := arm.Y + math.Sin(a)*arm.W

	vector.StrokeLine(screen, float32(arm.X), float32(arm.Y), float32(x2), float32(y2), float32(arm.H/2), color.RGBA{R: 170, G: 170, B: 175, A: 255}, true)
	vector.DrawFilledCircle(screen, float32(arm.X), float32(arm.Y), float32(arm.H*1.6), color.RGBA{R: 90, G: 90, B: 95, A: 255}, true)
	vector.DrawFilledRect(screen, float32(x2-arm.H/2), float32(y2-arm.H/2), float32(arm.H), float32(arm.H*1.5), color.RGBA{R: 210, G: 210, B: 210, A: 255}, true)
}

func (g *Game) drawNowPlaying(screen *ebiten.Image) {
	t := g.deck.Current()
	title := g.layout.Title
	ebitenutil.DebugPrintAt(screen, "NOW PLAYING", int(title.X), int(title.Y))
	ebitenutil.DebugPrintAt(screen, t.Title, int(title.X), int(title.Y)+16)
	ebitenutil.DebugPrintAt(screen, t.Artist, int(title.X), int(title.Y)+30)

	bar := g.layout.Progress
	progress := math.Min(math.Max(g.deck.Progress(), 0), 1)
	vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), color.RGBA{R: 40, G: 38, B: 36, A: 255}, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W*progress), float32(bar.H), color.RGBA{R: 240, G: 120, B: 60, A: 255}, false)
	}

	times := deck.FormatTime(g.deck.Elapsed())
	if length := t.Length.Duration(); length > 0 {
		times += " / " + t.Length.String()
	}
	ebitenutil.DebugPrintAt(screen, times, int(bar.X), int(bar.Y+bar.H)+4)
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	labels := map[ui.Button]string{
		ui.PrevButton: "<<",
		ui.PlayButton: ">",
		ui.NextButton: ">>",
		ui.OpenButton: "Open List",
	}
	if g.deck.IsPlaying() {
		labels[ui.PlayButton] = "||"
	}
	for b, r := range g.layout.Buttons {
		bg := color.RGBA{R: 46, G: 44, B: 42, A: 255}
		if b == g.pressedButton {
			bg = color.RGBA{R: 90, G: 70, B: 55, A: 255}
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.RGBA{R: 150, G: 140, B: 130, A: 255}, false)

		text := labels[b]
		// Approximate character width
		mx, my := r.Center()
		ebitenutil.DebugPrintAt(screen, text, int(mx)-len(text)*3, int(my)-8)
	}
}

func (g *Game) drawTrackList(screen *ebiten.Image) {
	tracks := g.deck.Tracks()
	for slot, r := range g.layout.Rows {
		i := g.list.Track(slot)
		if i < 0 {
			break
		}
		if i == g.deck.Index() {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{R: 60, G: 40, B: 30, A: 255}, false)
		}
		line := fmt.Sprintf("%02d  %s", i+1, tracks[i].Title)
		if length := tracks[i].Length.Duration(); length > 0 {
			line += "  " + tracks[i].Length.String()
		}
		ebitenutil.DebugPrintAt(screen, line, int(r.X)+8, int(r.Y)+4)
	}

	if g.layout.Overflow {
		more := g.layout.More
		vector.StrokeRect(screen, float32(more.X), float32(more.Y), float32(more.W), float32(more.H), 1, color.RGBA{R: 90, G: 80, B: 70, A: 255}, false)
		text := fmt.Sprintf("+%d more  (%d-%d of %d, wheel or click to scroll)",
			g.list.Hidden(), g.list.Top+1, g.list.Top+g.list.Visible, g.list.Total)
		ebitenutil.DebugPrintAt(screen, text, int(more.X)+8, int(more.Y)+4)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	dx, dy := g.cursor.Dot()
	vector.DrawFilledCircle(screen, float32(dx), float32(dy), float32(g.cfg.Cursor.DotRadius), color.RGBA{R: 240, G: 120, B: 60, A: 255}, true)

	size := g.cfg.Cursor.BracketSize
	if g.cursor.Hovering {
		size *= 1.6
	}
	bx, by := g.cursor.Bracket()
	vector.StrokeRect(screen, float32(bx-size/2), float32(by-size/2), float32(size), float32(size), 1, color.RGBA{R: 240, G: 236, B: 228, A: 200}, true)
}
