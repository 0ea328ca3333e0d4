// Command cardinal-demo is an interactive cardinal spline editor.
//
// Click into the window to append control points. Once there are three or
// more, the closed spline through them is drawn. Press S to save the control
// points to the file given by -save.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/curvekit/cardinal"
	"github.com/curvekit/cardinal/internal/sketch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	controlPointSize = 10
	lineWidth        = 5
)

var (
	controlColor = color.RGBA{255, 0, 0, 255}
	curveColor   = color.RGBA{255, 255, 255, 255}
)

type Game struct {
	sketch   *sketch.Sketch
	savePath string
	logger   *slog.Logger
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.sketch.Add(cardinal.Pt(float64(x), float64(y)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.savePath != "" {
		if err := g.save(); err != nil {
			g.logger.Error("saving control points failed", "file", g.savePath, "err", err)
		} else {
			g.logger.Info("control points saved", "file", g.savePath, "count", g.sketch.Len())
		}
	}
	return nil
}

func (g *Game) save() error {
	f, err := os.Create(g.savePath)
	if err != nil {
		return err
	}
	if err := g.sketch.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, pt := range g.sketch.Controls() {
		vector.DrawFilledRect(screen,
			float32(pt.X)-controlPointSize/2, float32(pt.Y)-controlPointSize/2,
			controlPointSize, controlPointSize, controlColor, false)
	}

	var start, cur cardinal.Point
	for el := range g.sketch.Outline().Elements() {
		switch el.Kind {
		case cardinal.MoveToKind:
			start, cur = el.P0, el.P0
		case cardinal.LineToKind:
			strokeLine(screen, cur, el.P0)
			cur = el.P0
		case cardinal.ClosePathKind:
			strokeLine(screen, cur, start)
			cur = start
		}
	}
}

func strokeLine(dst *ebiten.Image, a, b cardinal.Point) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), lineWidth, curveColor, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	opts := cardinal.DefaultOptions
	flag.IntVar(&opts.Samples, "segments", cardinal.DefaultSamples, "points generated between two consecutive control points")
	flag.Float64Var(&opts.Tension, "tension", cardinal.DefaultTension, "tangent scale; 0.5 is a Catmull-Rom spline")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 800, "window height")
	load := flag.String("load", "", "read initial control points from `file`")
	save := flag.String("save", "", "write control points to `file` when S is pressed")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cardinal.SetLogger(logger)

	if opts.Samples < 0 {
		logger.Error("invalid flag", "segments", opts.Samples)
		os.Exit(2)
	}

	g := &Game{
		sketch:   sketch.New(opts, logger),
		savePath: *save,
		logger:   logger,
	}
	if *load != "" {
		if err := loadFile(g.sketch, *load); err != nil {
			logger.Error("loading control points failed", "err", err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Cardinal Splines")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}

func loadFile(s *sketch.Sketch, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
