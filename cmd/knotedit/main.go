// Command knotedit runs a scripted curve editing session and prints the
// resulting curve, including its Bezier control points.
//
// Every argument is one pointer gesture:
//
//	add:X,Y            click on the curve at (X,Y) to insert a knot
//	remove:X,Y         remove the knot at (X,Y)
//	drag:X,Y:X2,Y2     drag the knot at (X,Y) to (X2,Y2)
//
// Example:
//
//	knotedit --canvas 1024x800 add:311,322 drag:700,240:900,100 remove:60,60
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/knots"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := knots.NewDefaultConfig()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = knots.LoadConfig(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	canvas, err := parseCanvas(cmd.String("canvas"))
	if err != nil {
		return err
	}
	ed, err := knots.NewEditor(cfg)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}
	for _, arg := range cmd.Args().Slice() {
		if err := apply(ed, arg, canvas); err != nil {
			return err
		}
	}
	fmt.Println(ed.String())
	return nil
}

func apply(ed *knots.Editor, gesture string, canvas knotedit.Canvas) error {
	op, rest, _ := strings.Cut(gesture, ":")
	switch op {
	case "add":
		pt, err := parsePair(rest)
		if err != nil {
			return err
		}
		i := ed.TryAddKnot(pt)
		slog.Info("add", slog.String("at", pt.String()), slog.Int("index", i))
	case "remove":
		pt, err := parsePair(rest)
		if err != nil {
			return err
		}
		ed.UpdateHover(pt)
		ok := ed.TryRemoveHover()
		slog.Info("remove", slog.String("at", pt.String()), slog.Bool("removed", ok))
	case "drag":
		from, to, _ := strings.Cut(rest, ":")
		p, err := parsePair(from)
		if err != nil {
			return err
		}
		q, err := parsePair(to)
		if err != nil {
			return err
		}
		i := ed.UpdateHover(p)
		ok := ed.MoveHover(q, canvas)
		slog.Info("drag", slog.Int("index", i), slog.String("to", q.String()), slog.Bool("moved", ok))
	default:
		return fmt.Errorf("unknown gesture %q", gesture)
	}
	return nil
}

func parseCanvas(s string) (knotedit.Canvas, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return knotedit.Canvas{}, fmt.Errorf("invalid canvas size %q, want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return knotedit.Canvas{}, fmt.Errorf("invalid canvas width %q: %w", w, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return knotedit.Canvas{}, fmt.Errorf("invalid canvas height %q: %w", h, err)
	}
	return knotedit.Canvas{Width: width, Height: height}, nil
}

func parsePair(s string) (knotedit.Pair, error) {
	var x, y float64
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return knotedit.Origin, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return knotedit.P(x, y), nil
}

func main() {
	cmd := &cli.Command{
		Name:      "knotedit",
		Usage:     "Edit a smooth curve through knots by scripted pointer gestures",
		ArgsUsage: "[add:X,Y | remove:X,Y | drag:X,Y:X2,Y2 ...]",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("KNOTEDIT_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "canvas",
				Usage: "Canvas size as WIDTHxHEIGHT",
				Value: "1024x800",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
