package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/midbel/visualate/canvas"
)

func main() {
	app := cli.NewApp()
	app.Name = "visualate"
	app.Usage = "draw diagnostic plots of regression models"
	app.Description = `visualate fits a linear model on a CSV dataset and renders its residuals
and prediction error as SVG. The look of the plots is given by a canvas built
from a theme.`

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "print debug messages",
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "YAML file with the theme of the canvas",
		},
		&cli.StringFlag{
			Name:  "theme-name",
			Value: "light",
			Usage: "name of a builtin theme (light, dark)",
		},
		&cli.StringSliceFlag{
			Name:  "kinds",
			Usage: "components put on the canvas (all, basic or a component name)",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		level := slog.LevelInfo
		if ctx.Bool("verbose") {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
		return nil
	}
	app.Commands = []*cli.Command{
		cmdConfig,
		cmdResiduals,
		cmdPrediction,
		cmdPlot,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var cmdConfig = &cli.Command{
	Name:  "config",
	Usage: "print the configuration of the canvas as JSON",
	Action: func(ctx *cli.Context) error {
		c, err := buildCanvas(ctx)
		if err != nil {
			return err
		}
		return c.WriteConfig(os.Stdout)
	},
}

// newBuilder gives a fresh builder configured from the global flags. A builder
// is not safe for concurrent use so each goroutine asks for its own.
func newBuilder(ctx *cli.Context) (canvas.CanvasBuilder, error) {
	if file := ctx.String("theme"); file != "" {
		theme, err := canvas.LoadTheme(file)
		if err != nil {
			return nil, err
		}
		return canvas.NewThemeCanvasBuilder(theme), nil
	}
	name := ctx.String("theme-name")
	if name == "" || name == "light" {
		return canvas.NewDefaultCanvasBuilder().WithLogger(slog.Default().With("module", "canvas")), nil
	}
	theme, ok := canvas.Themes()[name]
	if !ok {
		return nil, fmt.Errorf("%s: unknown theme", name)
	}
	return canvas.NewThemeCanvasBuilder(theme), nil
}

func buildCanvas(ctx *cli.Context) (*canvas.Canvas, error) {
	kinds, err := parseKinds(ctx.StringSlice("kinds"))
	if err != nil {
		return nil, err
	}
	b, err := newBuilder(ctx)
	if err != nil {
		return nil, err
	}
	return canvas.NewDirector(b).ConstructKinds(kinds), nil
}

func parseKinds(names []string) (canvas.Kind, error) {
	if len(names) == 0 {
		return canvas.KindAll, nil
	}
	var kinds canvas.Kind
	for _, n := range names {
		switch n {
		case "all":
			kinds |= canvas.KindAll
		case "basic":
			kinds |= canvas.KindBasic
		case "colorbar":
			kinds |= canvas.KindColorBar
		case "coloraxis":
			kinds |= canvas.KindColorAxis
		default:
			k, ok := canvas.ParseKind(n)
			if !ok {
				return canvas.KindNone, fmt.Errorf("%s: unknown component", n)
			}
			kinds |= k
		}
	}
	return kinds, nil
}
