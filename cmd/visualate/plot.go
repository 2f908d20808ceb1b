package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/midbel/visualate/dataset"
	"github.com/midbel/visualate/linear"
	"github.com/midbel/visualate/regression"
)

var dataFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "CSV file with a header line",
		Required: true,
	},
	&cli.IntFlag{
		Name:  "target",
		Value: -1,
		Usage: "index of the target column, negative values count from the end",
	},
	&cli.Float64Flag{
		Name:  "test-ratio",
		Value: 0.2,
		Usage: "part of the samples kept for scoring",
	},
	&cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "seed of the train/test split",
	},
	&cli.BoolFlag{
		Name:  "standardize",
		Value: true,
		Usage: "scale the features to zero mean and unit variance",
	},
	&cli.StringFlag{
		Name:  "title",
		Usage: "title of the plot",
	},
}

var cmdResiduals = &cli.Command{
	Name:  "residuals",
	Usage: "plot the residuals of the model against its predictions",
	Flags: append(outFlag("residuals.svg"), dataFlags...),
	Action: func(ctx *cli.Context) error {
		sp, err := prepare(ctx)
		if err != nil {
			return err
		}
		return render(ctx, sp, "residuals", ctx.String("out"))
	},
}

var cmdPrediction = &cli.Command{
	Name:  "prediction",
	Usage: "plot the predictions of the model against the actual values",
	Flags: append(outFlag("prediction.svg"), dataFlags...),
	Action: func(ctx *cli.Context) error {
		sp, err := prepare(ctx)
		if err != nil {
			return err
		}
		return render(ctx, sp, "prediction", ctx.String("out"))
	},
}

var cmdPlot = &cli.Command{
	Name:  "plot",
	Usage: "render every diagnostic in a directory",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Value: ".",
			Usage: "output directory",
		},
	}, dataFlags...),
	Action: func(ctx *cli.Context) error {
		sp, err := prepare(ctx)
		if err != nil {
			return err
		}
		var grp errgroup.Group
		for _, name := range []string{"residuals", "prediction"} {
			name := name
			grp.Go(func() error {
				file := filepath.Join(ctx.String("dir"), name+".svg")
				return render(ctx, sp, name, file)
			})
		}
		return grp.Wait()
	},
}

func outFlag(file string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   file,
			Usage:   "output file",
		},
	}
}

type visualizer interface {
	Fit(mat.Matrix, []float64) error
	Score(mat.Matrix, []float64) (float64, error)
	Save(string) error
}

// render builds its own canvas then fits, scores and saves one diagnostic.
func render(ctx *cli.Context, sp dataset.Split, name, file string) error {
	c, err := buildCanvas(ctx)
	if err != nil {
		return err
	}
	var (
		logger  = slog.Default().With("plot", name)
		options = []regression.Option{
			regression.WithCanvas(c),
			regression.WithTitle(ctx.String("title")),
			regression.WithLogger(logger),
		}
		viz visualizer
	)
	switch name {
	case "residuals":
		viz = regression.NewResiduals(linear.New(), options...)
	case "prediction":
		viz = regression.NewPredictionError(linear.New(), options...)
	default:
		return fmt.Errorf("%s: unknown diagnostic", name)
	}
	if err := viz.Fit(sp.TrainX, sp.TrainY); err != nil {
		return err
	}
	score, err := viz.Score(sp.TestX, sp.TestY)
	if err != nil {
		return err
	}
	logger.Info("model scored", "r2", score)
	return viz.Save(file)
}

func prepare(ctx *cli.Context) (dataset.Split, error) {
	ds, err := dataset.Load(ctx.String("data"), ctx.Int("target"))
	if err != nil {
		return dataset.Split{}, err
	}
	slog.Debug("dataset loaded", "samples", ds.Len(), "target", ds.Target, "features", ds.Features)

	sp, err := dataset.TrainTestSplit(ds.X, ds.Y, ctx.Float64("test-ratio"), ctx.Int64("seed"))
	if err != nil {
		return sp, err
	}
	if !ctx.Bool("standardize") {
		return sp, nil
	}
	var scaler dataset.StandardScaler
	if sp.TrainX, err = scaler.FitTransform(sp.TrainX); err != nil {
		return sp, err
	}
	if sp.TestX, err = scaler.Transform(sp.TestX); err != nil {
		return sp, err
	}
	return sp, nil
}
