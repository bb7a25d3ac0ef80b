package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	goglint "github.com/jdginn/go-sun-glint/glint"
	glintConfig "github.com/jdginn/go-sun-glint/glint/config"
	"github.com/jdginn/go-sun-glint/glint/rundir"
	"github.com/jdginn/go-sun-glint/internal/logger"
)

// Output file names inside a run directory
const (
	ANNOTATIONS_FILE = "annotations.json"
	RENDER_FILE      = "scene.png"
	PLOT_FILE        = "image_plane.png"
	CAMERA_FILE      = "camera.3mf"
	CONFIG_FILE      = "config.yaml"
)

var CLI struct {
	Evaluate EvaluateCmd `cmd:"" help:"Locate the hotspot and glint for one set of angles"`
	Prompt   PromptCmd   `cmd:"" help:"Ask for the angles interactively"`
	Run      RunCmd      `cmd:"" help:"Evaluate a config file into a new run directory"`
}

type EvaluateCmd struct {
	Azimuth   string `arg:"" name:"az" help:"sun azimuth, degrees clockwise from north"`
	Elevation string `arg:"" name:"elev" help:"sun elevation, degrees"`
	Omega     string `arg:"" name:"omega" help:"camera omega, degrees"`
	Phi       string `arg:"" name:"phi" help:"camera phi, degrees"`
	Kappa     string `arg:"" name:"kappa" help:"camera kappa, degrees"`

	Config string `name:"config" type:"existingfile" help:"take camera and output settings from this config"`
	Out    string `name:"out" help:"also write annotations, render, plot and camera model to this directory"`
}

func (c EvaluateCmd) inputs() (goglint.Inputs, error) {
	var angles [5]float64
	for i, s := range []string{c.Azimuth, c.Elevation, c.Omega, c.Phi, c.Kappa} {
		rad, err := goglint.ParseDegrees(s)
		if err != nil {
			return goglint.Inputs{}, err
		}
		angles[i] = rad
	}
	return goglint.Inputs{
		Azimuth:   angles[0],
		Elevation: angles[1],
		Attitude:  goglint.Attitude{Omega: angles[2], Phi: angles[3], Kappa: angles[4]},
	}, nil
}

func (c EvaluateCmd) Run() error {
	in, err := c.inputs()
	if err != nil {
		return err
	}

	config := glintConfig.Default()
	if c.Config != "" {
		if config, err = glintConfig.LoadFromFile(c.Config, glintConfig.LoadOptions{
			ValidateImmediately: true,
			ResolvePaths:        true,
		}); err != nil {
			return err
		}
	}

	scene, err := goglint.Evaluate(config.Camera.Create(), in)
	if err != nil {
		return err
	}
	report(os.Stdout, scene)

	if c.Out == "" {
		return nil
	}
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return writeOutputs(c.Out, config, scene)
}

type PromptCmd struct {
	Config string `name:"config" type:"existingfile" help:"take camera settings from this config"`
}

func (c PromptCmd) Run() error {
	spec := goglint.DefaultCameraSpec()
	if c.Config != "" {
		config, err := glintConfig.LoadFromFile(c.Config, glintConfig.LoadOptions{ValidateImmediately: true})
		if err != nil {
			return err
		}
		spec = config.Camera.Create()
	}

	in, err := promptInputs(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	scene, err := goglint.Evaluate(spec, in)
	if err != nil {
		return err
	}
	report(os.Stdout, scene)
	return nil
}

type RunCmd struct {
	Config string `arg:"" name:"config" type:"existingfile" help:"config file to evaluate"`
}

func (c RunCmd) Run() error {
	config, err := glintConfig.LoadFromFile(c.Config, glintConfig.LoadOptions{
		ResolvePaths: true,
	})
	if err != nil {
		return err
	}
	if errs := config.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid config %s\n%s", c.Config, glintConfig.FormatValidationErrors(errs))
	}

	if err := logger.Init(config.Logging.Level, config.Logging.File); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	dir, err := rundir.Create(config.Output.Directory)
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	logger.Info("created run directory", zap.String("path", dir.Path), zap.String("id", dir.ID))

	if err := dir.CopyConfigFile(c.Config); err != nil {
		return fmt.Errorf("copying config file: %w", err)
	}

	scene, err := goglint.Evaluate(config.Camera.Create(), config.Inputs())
	if err != nil {
		logger.Error("evaluation failed", zap.Error(err))
		return err
	}
	logger.Info("evaluated scene",
		zap.String("sun", scene.Inputs.SunCaption()),
		zap.String("attitude", scene.Inputs.AttitudeCaption()),
		zap.Bool("hotspot_visible", scene.HotspotVisible()),
		zap.Bool("glint_visible", scene.GlintVisible()),
	)

	// The resolved config, stamped with this run's metadata
	if err := glintConfig.SaveToFile(config, dir.GetFilePath(CONFIG_FILE)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if err := writeOutputs(dir.Path, config, scene); err != nil {
		return err
	}
	report(os.Stdout, scene)
	return nil
}

// writeOutputs saves every export of scene into dir.
func writeOutputs(dir string, config *glintConfig.Config, scene goglint.Scene) error {
	annotations := filepath.Join(dir, ANNOTATIONS_FILE)
	if err := goglint.SaveSceneJSON(annotations, scene); err != nil {
		return fmt.Errorf("saving annotations: %w", err)
	}
	logger.Debug("saved annotations", zap.String("path", annotations))

	r := config.Output.Render
	view := goglint.NewView(r.Width, r.Height, r.Buffer)
	render := filepath.Join(dir, RENDER_FILE)
	if err := view.SavePNG(render, scene); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}
	logger.Debug("saved render", zap.String("path", render))

	p := config.Output.Plot
	plotPath := filepath.Join(dir, PLOT_FILE)
	if err := scene.SaveImagePlanePlot(vg.Length(p.Width)*vg.Inch, vg.Length(p.Height)*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("saving image plane plot: %w", err)
	}
	logger.Debug("saved image plane plot", zap.String("path", plotPath))

	camera := filepath.Join(dir, CAMERA_FILE)
	if err := goglint.SaveCamera3MF(camera, scene.Camera); err != nil {
		return fmt.Errorf("saving camera model: %w", err)
	}
	logger.Debug("saved camera model", zap.String("path", camera))

	logger.Sugar.Infof("wrote outputs to %s", dir)
	return nil
}

func report(w io.Writer, s goglint.Scene) {
	fmt.Fprintln(w, s.Inputs.SunCaption())
	fmt.Fprintln(w, s.Inputs.AttitudeCaption())
	for _, hit := range []struct {
		name    string
		hit     goglint.Hit
		visible bool
	}{
		{"hotspot", s.Hotspot, s.HotspotVisible()},
		{"glint", s.Glint, s.GlintVisible()},
	} {
		p := hit.hit.Position
		img := s.ImagePoint(p)
		fmt.Fprintf(w, "%-8s (%.3f, %.3f, %.3f)  image (%.1f, %.1f)  in front: %t  in frame: %t\n",
			hit.name, p.X, p.Y, p.Z, img.X, img.Y, hit.hit.InFront(), hit.visible)
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("glint"),
		kong.Description("Where do the sun hotspot and glint land in an aerial image?"),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
