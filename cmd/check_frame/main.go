package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	goglint "github.com/jdginn/go-sun-glint/glint"
	glintConfig "github.com/jdginn/go-sun-glint/glint/config"
)

type CheckCmd struct {
	Config string `arg:"" name:"config" type:"existingfile" help:"config file to check"`
	Strict bool   `name:"strict" help:"fail unless both the hotspot and the glint are in frame"`
}

// check evaluates the config and reports which of the hotspot and glint land in frame.
func (c CheckCmd) check() (hotspot, glint bool, err error) {
	config, err := glintConfig.LoadFromFile(c.Config, glintConfig.LoadOptions{})
	if err != nil {
		return false, false, err
	}
	if errs := config.Validate(); len(errs) > 0 {
		return false, false, fmt.Errorf("invalid config\n%s", glintConfig.FormatValidationErrors(errs))
	}

	scene, err := goglint.Evaluate(config.Camera.Create(), config.Inputs())
	if err != nil {
		return false, false, err
	}
	return scene.HotspotVisible(), scene.GlintVisible(), nil
}

func (c CheckCmd) Run() error {
	hotspot, glint, err := c.check()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "hotspot in frame: %t\nglint in frame: %t\n", hotspot, glint)
	if c.Strict && !(hotspot && glint) {
		return fmt.Errorf("hotspot or glint out of frame")
	}
	return nil
}

var CLI struct {
	Check CheckCmd `cmd:"" default:"withargs" help:"Check a config and report whether hotspot and glint are in frame"`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
