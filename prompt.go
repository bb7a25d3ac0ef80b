package main

import (
	"bufio"
	"fmt"
	"io"

	goglint "github.com/jdginn/go-sun-glint/glint"
)

const (
	SUN_PROMPT      = "Sun: azimuth and elevation [deg]: "
	ATTITUDE_PROMPT = "Image: omega phi kappa [deg]: "
)

func promptLine(scanner *bufio.Scanner, w io.Writer, prompt string, n int) ([]float64, error) {
	fmt.Fprint(w, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return nil, fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
	}
	return goglint.ParseDegreesList(scanner.Text(), n)
}

// promptInputs asks for the sun angles, then the camera attitude.
func promptInputs(r io.Reader, w io.Writer) (goglint.Inputs, error) {
	scanner := bufio.NewScanner(r)

	sun, err := promptLine(scanner, w, SUN_PROMPT, 2)
	if err != nil {
		return goglint.Inputs{}, fmt.Errorf("sun: %w", err)
	}
	opk, err := promptLine(scanner, w, ATTITUDE_PROMPT, 3)
	if err != nil {
		return goglint.Inputs{}, fmt.Errorf("image: %w", err)
	}

	return goglint.Inputs{
		Azimuth:   sun[0],
		Elevation: sun[1],
		Attitude:  goglint.Attitude{Omega: opk[0], Phi: opk[1], Kappa: opk[2]},
	}, nil
}
