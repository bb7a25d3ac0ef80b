package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if !(value > 0) || math.IsInf(value, 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateFinite(field string, value float64) []ValidationError {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be a finite number",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups validation errors by config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	// Print errors by category
	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Camera.Validate()...)
	errors = append(errors, c.Sun.Validate()...)
	errors = append(errors, c.Attitude.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	errors = append(errors, c.Logging.Validate()...)
	return errors
}

func (c *Camera) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("camera.focal_length", c.FocalLength)...)
	errors = append(errors, validatePositive("camera.format.width", c.Format.Width)...)
	errors = append(errors, validatePositive("camera.format.height", c.Format.Height)...)
	return errors
}

func (s *Sun) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite("sun.azimuth", s.Azimuth)...)
	if errs := validateFinite("sun.elevation", s.Elevation); errs != nil {
		return append(errors, errs...)
	}
	errors = append(errors, validateInRange("sun.elevation", s.Elevation, -90, 90)...)
	return errors
}

func (a *Attitude) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite("attitude.omega", a.Omega)...)
	errors = append(errors, validateFinite("attitude.phi", a.Phi)...)
	errors = append(errors, validateFinite("attitude.kappa", a.Kappa)...)
	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError

	if o.Directory == "" {
		errors = append(errors, ValidationError{
			Field:   "output.directory",
			Message: "output directory is required",
		})
	}

	errors = append(errors, validatePositive("output.render.width", float64(o.Render.Width))...)
	errors = append(errors, validatePositive("output.render.height", float64(o.Render.Height))...)
	if o.Render.Buffer < 0 {
		errors = append(errors, ValidationError{
			Field:   "output.render.buffer",
			Message: "must be non-negative",
		})
	}
	errors = append(errors, validatePositive("output.plot.width", o.Plot.Width)...)
	errors = append(errors, validatePositive("output.plot.height", o.Plot.Height)...)

	return errors
}

func (l *Logging) Validate() []ValidationError {
	switch l.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return []ValidationError{{
		Field:   "logging.level",
		Message: fmt.Sprintf("unknown level '%s'", l.Level),
	}}
}
