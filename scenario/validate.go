package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/phanxgames/adventure/assets"
)

// ConfigError describes one invalid field of a scenario document.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var backgrounds = []string{assets.BackgroundDay, assets.BackgroundNight}

// Validate checks every field and returns all problems joined, each a
// *ConfigError. A nil result means Build will not fail on this document.
func (d *Document) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(d.Name) == "" {
		add("name", "required")
	}
	switch {
	case d.Background == "":
		add("background", "required")
	case !contains(backgrounds, d.Background):
		add("background", "unknown background %q (want one of %s)", d.Background, strings.Join(backgrounds, ", "))
	}

	if d.Rules == nil {
		add("rules", "required")
	} else {
		r := d.Rules
		checkInt(add, "rules.max_guests", r.MaxGuests)
		checkFloat(add, "rules.spawn_rate", r.SpawnRate)
		checkInt(add, "rules.target_fps", r.TargetFPS)
	}

	kinds := assets.RideKinds()
	for i, ride := range d.Rides {
		prefix := fmt.Sprintf("rides[%d]", i)
		switch {
		case ride.Type == "":
			add(prefix+".type", "required")
		case !contains(kinds, ride.Type):
			add(prefix+".type", "unknown ride type %q (want one of %s)", ride.Type, strings.Join(kinds, ", "))
		}
		checkPosition(add, prefix+".position", ride.Position, true)
		checkInt(add, prefix+".max_capacity", ride.MaxCapacity)
		checkFloat(add, prefix+".ride_time", ride.RideTime)
	}

	if d.Entrance != nil {
		checkPosition(add, "entrance", d.Entrance, false)
	}
	return errors.Join(errs...)
}

type addFunc func(field, format string, args ...any)

func checkInt(add addFunc, field string, v *int) {
	switch {
	case v == nil:
		add(field, "required")
	case *v < 0:
		add(field, "must be >= 0, got %d", *v)
	}
}

func checkFloat(add addFunc, field string, v *float64) {
	switch {
	case v == nil:
		add(field, "required")
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		add(field, "must be a finite number")
	case *v < 0:
		add(field, "must be >= 0, got %g", *v)
	}
}

func checkPosition(add addFunc, field string, p *Position, required bool) {
	if p == nil {
		if required {
			add(field, "required")
		}
		return
	}
	coord := func(name string, v *float64, required bool) {
		switch {
		case v == nil:
			if required {
				add(field+"."+name, "required")
			}
		case math.IsNaN(*v) || math.IsInf(*v, 0):
			add(field+"."+name, "must be a finite number")
		}
	}
	coord("x", p.X, true)
	coord("y", p.Y, true)
	coord("z", p.Z, false)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
