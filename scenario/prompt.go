package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/phanxgames/adventure/assets"
)

// Prompt defaults.
const (
	DefaultName       = "MyPark"
	DefaultBackground = assets.BackgroundDay
	DefaultMaxGuests  = 100
	DefaultSpawnRate  = 1.0
	DefaultTargetFPS  = 24
)

// prompter asks questions on out and reads answers line by line from in.
// An empty answer takes the default; an unparsable one is asked again.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	answer := strings.TrimSpace(p.sc.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *prompter) askInt(question string, def int) (int, error) {
	for {
		s, err := p.ask(question, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not a non-negative integer.\n", s)
	}
}

func (p *prompter) askFloat(question string, def float64) (float64, error) {
	for {
		s, err := p.ask(question, strconv.FormatFloat(def, 'f', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v >= 0 && finite(v) {
			return v, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not a non-negative number.\n", s)
	}
}

func (p *prompter) askChoice(question, def string, choices []string) (string, error) {
	for {
		s, err := p.ask(fmt.Sprintf("%s (%s)", question, strings.Join(choices, "/")), def)
		if err != nil {
			return "", err
		}
		if s == "" || contains(choices, s) {
			return s, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not one of %s.\n", s, strings.Join(choices, ", "))
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Prompt builds a document interactively. After the park settings it
// offers to place rides until an empty ride type is entered.
func Prompt(in io.Reader, out io.Writer) (*Document, error) {
	p := &prompter{sc: bufio.NewScanner(in), out: out}

	name, err := p.ask("Scenario name", DefaultName)
	if err != nil {
		return nil, promptErr(err)
	}
	background, err := p.askChoice("Background", DefaultBackground, backgrounds)
	if err != nil {
		return nil, promptErr(err)
	}
	maxGuests, err := p.askInt("Max guests", DefaultMaxGuests)
	if err != nil {
		return nil, promptErr(err)
	}
	spawnRate, err := p.askFloat("Spawn rate (guests/sec)", DefaultSpawnRate)
	if err != nil {
		return nil, promptErr(err)
	}
	targetFPS, err := p.askInt("Target FPS", DefaultTargetFPS)
	if err != nil {
		return nil, promptErr(err)
	}

	doc := &Document{
		Name:       name,
		Background: background,
		Rules:      &Rules{MaxGuests: &maxGuests, SpawnRate: &spawnRate, TargetFPS: &targetFPS},
	}

	for {
		kind, err := p.askChoice("Add ride, empty to finish", "", assets.RideKinds())
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, promptErr(err)
		}
		if kind == "" {
			break
		}
		ride, err := p.askRide(kind, len(doc.Rides))
		if err != nil {
			return nil, promptErr(err)
		}
		doc.Rides = append(doc.Rides, ride)
	}
	return doc, nil
}

func (p *prompter) askRide(kind string, index int) (Ride, error) {
	x, err := p.askSigned("  x", float64(index*15))
	if err != nil {
		return Ride{}, err
	}
	y, err := p.askSigned("  y", 10)
	if err != nil {
		return Ride{}, err
	}
	capacity, err := p.askInt("  Max capacity", 10)
	if err != nil {
		return Ride{}, err
	}
	rideTime, err := p.askFloat("  Ride time (sec)", 30)
	if err != nil {
		return Ride{}, err
	}
	return Ride{
		Type:        kind,
		Position:    &Position{X: &x, Y: &y},
		MaxCapacity: &capacity,
		RideTime:    &rideTime,
	}, nil
}

func (p *prompter) askSigned(question string, def float64) (float64, error) {
	for {
		s, err := p.ask(question, strconv.FormatFloat(def, 'f', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && finite(v) {
			return v, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not a number.\n", s)
	}
}

func promptErr(err error) error {
	return fmt.Errorf("prompt: %w", err)
}
