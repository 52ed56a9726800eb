package engine

import "fmt"

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// Delta returns the unit vector for the heading in grid steps.
// Y grows downward.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHeading converts "up", "down", "left" or "right" to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "up", "UP":
		return HeadingUp, nil
	case "down", "DOWN":
		return HeadingDown, nil
	case "left", "LEFT":
		return HeadingLeft, nil
	case "right", "RIGHT":
		return HeadingRight, nil
	}
	return 0, fmt.Errorf("engine: unknown heading %q", s)
}
