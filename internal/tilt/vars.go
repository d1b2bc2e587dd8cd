package tilt

import (
	"math"
	"strconv"
)

// Vars are the visual parameters derived from a pointer position on a
// card surface.
type Vars struct {
	PointerX    float64 `json:"pointerX"`
	PointerY    float64 `json:"pointerY"`
	BackgroundX float64 `json:"backgroundX"`
	BackgroundY float64 `json:"backgroundY"`
	FromCenter  float64 `json:"fromCenter"`
	FromTop     float64 `json:"fromTop"`
	FromLeft    float64 `json:"fromLeft"`
	RotateX     float64 `json:"rotateX"`
	RotateY     float64 `json:"rotateY"`
}

// Rotation divisors for the horizontal and vertical centered offsets.
const (
	rotateXDivisor = 5
	rotateYDivisor = 4
)

// Derive computes Vars for point (x, y) on a surface of the given size.
// Zero dimensions are treated as 1.
func Derive(x, y, width, height float64) Vars {
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}

	percentX := round(clamp(100/width*x, 0, 100))
	percentY := round(clamp(100/height*y, 0, 100))
	centerX := percentX - 50
	centerY := percentY - 50

	return Vars{
		PointerX:    percentX,
		PointerY:    percentY,
		BackgroundX: remap(percentX, 0, 100, 35, 65),
		BackgroundY: remap(percentY, 0, 100, 35, 65),
		FromCenter:  round(clamp(math.Hypot(centerY, centerX)/50, 0, 1)),
		FromTop:     round(percentY / 100),
		FromLeft:    round(percentX / 100),
		RotateX:     round(-(centerX / rotateXDivisor)),
		RotateY:     round(centerY / rotateYDivisor),
	}
}

// Properties renders v as CSS custom properties for the card wrapper.
func (v Vars) Properties() map[string]string {
	f := func(n float64) string { return strconv.FormatFloat(n, 'f', -1, 64) }
	return map[string]string{
		"--pointer-x":           f(v.PointerX) + "%",
		"--pointer-y":           f(v.PointerY) + "%",
		"--background-x":        f(v.BackgroundX) + "%",
		"--background-y":        f(v.BackgroundY) + "%",
		"--pointer-from-center": f(v.FromCenter),
		"--pointer-from-top":    f(v.FromTop),
		"--pointer-from-left":   f(v.FromLeft),
		"--rotate-x":            f(v.RotateX) + "deg",
		"--rotate-y":            f(v.RotateY) + "deg",
	}
}
