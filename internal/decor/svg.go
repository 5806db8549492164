// Package decor draws the purely cosmetic parts of the lab: the rose
// illustration, the drifting petals and the heart-trace strip. Everything
// here is a pure function of its arguments.
package decor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidColor indicates a color that is not a #rrggbb token.
var ErrInvalidColor = errors.New("color must be #rrggbb")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether color is a #rrggbb token.
func ValidColor(color string) bool { return hexColor.MatchString(color) }

const (
	stemColor = "#4a5d23"
	leafColor = "#5f7c35"
)

// filterID derives the watercolor filter id from the color so several roses
// can share one document without their filters colliding.
func filterID(color string) string {
	return "watercolor-" + strings.TrimPrefix(color, "#")
}

// RoseSVG returns a standalone SVG document of a watercolor rose in color,
// size pixels square.
func RoseSVG(color string, size int) (string, error) {
	if !ValidColor(color) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	if size <= 0 {
		size = 100
	}
	id := filterID(color)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 100 100" fill="none" xmlns="http://www.w3.org/2000/svg">`+"\n", size, size)
	b.WriteString("  <defs>\n")
	fmt.Fprintf(&b, `    <filter id="%s" x="-20%%" y="-20%%" width="140%%" height="140%%">`+"\n", id)
	b.WriteString(`      <feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="3" result="noise"/>` + "\n")
	b.WriteString(`      <feDisplacementMap in="SourceGraphic" in2="noise" scale="3" xChannelSelector="R" yChannelSelector="G"/>` + "\n")
	b.WriteString(`      <feGaussianBlur stdDeviation="0.5"/>` + "\n")
	b.WriteString("    </filter>\n")
	b.WriteString("  </defs>\n")
	fmt.Fprintf(&b, `  <g filter="url(#%s)">`+"\n", id)

	// Stem and leaves.
	fmt.Fprintf(&b, `    <path d="M50 95C50 95 52 80 48 70C46 65 50 55 50 50" stroke="%s" stroke-width="3" stroke-linecap="round" opacity="0.6" fill="none"/>`+"\n", stemColor)
	fmt.Fprintf(&b, `    <path d="M50 85C50 85 62 78 68 82C62 88 56 90 50 85Z" fill="%s" opacity="0.5"/>`+"\n", leafColor)
	fmt.Fprintf(&b, `    <path d="M50 75C50 75 32 70 28 75C34 80 44 78 50 75Z" fill="%s" opacity="0.5"/>`+"\n", leafColor)

	// Petals, outer wash to core, then the two pooled-paint accents.
	b.WriteString(`    <g transform="translate(0, -5)">` + "\n")
	fmt.Fprintf(&b, `      <path d="M50 20C25 20 10 40 25 60C35 75 65 75 75 60C90 40 75 20 50 20Z" fill="%s" opacity="0.4"/>`+"\n", color)
	fmt.Fprintf(&b, `      <path d="M50 25C35 25 25 35 30 50C35 60 65 60 70 50C75 35 65 25 50 25Z" fill="%s" opacity="0.5"/>`+"\n", color)
	fmt.Fprintf(&b, `      <path d="M50 30C42 32 40 45 50 55C60 45 58 32 50 30Z" fill="%s" opacity="0.6"/>`+"\n", color)
	fmt.Fprintf(&b, `      <path d="M35 45Q40 55 50 60Q60 55 65 45" stroke="%s" stroke-width="1" stroke-opacity="0.8" fill="none" style="filter: brightness(0.7)"/>`+"\n", color)
	fmt.Fprintf(&b, `      <path d="M45 35Q50 30 55 35" stroke="%s" stroke-width="2" stroke-opacity="0.6" fill="none" style="filter: brightness(0.8)"/>`+"\n", color)
	b.WriteString("    </g>\n")

	b.WriteString("  </g>\n")
	b.WriteString("</svg>\n")
	return b.String(), nil
}
