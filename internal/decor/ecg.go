package decor

import "strings"

// One heartbeat cycle, left to right. ▄ is the baseline, █ a peak and ▁ a
// trough, following the R-wave spikes of the vector trace.
const heartbeat = "▄▄▄▄▄█▁▄▄▄▄█▁▄▄▄▄▄▆▂▄▄▄▄▄▄▄█▁▄▄▄▄▄▄▄▄▄▄▄▄"

var heartbeatRunes = []rune(heartbeat)

// ECG returns a width-cell heart trace scrolled left by phase cells.
func ECG(width, phase int) string {
	if width <= 0 {
		return ""
	}
	n := len(heartbeatRunes)
	start := phase % n
	if start < 0 {
		start += n
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(heartbeatRunes[(start+i)%n])
	}
	return b.String()
}
