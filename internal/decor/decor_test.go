package decor

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoseSVG_WellFormedAndTinted(t *testing.T) {
	svg, err := RoseSVG("#e11d48", 140)
	require.NoError(t, err)

	assert.Contains(t, svg, `width="140" height="140"`)
	assert.Contains(t, svg, `id="watercolor-e11d48"`)
	assert.Contains(t, svg, `filter="url(#watercolor-e11d48)"`)
	assert.Equal(t, 5, strings.Count(svg, `"#e11d48"`))

	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestRoseSVG_DefaultSize(t *testing.T) {
	svg, err := RoseSVG("#facc15", 0)
	require.NoError(t, err)
	assert.Contains(t, svg, `width="100"`)
}

func TestRoseSVG_RejectsBadColor(t *testing.T) {
	_, err := RoseSVG("red", 100)
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestRoseSVG_Deterministic(t *testing.T) {
	a, _ := RoseSVG("#f472b6", 60)
	b, _ := RoseSVG("#f472b6", 60)
	assert.Equal(t, a, b)
}

func TestRose_SizesPickArt(t *testing.T) {
	assert.Equal(t, len(smallRose), strings.Count(Rose("#facc15", SizeCard), "\n")+1)
	assert.Equal(t, len(mediumRose), strings.Count(Rose("#facc15", SizeSelected), "\n")+1)
	assert.Equal(t, len(largeRose), strings.Count(Rose("#facc15", SizeReveal), "\n")+1)
	assert.Contains(t, Rose("#e11d48", SizeReveal), "@")
}

func TestPetals_SeedIsDeterministicAndInRange(t *testing.T) {
	a := NewPetals(1402, PetalCount).All()
	b := NewPetals(1402, PetalCount).All()
	require.Len(t, a, PetalCount)
	assert.Equal(t, a, b)

	for _, p := range a {
		assert.GreaterOrEqual(t, p.Delay, time.Duration(0))
		assert.Less(t, p.Delay, 20*time.Second)
		assert.GreaterOrEqual(t, p.Duration, 15*time.Second)
		assert.Less(t, p.Duration, 25*time.Second)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1.0)
	}
}

func TestPetals_NothingBeforeDelays(t *testing.T) {
	p := Petals{petals: []Petal{{Delay: 5 * time.Second, Duration: 20 * time.Second, X: 0.5}}}

	assert.Empty(t, p.Positions(4*time.Second, 40, 10))
	assert.Len(t, p.Positions(15*time.Second, 40, 10), 1)
}

func TestPetals_FallsDownward(t *testing.T) {
	p := Petals{petals: []Petal{{Duration: 20 * time.Second, X: 0.5}}}

	early := p.Positions(4*time.Second, 40, 10)
	late := p.Positions(16*time.Second, 40, 10)
	require.Len(t, early, 1)
	require.Len(t, late, 1)
	assert.Less(t, early[0].Row, late[0].Row)
}

func TestPetals_FrameShape(t *testing.T) {
	frame := NewPetals(7, PetalCount).Frame(30*time.Second, 40, 3)

	lines := strings.Split(frame, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 40, utf8.RuneCountInString(l))
	}
	assert.Empty(t, NewPetals(7, PetalCount).Frame(0, 0, 3))
}

func TestECG_ScrollsAndWraps(t *testing.T) {
	n := utf8.RuneCountInString(heartbeat)

	assert.Equal(t, 30, utf8.RuneCountInString(ECG(30, 0)))
	assert.Equal(t, ECG(30, 0), ECG(30, n))
	assert.NotEqual(t, ECG(30, 0), ECG(30, 5))
	assert.Equal(t, ECG(10, -1), ECG(10, n-1))
	assert.Empty(t, ECG(0, 3))
}
