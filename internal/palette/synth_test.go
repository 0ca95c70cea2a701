package palette

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns queued values in order.
type fixedRand struct {
	values []int
}

func (f *fixedRand) IntN(n int) int {
	v := f.values[0]
	f.values = f.values[1:]
	return v % n
}

func TestSynthesize_Invariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 1000; i++ {
		mode := HarmonyModes[i%len(HarmonyModes)]
		light, dark := Synthesize(rng, mode)

		require.Equal(t, light[Primary], light[Chart1])
		require.Equal(t, dark[Primary], dark[Chart1])
		require.Equal(t, light[Primary].H, dark[Primary].H, "light and dark share the seed hue")

		for _, p := range []Palette{light, dark} {
			for _, r := range Roles() {
				c := p[r]
				require.True(t, c.H >= 0 && c.H < 360, "%s hue %d", r, c.H)
				require.True(t, c.S >= 0 && c.S <= 100, "%s saturation %d", r, c.S)
				require.True(t, c.L >= 0 && c.L <= 100, "%s lightness %d", r, c.L)
			}
		}

		assert.True(t, dark[Background].L >= 8 && dark[Background].L <= 10)
		assert.LessOrEqual(t, dark[Primary].L, 60)
		assert.True(t, light[Primary].L >= 45 && light[Primary].L <= 60)
		assert.LessOrEqual(t, light[Primary].S, 85)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	// hue 200, saturation 50+20, lightness 40+10
	light, dark := Synthesize(&fixedRand{values: []int{200, 20, 10}}, HarmonyMonochromatic)

	assert.Equal(t, "200 85% 50%", light[Primary].String())
	assert.Equal(t, "200 10% 90%", light[Secondary].String())
	assert.Equal(t, "200 40% 80%", light[Accent].String())
	assert.Equal(t, "0 0% 100%", light[Background].String())
	assert.Equal(t, "200 25% 8%", light[Foreground].String())
	assert.Equal(t, "0 84% 60%", light[Destructive].String())

	assert.Equal(t, "200 80% 60%", dark[Primary].String())
	assert.Equal(t, "200 25% 10%", dark[Background].String())
	assert.Equal(t, "200 10% 95%", dark[Foreground].String())
	assert.Equal(t, "200 30% 30%", dark[Secondary].String())
	assert.Equal(t, "230 40% 35%", dark[Accent].String())
}

func TestSynthesize_HarmonyOffsets(t *testing.T) {
	tests := []struct {
		mode     HarmonyMode
		lightHue int
		darkHue  int
	}{
		{HarmonyMonochromatic, 100, 130},
		{HarmonyAnalogous, 130, 130},
		{HarmonyComplementary, 280, 280},
		{HarmonyTriadic, 220, 220},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			light, dark := Synthesize(&fixedRand{values: []int{100, 10, 10}}, tt.mode)
			assert.Equal(t, tt.lightHue, light[Accent].H)
			assert.Equal(t, tt.darkHue, dark[Accent].H)
			assert.Equal(t, 100, light[Primary].H)
		})
	}
}

func TestParseHarmony(t *testing.T) {
	m, err := ParseHarmony("")
	require.NoError(t, err)
	assert.Equal(t, HarmonyMonochromatic, m)

	m, err = ParseHarmony("triadic")
	require.NoError(t, err)
	assert.Equal(t, HarmonyTriadic, m)

	_, err = ParseHarmony("tetradic")
	assert.Error(t, err)
}

func TestHarmonyMode_Next(t *testing.T) {
	assert.Equal(t, HarmonyAnalogous, HarmonyMonochromatic.Next())
	assert.Equal(t, HarmonyMonochromatic, HarmonyTriadic.Next())
	assert.Equal(t, HarmonyMonochromatic, HarmonyMode("bogus").Next())
}
