package charts

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"f1charts/pkg/model"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lapSamples(n int) []model.LapTelemetrySample {
	samples := make([]model.LapTelemetrySample, n)
	for i := range samples {
		a := 2 * math.Pi * float64(i) / float64(n)
		samples[i] = model.LapTelemetrySample{
			X:     1000 * math.Cos(a),
			Y:     600 * math.Sin(a),
			Speed: 120 + 180*math.Abs(math.Sin(2*a)),
		}
	}
	return samples
}

func TestBuildSegments(t *testing.T) {
	samples := []model.LapTelemetrySample{
		{X: 0, Y: 0, Speed: 100},
		{X: 1, Y: 0, Speed: 150},
		{X: 1, Y: 1, Speed: 200},
		{X: 0, Y: 1, Speed: 120},
	}

	segments, err := BuildSegments(samples)
	require.NoError(t, err)

	want := []Segment{
		{From: samples[0], To: samples[1]},
		{From: samples[1], To: samples[2]},
		{From: samples[2], To: samples[3]},
	}
	if diff := cmp.Diff(want, segments); diff != "" {
		t.Errorf("BuildSegments mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSegmentsLength(t *testing.T) {
	for _, n := range []int{2, 3, 57, 400} {
		segments, err := BuildSegments(lapSamples(n))
		require.NoError(t, err)
		assert.Len(t, segments, n-1)
	}
}

func TestBuildSegmentsDegenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := BuildSegments(lapSamples(n))
		require.Error(t, err)

		var f *RenderFailure
		assert.True(t, errors.As(err, &f), "n=%d", n)
	}
}

func TestNormalizeSpeeds(t *testing.T) {
	samples := []model.LapTelemetrySample{{Speed: 200}, {Speed: 100}, {Speed: 300}, {Speed: 250}}

	norm, rng := NormalizeSpeeds(samples)

	assert.Equal(t, SpeedRange{Min: 100, Max: 300}, rng)
	if diff := cmp.Diff([]float64{0.5, 0, 1, 0.75}, norm); diff != "" {
		t.Errorf("NormalizeSpeeds mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeSpeedsConstant(t *testing.T) {
	samples := []model.LapTelemetrySample{{Speed: 180}, {Speed: 180}, {Speed: 180}}

	norm, rng := NormalizeSpeeds(samples)

	assert.Equal(t, SpeedRange{Min: 180, Max: 180}, rng)
	for _, v := range norm {
		assert.Equal(t, 0.5, v)
		assert.False(t, math.IsNaN(v))
	}
}

func TestTrackMap(t *testing.T) {
	img, rng, err := TrackMap("Bahrain Grand Prix 2024 - VER - Speed", lapSamples(400))
	require.NoError(t, err)

	assert.InDelta(t, 120, rng.Min, 1e-9)
	assert.InDelta(t, 300, rng.Max, 1e-6)

	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, img.Width, decoded.Bounds().Dx())
	assert.Equal(t, img.Height, decoded.Bounds().Dy())
	assert.Equal(t, 534, img.Width)
	assert.Equal(t, 330, img.Height)
}

func TestTrackMapConstantSpeed(t *testing.T) {
	samples := lapSamples(50)
	for i := range samples {
		samples[i].Speed = 200
	}
	_, _, err := TrackMap("constant", samples)
	assert.NoError(t, err)
}

func TestTrackMapDegenerate(t *testing.T) {
	_, _, err := TrackMap("one point", lapSamples(1))
	var f *RenderFailure
	require.True(t, errors.As(err, &f))
	assert.Contains(t, f.Error(), "Error: ")
}

func TestTrackMapIsDeterministic(t *testing.T) {
	a, _, err := TrackMap("t", lapSamples(200))
	require.NoError(t, err)
	b, _, err := TrackMap("t", lapSamples(200))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.PNG, b.PNG))
}

func TestSpeedPaletteEnds(t *testing.T) {
	cm, err := speedPalette(0, 1)
	require.NoError(t, err)
	for _, v := range []float64{0, 0.5, 1} {
		_, err := cm.At(v)
		assert.NoError(t, err, "v=%v", v)
	}
}
