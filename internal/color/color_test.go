package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDeviceExtremes(t *testing.T) {
	for _, h := range []float64{0, 45, 180, 270, 359.9, 360} {
		assert.Equal(t, DeviceColor{0, 0, 0}, ToDevice(PerceptualColor{L: 0, C: 0, H: h}), "black at hue %v", h)
		assert.Equal(t, DeviceColor{255, 255, 255}, ToDevice(PerceptualColor{L: 1, C: 0, H: h}), "white at hue %v", h)
	}
}

func TestToDeviceExtremesIgnoreChroma(t *testing.T) {
	assert.Equal(t, DeviceColor{0, 0, 0}, ToDevice(PerceptualColor{L: 0, C: 0.4, H: 30}))
	assert.Equal(t, DeviceColor{255, 255, 255}, ToDevice(PerceptualColor{L: 1, C: 0.4, H: 30}))
}

func TestZeroChromaIsGray(t *testing.T) {
	for l := 0.0; l <= 1.0; l += 0.05 {
		for _, h := range []float64{0, 90, 137.5, 300} {
			d := ToDevice(PerceptualColor{L: l, C: 0, H: h})
			if d.R != d.G || d.G != d.B {
				t.Fatalf("expected gray for l=%v h=%v, got %+v", l, h, d)
			}
		}
	}
}

func TestToDeviceKnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   PerceptualColor
		want DeviceColor
	}{
		{name: "mid gray", in: PerceptualColor{L: 0.5, C: 0, H: 0}, want: DeviceColor{99, 99, 99}},
		{name: "blue", in: PerceptualColor{L: 0.62, C: 0.19, H: 260}, want: DeviceColor{58, 129, 246}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDevice(tt.in))
		})
	}
}

func TestChannelsReportExcursions(t *testing.T) {
	ch := Channels(PerceptualColor{L: 0.5, C: 0.4, H: 180})
	require.Less(t, ch[0], 0, "red channel should fall below zero")

	d := ToDevice(PerceptualColor{L: 0.5, C: 0.4, H: 180})
	assert.Equal(t, uint8(0), d.R)
}

func TestToHex(t *testing.T) {
	assert.Equal(t, "#000000", ToHex(DeviceColor{}))
	assert.Equal(t, "#ffffff", ToHex(DeviceColor{255, 255, 255}))
	assert.Equal(t, "#0a0b0c", ToHex(DeviceColor{10, 11, 12}))
	assert.Equal(t, "#3a81f6", ToHexFromPerceptual(PerceptualColor{L: 0.62, C: 0.19, H: 260}))
}

func TestParseHex(t *testing.T) {
	d, err := ParseHex("#3A81F6")
	require.NoError(t, err)
	assert.Equal(t, DeviceColor{58, 129, 246}, d)

	_, err = ParseHex("blue")
	require.Error(t, err)
}

func TestFromDeviceRoundTrip(t *testing.T) {
	for _, d := range []DeviceColor{
		{0, 0, 0},
		{255, 255, 255},
		{99, 99, 99},
		{58, 129, 246},
		{0, 97, 190},
		{176, 43, 39},
		{138, 86, 0},
	} {
		p := FromDevice(d)
		require.NoError(t, p.Validate())
		assert.Equal(t, d, ToDevice(p), "round trip of %s", ToHex(d))
	}
}

func TestFromDeviceAchromatic(t *testing.T) {
	p := FromDevice(DeviceColor{128, 128, 128})
	assert.Equal(t, 0.0, p.C)
	assert.Equal(t, 0.0, p.H)
}

func TestEncodeDeterministic(t *testing.T) {
	p := PerceptualColor{L: 0.731, C: 0.123, H: 12.5}
	r1, g1, b1 := Encode(p)
	r2, g2, b2 := Encode(p)
	assert.Equal(t, r1, r2)
	assert.Equal(t, g1, g2)
	assert.Equal(t, b1, b2)
}

func TestValidate(t *testing.T) {
	require.NoError(t, PerceptualColor{L: 1, C: 0.5, H: 360}.Validate())
	require.Error(t, PerceptualColor{L: 1.5}.Validate())
	require.Error(t, PerceptualColor{L: 0.5, C: -0.1}.Validate())
	require.Error(t, PerceptualColor{L: 0.5, C: 0.1, H: 361}.Validate())
}

func TestRotateHue(t *testing.T) {
	assert.InDelta(t, 30.0, PerceptualColor{H: 350}.RotateHue(40).H, 1e-9)
	assert.InDelta(t, 350.0, PerceptualColor{H: 10}.RotateHue(-20).H, 1e-9)
}
