package entity

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestFit_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		cw, ch, iw, ih float64
		want           FitRectangle
	}{
		{"landscape", 400, 400, 800, 400, FitRectangle{Width: 400, Height: 200, StartX: 0, StartY: 100}},
		{"portrait", 400, 400, 400, 800, FitRectangle{Width: 200, Height: 400, StartX: 100, StartY: 0}},
		{"square", 400, 400, 400, 400, FitRectangle{Width: 400, Height: 400, StartX: 0, StartY: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Fit(tt.cw, tt.ch, tt.iw, tt.ih))
		})
	}
}

var (
	squareCanvases = []float64{1, 17, 400, 1080, 4096}
	fitImages      = [][2]float64{{800, 400}, {400, 800}, {1, 1}, {4000, 3}, {3, 4000}, {1234.5, 678.9}, {17, 17}, {999, 1000}, {1000, 999}}
)

func TestFit_Properties(t *testing.T) {
	for _, side := range squareCanvases {
		for _, img := range fitImages {
			cw, ch, iw, ih := side, side, img[0], img[1]
			r := Fit(cw, ch, iw, ih)

			require.InEpsilon(t, iw/ih, r.Width/r.Height, 1e-9)

			if iw/ih < 1 {
				require.Equal(t, ch, r.Height)
				require.Equal(t, 0.0, r.StartY)
			} else {
				require.Equal(t, cw, r.Width)
				require.Equal(t, 0.0, r.StartX)
			}

			require.Equal(t, r, Fit(cw, ch, iw, ih))
		}
	}
}

// На любом допустимом (квадратном) холсте изображение целиком помещается в холст
func TestFit_ContainedInCanvas(t *testing.T) {
	for _, side := range squareCanvases {
		for _, img := range fitImages {
			r := Fit(side, side, img[0], img[1])

			require.GreaterOrEqual(t, r.StartX, -eps, "canvas %v image %v", side, img)
			require.GreaterOrEqual(t, r.StartY, -eps, "canvas %v image %v", side, img)
			require.LessOrEqual(t, r.StartX+r.Width, side+eps, "canvas %v image %v", side, img)
			require.LessOrEqual(t, r.StartY+r.Height, side+eps, "canvas %v image %v", side, img)
		}
	}
}

func TestFit_Bounds(t *testing.T) {
	r := Fit(400, 400, 3, 2)
	require.Equal(t, image.Rect(0, 67, 400, 333), r.Bounds())

	// Область за пределами холста сохраняет свой размер
	wide := FitRectangle{Width: 500, Height: 100, StartX: -50, StartY: 10}
	require.Equal(t, image.Rect(-50, 10, 450, 110), wide.Bounds())
}

func TestCheckDimensions(t *testing.T) {
	require.NoError(t, CheckDimensions(1, 1))
	require.ErrorIs(t, CheckDimensions(0, 10), ErrInvalidDimensions)
	require.ErrorIs(t, CheckDimensions(10, -1), ErrInvalidDimensions)
	require.ErrorIs(t, CheckDimensions(math.NaN(), 10), ErrInvalidDimensions)
	require.ErrorIs(t, CheckDimensions(math.Inf(1), 10), ErrInvalidDimensions)
}
