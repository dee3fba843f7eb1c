package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	t.Parallel()

	require.Zero(t, Distance(30.7333, 76.7794, 30.7333, 76.7794))
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := Distance(30.735, 76.775, 30.720, 76.760)
	b := Distance(30.720, 76.760, 30.735, 76.775)
	require.InDelta(t, a, b, 1e-9)
	require.Greater(t, a, 0.0)
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		delta                  float64
	}{
		{
			name: "delhi to amritsar seed points",
			lat1: 30.735, lon1: 76.775,
			lat2: 30.720, lon2: 76.760,
			wantKm: 2.2,
			delta:  0.1,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			wantKm: 111.19,
			delta:  0.05,
		},
		{
			name: "quarter of the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			wantKm: 10007.5,
			delta:  1.0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			require.InDelta(t, tt.wantKm, got, tt.delta)
		})
	}
}
