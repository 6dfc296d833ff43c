package terrain

import (
	"math"
	"testing"
)

func TestDeriveParams(t *testing.T) {
	tests := []struct {
		gridSize int
		quads    int
	}{
		{1, 63},
		{16, 63},
		{64, 63},
		{65, 64},
		{128, 127},
		{512, 511},
		{4096, 4095},
	}

	for _, tt := range tests {
		p := DeriveParams(tt.gridSize)
		if p.ComponentQuads != tt.quads {
			t.Errorf("DeriveParams(%d): expected %d component quads, got %d",
				tt.gridSize, tt.quads, p.ComponentQuads)
		}
		if p.SubsectionQuads != p.ComponentQuads {
			t.Errorf("DeriveParams(%d): subsection quads %d != component quads %d",
				tt.gridSize, p.SubsectionQuads, p.ComponentQuads)
		}
		if p.NumSubsections != 1 {
			t.Errorf("DeriveParams(%d): expected 1 subsection, got %d",
				tt.gridSize, p.NumSubsections)
		}
	}
}

func TestComputeScales_Scenario512(t *testing.T) {
	// 512 grid covering 4 blocks of 50000 units: a 2x2 block grid,
	// 100000 units across.
	s := ComputeScales(512, 4, 50000, 25)

	if math.Abs(s.Horizontal-195.3125) > 1e-9 {
		t.Errorf("expected horizontal scale 195.3125, got %v", s.Horizontal)
	}
	if s.Vertical != 25 {
		t.Errorf("expected vertical scale 25, got %v", s.Vertical)
	}
}

func TestComputeScales_CoversWorldSize(t *testing.T) {
	for _, gridSize := range []int{1, 64, 512, 4096} {
		for _, numBlocks := range []int{1, 4, 9, 16, 100} {
			s := ComputeScales(gridSize, numBlocks, 50000, 25)

			want := 50000 * math.Round(math.Sqrt(float64(numBlocks)))
			got := s.Horizontal * float64(gridSize)
			if math.Abs(got-want) > 1e-6*want {
				t.Errorf("grid %d, blocks %d: scale*grid = %v, expected %v",
					gridSize, numBlocks, got, want)
			}
		}
	}
}

func TestComputeScales_NonSquareBlocks(t *testing.T) {
	// 5 blocks rounds to a 2x2 block grid, under-covering the request.
	s := ComputeScales(100, 5, 50000, 25)
	if s.Horizontal != 1000 {
		t.Errorf("expected horizontal scale 1000, got %v", s.Horizontal)
	}

	// 7 blocks rounds up to 3x3, over-covering.
	s = ComputeScales(100, 7, 50000, 25)
	if s.Horizontal != 1500 {
		t.Errorf("expected horizontal scale 1500, got %v", s.Horizontal)
	}
}
