package extract

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// fill paints the first n pixels (row-major) of a w-wide image with c.
func fill(img *image.NRGBA, from, n int, c color.NRGBA) {
	w := img.Bounds().Dx()
	for i := from; i < from+n; i++ {
		img.SetNRGBA(i%w, i/w, c)
	}
}

func TestClustersExactColours(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, 0, 70, color.NRGBA{R: 0x16, G: 0x5D, B: 0xFF, A: 0xFF})
	fill(img, 70, 30, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	clusters, err := NewKMeans(1).Clusters(img, DefaultClusters)
	if err != nil {
		t.Fatalf("Clusters failed: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(clusters))
	}
	if got := clusters[0].Colour.Hex(); got != "#165DFF" {
		t.Errorf("heaviest cluster = %s, want #165DFF", got)
	}
	if math.Abs(clusters[0].Weight-0.7) > 1e-9 || math.Abs(clusters[1].Weight-0.3) > 1e-9 {
		t.Errorf("weights = %v, %v; want 0.7, 0.3", clusters[0].Weight, clusters[1].Weight)
	}
}

func TestDominantAndVibrant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, 0, 60, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})
	fill(img, 60, 40, color.NRGBA{R: 0xF5, G: 0x3F, B: 0x3F, A: 0xFF})

	e := NewKMeans(1)
	dominant, err := e.Dominant(img, DefaultClusters)
	if err != nil {
		t.Fatalf("Dominant failed: %v", err)
	}
	if dominant.Hex() != "#808080" {
		t.Errorf("Dominant = %s, want #808080", dominant.Hex())
	}

	vibrant, err := e.Vibrant(img, DefaultClusters)
	if err != nil {
		t.Fatalf("Vibrant failed: %v", err)
	}
	if vibrant.Hex() != "#F53F3F" {
		t.Errorf("Vibrant = %s, want #F53F3F", vibrant.Hex())
	}
}

func TestVibrantGreyscaleFallsBack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(img, 0, 12, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
	fill(img, 12, 4, color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF})

	vibrant, err := NewKMeans(1).Vibrant(img, 2)
	if err != nil {
		t.Fatalf("Vibrant failed: %v", err)
	}
	if vibrant.Hex() != "#202020" {
		t.Errorf("Vibrant = %s, want the dominant #202020", vibrant.Hex())
	}
}

func TestClustersKMeans(t *testing.T) {
	// Two noisy groups: 300 reddish pixels and 100 bluish ones.
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < 400; i++ {
		jitter := uint8(i % 7)
		c := color.NRGBA{R: 240 + jitter%5, G: 60 + jitter, B: 60 + uint8(i%11), A: 0xFF}
		if i >= 300 {
			c = color.NRGBA{R: 20 + jitter, G: 90 + uint8(i%11), B: 250 - jitter, A: 0xFF}
		}
		img.SetNRGBA(i%20, i/20, c)
	}

	for _, seed := range []uint64{1, 2, 42} {
		clusters, err := NewKMeans(seed).Clusters(img, 2)
		if err != nil {
			t.Fatalf("Clusters failed: %v", err)
		}
		if len(clusters) != 2 {
			t.Fatalf("seed %d: expected 2 clusters, got %d", seed, len(clusters))
		}

		rgb := clusters[0].Colour.RGB()
		if rgb.R < 235 || rgb.B > 80 {
			t.Errorf("seed %d: heaviest cluster = %s, want the red group", seed, rgb.Hex())
		}
		if math.Abs(clusters[0].Weight-0.75) > 1e-9 {
			t.Errorf("seed %d: weight = %v, want 0.75", seed, clusters[0].Weight)
		}
	}
}

func TestClustersSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(img, 0, 15, color.NRGBA{R: 0xFF, A: 0x10})
	fill(img, 15, 1, color.NRGBA{G: 0xFF, A: 0xFF})

	c, err := NewKMeans(1).Dominant(img, 3)
	if err != nil {
		t.Fatalf("Dominant failed: %v", err)
	}
	if c.Hex() != "#00FF00" {
		t.Errorf("Dominant = %s, want #00FF00", c.Hex())
	}
}

func TestClustersErrors(t *testing.T) {
	e := NewKMeans(1)

	if _, err := e.Clusters(image.NewNRGBA(image.Rect(0, 0, 2, 2)), 3); !errors.Is(err, ErrNoPixels) {
		t.Errorf("transparent image error = %v, want ErrNoPixels", err)
	}
	if _, err := e.Clusters(nil, 3); err == nil {
		t.Error("Expected error for nil image")
	}

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0xFF})
	for _, k := range []int{0, -1, maxClusters + 1} {
		if _, err := e.Clusters(img, k); err == nil {
			t.Errorf("Expected error for k=%d", k)
		}
	}
}
