// Package extract finds seed colours in images with k-means clustering.
package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/jmylchreest/huestep/internal/colour"
)

// ErrNoPixels is returned for images with no opaque pixels.
var ErrNoPixels = errors.New("no opaque pixels in image")

const (
	// DefaultClusters is the number of clusters used when none is given.
	DefaultClusters = 5
	maxClusters     = 64
	maxSamples      = 2000

	// Pixels with less alpha than this are ignored.
	minAlpha = 0x80
)

// Cluster is one extracted colour and the share of sampled pixels it covers.
type Cluster struct {
	Colour colour.Colour
	Weight float64
}

// KMeans clusters image pixels in RGB space.
type KMeans struct {
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// NewKMeans returns an extractor. The same seed gives the same clusters.
func NewKMeans(seed uint64) *KMeans {
	return &KMeans{
		maxIterations: 20,
		convergence:   2.0,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Clusters returns up to k clusters ordered by weight, heaviest first.
func (e *KMeans) Clusters(img image.Image, k int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 || k > maxClusters {
		return nil, fmt.Errorf("cluster count must be between 1 and %d, got %d", maxClusters, k)
	}

	points := samplePixels(img)
	if len(points) == 0 {
		return nil, ErrNoPixels
	}

	unique := uniquePoints(points)
	var (
		centroids []point3D
		weights   []float64
	)
	if len(unique) <= k {
		centroids, weights = countPoints(points, unique)
	} else {
		centroids, weights = e.kmeans(points, k)
	}

	clusters := make([]Cluster, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Colour: colour.FromRGB(toChannel(c.R), toChannel(c.G), toChannel(c.B)),
			Weight: weights[i],
		})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Weight > clusters[j].Weight
	})

	return clusters, nil
}

// Dominant returns the heaviest cluster colour.
func (e *KMeans) Dominant(img image.Image, k int) (colour.Colour, error) {
	clusters, err := e.Clusters(img, k)
	if err != nil {
		return colour.Colour{}, err
	}
	return clusters[0].Colour, nil
}

// Vibrant returns the cluster with the largest saturation-weighted share,
// falling back to the dominant colour for greyscale images.
func (e *KMeans) Vibrant(img image.Image, k int) (colour.Colour, error) {
	clusters, err := e.Clusters(img, k)
	if err != nil {
		return colour.Colour{}, err
	}

	best, bestScore := clusters[0].Colour, 0.0
	for _, c := range clusters {
		if score := c.Colour.SaturationV() * c.Weight; score > bestScore {
			best, bestScore = c.Colour, score
		}
	}
	return best, nil
}

type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Floor(v+0.5))))
}

// samplePixels grid-samples opaque pixels, capped at maxSamples.
func samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	points := make([]point3D, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < minAlpha {
				continue
			}
			points = append(points, point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)})
			if len(points) >= maxSamples {
				return points
			}
		}
	}
	return points
}

func uniquePoints(points []point3D) []point3D {
	seen := make(map[point3D]bool, len(points))
	out := make([]point3D, 0)
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// countPoints weighs each unique colour by its share of the samples.
func countPoints(points, unique []point3D) ([]point3D, []float64) {
	index := make(map[point3D]int, len(unique))
	for i, p := range unique {
		index[p] = i
	}
	weights := make([]float64, len(unique))
	for _, p := range points {
		weights[index[p]]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}
	return unique, weights
}

func (e *KMeans) kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := e.recalculate(points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	for i, p := range points {
		assignments[i] = nearestCentroid(p, centroids)
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}
	return centroids, weights
}

// initCentroids seeds centroids with k-means++.
func (e *KMeans) initCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (e *KMeans) recalculate(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = points[e.rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
