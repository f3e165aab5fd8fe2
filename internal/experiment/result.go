package experiment

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoData is returned when no trial produced a record.
var ErrNoData = errors.New("experiment: no completed trials")

// Point is the average over all completed trials at one density.
type Point struct {
	Density       int
	BurnedPercent float64
	StdDev        float64
	MeanSteps     float64
	Trials        int
	Skipped       int
}

// Optimum is the density that leaves the most trees standing.
type Optimum struct {
	Density   int
	Surviving float64
}

// Result is the full output of a sweep.
type Result struct {
	Config  Config
	Points  []Point
	Optimum Optimum
}

// Series returns the (density, burned percent) pairs in ascending density.
func (r *Result) Series() (densities, burned []float64) {
	densities = make([]float64, len(r.Points))
	burned = make([]float64, len(r.Points))
	for i, p := range r.Points {
		densities[i] = float64(p.Density)
		burned[i] = p.BurnedPercent
	}
	return densities, burned
}

// Aggregate groups records by density and averages each group. skipped
// counts trials per density that had no tree to ignite. Densities without a
// completed trial are left out. Points come back in ascending density.
func Aggregate(records []Record, skipped map[int]int) []Point {
	groups := map[int][]Record{}
	for _, rec := range records {
		groups[rec.Density] = append(groups[rec.Density], rec)
	}
	points := make([]Point, 0, len(groups))
	for density, recs := range groups {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Trial < recs[j].Trial })
		burned := make([]float64, len(recs))
		steps := make([]float64, len(recs))
		for i, rec := range recs {
			burned[i] = rec.BurnedPercent
			steps[i] = float64(rec.Steps)
		}
		p := Point{
			Density:   density,
			MeanSteps: stat.Mean(steps, nil),
			Trials:    len(recs),
			Skipped:   skipped[density],
		}
		if len(burned) > 1 {
			p.BurnedPercent, p.StdDev = stat.MeanStdDev(burned, nil)
		} else {
			p.BurnedPercent = floats.Sum(burned)
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Density < points[j].Density })
	return points
}

// Surviving returns density/100*total - burned/100*total for a point.
func Surviving(p Point, total int) float64 {
	trees := float64(p.Density) / 100 * float64(total)
	burned := p.BurnedPercent / 100 * float64(total)
	return trees - burned
}

// FindOptimum picks the point with the most surviving trees. Points must be
// in ascending density; on a tie the lower density wins.
func FindOptimum(points []Point, total int) (Optimum, error) {
	if len(points) == 0 {
		return Optimum{}, ErrNoData
	}
	best := Optimum{Density: points[0].Density, Surviving: Surviving(points[0], total)}
	for _, p := range points[1:] {
		if s := Surviving(p, total); s > best.Surviving {
			best = Optimum{Density: p.Density, Surviving: s}
		}
	}
	return best, nil
}
