package chart

// GroupOffsets returns the category-axis offset of each of n series drawn
// side by side, so that the cluster is centred on its tick.
func GroupOffsets(n int, barWidth float64) []float64 {
	offs := make([]float64, n)
	mid := float64(n-1) / 2
	for s := range offs {
		offs[s] = (float64(s) - mid) * barWidth
	}
	return offs
}

// StackBaselines returns, for every series, the height each of its bars
// starts from: the running sum of all earlier series at the same category.
func StackBaselines(list []Series) [][]float64 {
	if len(list) == 0 {
		return nil
	}

	bases := make([][]float64, len(list))
	running := make([]float64, len(list[0].Values))
	for s, series := range list {
		bases[s] = append([]float64(nil), running...)
		for i, v := range series.Values {
			running[i] += v
		}
	}
	return bases
}

// StackTotals returns the per-category sum of all series.
func StackTotals(list []Series) []float64 {
	if len(list) == 0 {
		return nil
	}

	totals := make([]float64, len(list[0].Values))
	for _, series := range list {
		for i, v := range series.Values {
			totals[i] += v
		}
	}
	return totals
}

// LabelPositions places a label above each bar top, margin away.
func LabelPositions(centres, tops []float64, margin float64) []Point {
	pts := make([]Point, len(centres))
	for i := range pts {
		pts[i] = Point{X: centres[i], Y: tops[i] + margin}
	}
	return pts
}

func ticks(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
