package notebook

import "github.com/HamletTheHamster/barcharts/internal/chart"

// Data is the fixed sample every chart is drawn from.
type Data struct {
	Categories []string
	Series     []chart.Series
	Errors     chart.ErrorSeries
}

// Sample returns the session's hardcoded data. The error magnitudes belong
// to the first series.
func Sample() Data {
	return Data{
		Categories: []string{"A", "B", "C", "D"},
		Series: []chart.Series{
			{Name: "Group 1", Values: []float64{4, 3, 2, 5}},
			{Name: "Group 2", Values: []float64{2, 5, 3, 1}},
			{Name: "Group 3", Values: []float64{3, 2, 4, 2}},
		},
		Errors: chart.ErrorSeries{Of: "Group 1", Values: []float64{0.5, 0.3, 0.4, 0.2}},
	}
}
