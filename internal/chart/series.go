package chart

import (
	"fmt"
	"math"
)

// Series is one named run of values, one per category.
type Series struct {
	Name   string
	Values []float64
}

// ErrorSeries holds symmetric error magnitudes for the series named Of.
type ErrorSeries struct {
	Of     string
	Values []float64
}

func checkCategories(categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidInput)
	}
	return nil
}

func checkSeries(categories []string, s Series) error {
	if len(s.Values) != len(categories) {
		return fmt.Errorf(
			"%w: series %q has %d values for %d categories",
			ErrInvalidInput, s.Name, len(s.Values), len(categories),
		)
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: series %q value %d is %v", ErrInvalidInput, s.Name, i, v)
		}
	}
	return nil
}

func checkSeriesList(categories []string, list []Series) error {
	if err := checkCategories(categories); err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("%w: no series", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		if err := checkSeries(categories, s); err != nil {
			return err
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: series %q appears twice", ErrInvalidInput, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func checkErrors(categories []string, s Series, e ErrorSeries) error {
	if e.Of != s.Name {
		return fmt.Errorf("%w: errors belong to %q, not %q", ErrInvalidInput, e.Of, s.Name)
	}
	if len(e.Values) != len(categories) {
		return fmt.Errorf(
			"%w: %d errors for %d categories",
			ErrInvalidInput, len(e.Values), len(categories),
		)
	}
	for i, v := range e.Values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: error %d is %v", ErrInvalidInput, i, v)
		}
	}
	return nil
}
