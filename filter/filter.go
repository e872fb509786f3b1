// Package filter evaluates expr expressions against geocoding results,
// allowing client-side narrowing of a feature collection, e.g.
//
//	Confidence > 0.8 && Layer == "venue"
//	Country == "Germany" || Locality startsWith "Ber"
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mapq/mapq/mapzen"
)

// Env is the expression environment built from one feature.
type Env struct {
	Name       string
	Label      string
	Layer      string
	Source     string
	Country    string
	Region     string
	Locality   string
	PostalCode string
	Confidence float64
	Distance   float64
	Lat        float64
	Lon        float64
}

// Filter is a compiled feature filter.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a reusable filter. The expression
// must evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single feature.
func (f *Filter) Match(feature mapzen.Feature) (bool, error) {
	output, err := expr.Run(f.program, envFor(feature))
	if err != nil {
		return false, &EvaluationError{
			Expression:  f.expression,
			FeatureName: feature.Properties.Name,
			Reason:      err.Error(),
			Err:         err,
		}
	}

	matched, ok := output.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression:  f.expression,
			FeatureName: feature.Properties.Name,
			Reason:      "expression did not evaluate to a boolean",
		}
	}

	return matched, nil
}

// Apply returns the features matching the filter, preserving order.
func (f *Filter) Apply(collection *mapzen.FeatureCollection) ([]mapzen.Feature, error) {
	if collection == nil {
		return nil, nil
	}

	var matched []mapzen.Feature
	for _, feature := range collection.Features {
		ok, err := f.Match(feature)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, feature)
		}
	}

	return matched, nil
}

func envFor(feature mapzen.Feature) Env {
	point := feature.Point()
	props := feature.Properties

	return Env{
		Name:       props.Name,
		Label:      props.Label,
		Layer:      props.Layer,
		Source:     props.Source,
		Country:    props.Country,
		Region:     props.Region,
		Locality:   props.Locality,
		PostalCode: props.PostalCode,
		Confidence: props.Confidence,
		Distance:   props.Distance,
		Lat:        point.Lat,
		Lon:        point.Lon,
	}
}
