package analyzer

import (
	"fmt"

	"github.com/mcncl/jsonsmith/internal/models"
)

// Analyzer infers structural type descriptors from parsed JSON values.
//
// Inference is depth-first and deterministic. Arrays take the type of their
// first element only; heterogeneous arrays are not merged into a union, and
// an empty array gets the Unknown element type.
type Analyzer struct {
	// maxDepth bounds recursion; zero means unlimited.
	maxDepth int
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// NewAnalyzerWithMaxDepth creates an Analyzer that refuses documents nested
// deeper than maxDepth.
func NewAnalyzerWithMaxDepth(maxDepth int) *Analyzer {
	return &Analyzer{maxDepth: maxDepth}
}

// Analyze returns the type descriptor for v.
func (a *Analyzer) Analyze(v models.Value) (models.TypeDescriptor, error) {
	return a.analyzeNode(v, "$", 0)
}

// analyzeNode is the core recursive function that determines the descriptor
// for a given JSON node. path names the node in error messages.
func (a *Analyzer) analyzeNode(node models.Value, path string, depth int) (models.TypeDescriptor, error) {
	if a.maxDepth > 0 && depth > a.maxDepth {
		return models.TypeDescriptor{}, fmt.Errorf("value at %s is nested deeper than %d levels", path, a.maxDepth)
	}

	switch v := node.(type) {
	case nil, models.Null:
		return models.TypeDescriptor{Kind: models.TypeNull}, nil
	case models.Bool:
		return models.TypeDescriptor{Kind: models.TypeBool}, nil
	case models.Number:
		return models.TypeDescriptor{Kind: models.TypeNumber}, nil
	case models.String:
		return models.TypeDescriptor{Kind: models.TypeString}, nil
	case models.Array:
		return a.analyzeArray(v, path, depth)
	case models.Object:
		return a.analyzeObject(v, path, depth)
	default:
		return models.TypeDescriptor{}, fmt.Errorf("unexpected json value type: %T", v)
	}
}

func (a *Analyzer) analyzeArray(arr models.Array, path string, depth int) (models.TypeDescriptor, error) {
	if len(arr) == 0 {
		return models.ArrayOf(models.TypeDescriptor{Kind: models.TypeUnknown}), nil
	}

	elem, err := a.analyzeNode(arr[0], path+"[0]", depth+1)
	if err != nil {
		return models.TypeDescriptor{}, err
	}
	return models.ArrayOf(elem), nil
}

func (a *Analyzer) analyzeObject(obj models.Object, path string, depth int) (models.TypeDescriptor, error) {
	var fields []models.Field
	for _, m := range obj {
		ft, err := a.analyzeNode(m.Value, path+"."+m.Key, depth+1)
		if err != nil {
			return models.TypeDescriptor{}, fmt.Errorf("failed to analyze field '%s': %w", m.Key, err)
		}
		fields = append(fields, models.Field{Name: m.Key, Type: ft})
	}
	return models.RecordOf(fields...), nil
}
