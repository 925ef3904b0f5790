// Package plan runs a list of named queries against one document.
//
// A plan is a YAML file:
//
//	focus: store            # optional
//	queries:
//	  - name: title
//	    query: book.title
//	    default: Untitled
//	  - name: kevin_books
//	    query: books
//	    where: {field: authors, value: Kevin}
//	    limit: 10
//
// Results are collected into a map keyed by query name, in plan order.
package plan

import (
	"errors"
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"

	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/selector"
	"github.com/jacoelho/pick/internal/tree"
)

// ErrInvalidPlan is the sentinel error for all plan loading failures.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan is an ordered set of named queries.
type Plan struct {
	Focus   string  `yaml:"focus,omitempty"`
	Queries []Query `yaml:"queries"`
}

// Query is one named entry of a plan.
type Query struct {
	Name    string   `yaml:"name"`
	Query   string   `yaml:"query"`
	Or      []string `yaml:"or,omitempty"`
	Default Literal  `yaml:"default,omitempty"`
	Where   *Where   `yaml:"where,omitempty"`
	Limit   int      `yaml:"limit,omitempty"`
}

// Where filters context items by a field value.
type Where struct {
	Field string  `yaml:"field"`
	Value Literal `yaml:"value"`
}

// Load decodes and validates a plan. Unknown fields are rejected.
func Load(r io.Reader) (*Plan, error) {
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())

	var p Plan
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrInvalidPlan, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks structural constraints of the plan.
func (p *Plan) Validate() error {
	if len(p.Queries) == 0 {
		return fmt.Errorf("%w: no queries", ErrInvalidPlan)
	}

	seen := make(map[string]struct{}, len(p.Queries))
	for i, q := range p.Queries {
		if q.Name == "" {
			return fmt.Errorf("%w: query at index %d missing name", ErrInvalidPlan, i)
		}
		if _, dup := seen[q.Name]; dup {
			return fmt.Errorf("%w: duplicate query name %q", ErrInvalidPlan, q.Name)
		}
		seen[q.Name] = struct{}{}

		if q.Query == "" {
			return fmt.Errorf("%w: query %q missing query", ErrInvalidPlan, q.Name)
		}
		if q.Limit < 0 {
			return fmt.Errorf("%w: query %q limit must be >= 0, got: %d", ErrInvalidPlan, q.Name, q.Limit)
		}
		if q.Where != nil {
			if q.Where.Field == "" {
				return fmt.Errorf("%w: query %q where missing field", ErrInvalidPlan, q.Name)
			}
			if !q.Where.Value.Set {
				return fmt.Errorf("%w: query %q where missing value", ErrInvalidPlan, q.Name)
			}
		}
	}

	return nil
}

// CheckPaths reports every malformed path in the plan.
func (p *Plan) CheckPaths() error {
	var errs []error
	for _, q := range p.Queries {
		paths := append([]string{q.Query}, q.Or...)
		if q.Where != nil {
			paths = append(paths, q.Where.Field)
		}
		for _, raw := range paths {
			if _, err := path.Parse(raw); err != nil {
				errs = append(errs, fmt.Errorf("query %q: %w", q.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Run evaluates every query against e and returns a map of results keyed by
// query name.
func Run(e *selector.Engine, p *Plan) tree.Value {
	if p.Focus != "" {
		e = e.Focus(p.Focus)
	}

	fields := make([]tree.Field, 0, len(p.Queries))
	for _, q := range p.Queries {
		fields = append(fields, tree.Field{Key: q.Name, Value: q.evaluate(e)})
	}
	return tree.Map(fields...)
}

func (q Query) evaluate(e *selector.Engine) tree.Value {
	if q.Where == nil && q.Limit == 0 && len(q.Or) == 0 {
		var opts []selector.QueryOption
		if q.Default.Set {
			opts = append(opts, selector.WithDefault(q.Default.Value))
		}
		return e.Query(q.Query, opts...)
	}

	return e.Fetch(q.Request())
}

// Request converts q into a selector request.
func (q Query) Request() selector.Request {
	req := selector.Request{
		Find:  q.Query,
		Or:    q.Or,
		Limit: q.Limit,
	}
	if q.Default.Set {
		fallback := q.Default.Value
		req.Default = &fallback
	}
	if q.Where != nil {
		req.Where = &selector.Condition{Field: q.Where.Field, Value: q.Where.Value.Value}
	}
	return req
}
