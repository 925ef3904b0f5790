package selector

import (
	"log/slog"

	"github.com/jacoelho/pick/internal/decode"
	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

// Engine evaluates queries against an immutable root value.
// It is safe for concurrent use.
type Engine struct {
	root   tree.Value
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Engine rooted at root.
func New(root tree.Value, opts ...Option) *Engine {
	e := &Engine{
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromAny returns an Engine rooted at decoded Go data.
func FromAny(data any, opts ...Option) *Engine {
	return New(tree.FromAny(data), opts...)
}

// FromJSON decodes a JSON document once and returns an Engine rooted at it.
// Decoding failures wrap decode.ErrDecode.
func FromJSON(data []byte, opts ...Option) (*Engine, error) {
	root, err := decode.JSON(data)
	if err != nil {
		return nil, err
	}
	return New(root, opts...), nil
}

// FromYAML decodes a YAML document once and returns an Engine rooted at it.
// Decoding failures wrap decode.ErrDecode.
func FromYAML(data []byte, opts ...Option) (*Engine, error) {
	root, err := decode.YAML(data)
	if err != nil {
		return nil, err
	}
	return New(root, opts...), nil
}

// Root returns the value the engine queries.
func (e *Engine) Root() tree.Value {
	return e.root
}

// QueryOption configures a single Query call.
type QueryOption func(*queryConfig)

type queryConfig struct {
	fallback    tree.Value
	hasFallback bool
}

// WithDefault replaces the default returned by single and list queries that
// do not resolve. Dictionary queries always return a map.
func WithDefault(v tree.Value) QueryOption {
	return func(c *queryConfig) {
		c.fallback = v
		c.hasFallback = true
	}
}

// Query parses raw, selects the result mode from its outer brackets and
// evaluates it. Malformed paths are evaluated best-effort and therefore fall
// back to the default.
//
// Defaults per mode: "" for single values, [] for lists, {} for dictionaries.
func (e *Engine) Query(raw string, opts ...QueryOption) tree.Value {
	expr, err := path.Parse(raw)
	if err != nil {
		e.logger.Debug("malformed path", "path", raw, "error", err)
	}
	return e.Evaluate(expr, opts...)
}

// Evaluate runs an already parsed expression.
func (e *Engine) Evaluate(expr path.Expression, opts ...QueryOption) tree.Value {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch expr.Mode {
	case path.ModeList:
		fallback := tree.List()
		if cfg.hasFallback {
			fallback = cfg.fallback
		}
		return e.all(expr.Alternatives, fallback)
	case path.ModeDictionary:
		return e.dictionary(expr.Keys, expr.Values)
	default:
		fallback := tree.String("")
		if cfg.hasFallback {
			fallback = cfg.fallback
		}
		return e.one(expr.Alternatives, fallback)
	}
}

// GetOne returns the first value reached by the alternatives in raw, or
// fallback when none resolves. View brackets are not interpreted.
func (e *Engine) GetOne(raw string, fallback tree.Value) tree.Value {
	return e.one(e.alternation(raw), fallback)
}

// GetAll returns every value reached by the first resolving alternative in
// raw as a list, or fallback when none resolves. View brackets are not
// interpreted.
func (e *Engine) GetAll(raw string, fallback tree.Value) tree.Value {
	return e.all(e.alternation(raw), fallback)
}

// GetDictionary zips the values reached by keysPath with the values reached
// by valuesPath.
func (e *Engine) GetDictionary(keysPath, valuesPath string) tree.Value {
	return e.dictionary(e.alternation(keysPath), e.alternation(valuesPath))
}

func (e *Engine) one(alternatives path.Alternation, fallback tree.Value) tree.Value {
	results := evaluateAlternatives(e.root, alternatives)
	if len(results) == 0 {
		return fallback
	}
	return results[0]
}

func (e *Engine) all(alternatives path.Alternation, fallback tree.Value) tree.Value {
	results := evaluateAlternatives(e.root, alternatives)
	if len(results) == 0 {
		return fallback
	}
	return tree.List(results...)
}

func (e *Engine) alternation(raw string) path.Alternation {
	alternatives, err := path.ParseAlternation(raw)
	if err != nil {
		e.logger.Debug("malformed path", "path", raw, "error", err)
	}
	return alternatives
}
