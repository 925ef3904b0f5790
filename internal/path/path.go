// Package path parses query strings into path expressions.
//
// Grammar, after all whitespace is removed:
//
//	query       = "[" alternation "]" | "{" alternation ":" alternation "}" | alternation
//	alternation = chain { "|" chain }
//	chain       = segment { "." segment }
//
// Mode detection only inspects the first and the last character of the
// query. Parsing is best-effort: Parse always returns a usable Expression and
// reports grammar violations through an error wrapping ErrMalformedPath.
package path

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedPath indicates a query that violates the path grammar.
var ErrMalformedPath = errors.New("malformed path")

const (
	alternativeSeparator = "|"
	segmentSeparator     = "."
	dictionarySeparator  = ":"
)

// Mode selects the shape of a query result.
type Mode int

const (
	ModeSingle Mode = iota
	ModeList
	ModeDictionary
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeList:
		return "list"
	case ModeDictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// Chain is an ordered sequence of attribute names.
type Chain []string

func (c Chain) String() string {
	return strings.Join(c, segmentSeparator)
}

// Valid reports whether the chain has at least one segment and no empty
// segment.
func (c Chain) Valid() bool {
	if len(c) == 0 {
		return false
	}
	for _, segment := range c {
		if segment == "" {
			return false
		}
	}
	return true
}

// Alternation is a list of chains tried left to right.
type Alternation []Chain

func (a Alternation) String() string {
	parts := make([]string, len(a))
	for i, chain := range a {
		parts[i] = chain.String()
	}
	return strings.Join(parts, alternativeSeparator)
}

// Expression is a parsed query.
type Expression struct {
	Mode Mode

	// Alternatives is set for ModeSingle and ModeList.
	Alternatives Alternation

	// Keys and Values are set for ModeDictionary.
	Keys   Alternation
	Values Alternation
}

func (e Expression) String() string {
	switch e.Mode {
	case ModeList:
		return "[" + e.Alternatives.String() + "]"
	case ModeDictionary:
		return "{" + e.Keys.String() + dictionarySeparator + e.Values.String() + "}"
	default:
		return e.Alternatives.String()
	}
}

// Clean removes every whitespace character from raw.
func Clean(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// DetectMode reports the result mode of a cleaned query and the query body
// with the outer brackets or braces removed.
func DetectMode(cleaned string) (Mode, string) {
	if len(cleaned) >= 2 {
		first, last := cleaned[0], cleaned[len(cleaned)-1]
		switch {
		case first == '[' && last == ']':
			return ModeList, cleaned[1 : len(cleaned)-1]
		case first == '{' && last == '}':
			return ModeDictionary, cleaned[1 : len(cleaned)-1]
		}
	}
	return ModeSingle, cleaned
}

// Parse parses a raw query, detecting its mode from the outer brackets.
func Parse(raw string) (Expression, error) {
	mode, body := DetectMode(Clean(raw))

	if mode != ModeDictionary {
		alternatives, err := parseAlternation(body)
		return Expression{Mode: mode, Alternatives: alternatives}, err
	}

	parts := strings.Split(body, dictionarySeparator)
	expr := Expression{Mode: ModeDictionary}

	var errs []error
	if len(parts) != 2 {
		errs = append(errs, fmt.Errorf("%w: dictionary %q needs exactly one %q separator", ErrMalformedPath, raw, dictionarySeparator))
	}

	keys, err := parseAlternation(parts[0])
	if err != nil {
		errs = append(errs, err)
	}
	expr.Keys = keys

	if len(parts) > 1 {
		values, err := parseAlternation(parts[1])
		if err != nil {
			errs = append(errs, err)
		}
		expr.Values = values
	}

	return expr, errors.Join(errs...)
}

// ParseAlternation parses raw as an alternation of chains without mode
// detection.
func ParseAlternation(raw string) (Alternation, error) {
	return parseAlternation(Clean(raw))
}

// SplitChain splits a single dotted chain. Alternation and views are not
// interpreted.
func SplitChain(raw string) Chain {
	return Chain(strings.Split(Clean(raw), segmentSeparator))
}

func parseAlternation(body string) (Alternation, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}

	raw := strings.Split(body, alternativeSeparator)
	alternatives := make(Alternation, 0, len(raw))

	var errs []error
	for _, alternative := range raw {
		chain := Chain(strings.Split(alternative, segmentSeparator))
		if !chain.Valid() {
			errs = append(errs, fmt.Errorf("%w: empty segment in %q", ErrMalformedPath, alternative))
		}
		alternatives = append(alternatives, chain)
	}

	return alternatives, errors.Join(errs...)
}
