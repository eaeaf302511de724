// Package directive parses the `bind` struct-tag language used to attach
// binding metadata to struct fields, e.g.
//
//	Page    int            `bind:"query,name=page"`
//	Cache   ActivatorCache `bind:"services"`
//	TraceID string         `bind:"header,name=X-Trace-Id"`
//	Amount  Money          `bind:"custom,binder=money"`
package directive

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Directive is the parsed form of one bind tag
type Directive struct {
	// Source is the declared binding source name (first segment)
	Source string

	// Name overrides the request key used for lookup
	Name string

	// Binder names the custom binder for source "custom"
	Binder string

	// Options holds any remaining key/value options
	Options map[string]string
}

// tagExpr is the participle grammar root: a source name followed by
// comma-separated options
type tagExpr struct {
	Source  string      `parser:"@Ident"`
	Options []tagOption `parser:"( Comma @@ )*"`
}

// tagOption is a single option: a bare flag or key=value
type tagOption struct {
	Key   string  `parser:"@Ident"`
	Value *string `parser:"( Equals @(Ident | Value) )?"`
}

var tagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Value", Pattern: `[a-zA-Z0-9_./:-]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var tagParser = participle.MustBuild[tagExpr](
	participle.Lexer(tagLexer),
	participle.Elide("Whitespace"),
)

// ParseError reports a malformed bind tag
type ParseError struct {
	Tag     string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid bind tag %q: %s", e.Tag, e.Message)
}

// Parse parses a bind tag value into a Directive
func Parse(tag string) (*Directive, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return nil, &ParseError{Tag: tag, Message: "empty directive"}
	}

	expr, err := tagParser.ParseString("", trimmed)
	if err != nil {
		return nil, &ParseError{Tag: tag, Message: err.Error()}
	}

	d := &Directive{
		Source:  expr.Source,
		Options: make(map[string]string),
	}

	for _, opt := range expr.Options {
		value := ""
		if opt.Value != nil {
			value = *opt.Value
		}
		switch opt.Key {
		case "name":
			if value == "" {
				return nil, &ParseError{Tag: tag, Message: "option name requires a value"}
			}
			d.Name = value
		case "binder":
			if value == "" {
				return nil, &ParseError{Tag: tag, Message: "option binder requires a value"}
			}
			d.Binder = value
		default:
			if _, dup := d.Options[opt.Key]; dup {
				return nil, &ParseError{Tag: tag, Message: fmt.Sprintf("duplicate option %q", opt.Key)}
			}
			d.Options[opt.Key] = value
		}
	}

	if d.Source == "custom" && d.Binder == "" {
		return nil, &ParseError{Tag: tag, Message: "source custom requires a binder option"}
	}

	return d, nil
}

// knownSources is the closed set of builtin source names
var knownSources = map[string]bool{
	"services": true,
	"service":  true,
	"query":    true,
	"route":    true,
	"path":     true,
	"body":     true,
	"header":   true,
	"custom":   true,
}

// Validate parses a bind tag and additionally rejects unknown source names.
// The runtime binder tolerates unknown sources (it declines them); the
// static checker does not.
func Validate(tag string) (*Directive, error) {
	d, err := Parse(tag)
	if err != nil {
		return nil, err
	}
	if !knownSources[strings.ToLower(d.Source)] {
		return nil, &ParseError{Tag: tag, Message: fmt.Sprintf("unknown binding source %q", d.Source)}
	}
	return d, nil
}
