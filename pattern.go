package plog

import "strings"

const (
	// PatternErrorText replaces a field whose "{" parameter is never closed.
	PatternErrorText = "<<pattern_error>>"

	// DefaultPattern is the template of every logger that is not given one.
	DefaultPattern = "%d{%Y-%m-%d %H:%M:%S}%T%t%T%F%T[%p]%T[%c]%T%f:%l%T%m%n"
)

// DirectiveKind tags a Directive as literal text or a field reference.
type DirectiveKind uint8

const (
	DirectiveLiteral DirectiveKind = iota + 1
	DirectiveField
)

// Directive is one parsed unit of a template.
//
// A literal carries Text. A field carries its Code and, when written as
// %c{...}, the brace contents in Arg with HasArg set; %d{} therefore has
// HasArg true and an empty Arg.
type Directive struct {
	Kind   DirectiveKind
	Text   string
	Code   string
	Arg    string
	HasArg bool
}

// unknownFieldText is the literal emitted in place of an unknown field code.
func unknownFieldText(code string) string { return "<<error_format %" + code + ">>" }

// Compile parses a template into directives. It never fails: malformed
// input degrades to literal marker text that shows up in rendered output.
//
// Grammar: "%%" is a literal '%'; "%x" is field x; "%x{arg}" is field x with
// a parameter; everything else is literal text. A field code is the run of
// letters (and stray '}') after '%', ended by any other character, which
// then starts the next token. An unclosed '{' emits PatternErrorText and
// ends parsing. Codes missing from the renderer table compile to
// "<<error_format %code>>".
func Compile(template string) []Directive {
	var (
		out []Directive
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, Directive{Kind: DirectiveLiteral, Text: lit.String()})
			lit.Reset()
		}
	}
	field := func(code, arg string, hasArg bool) {
		if _, ok := fieldTable[code]; !ok {
			out = append(out, Directive{Kind: DirectiveLiteral, Text: unknownFieldText(code)})
			return
		}
		out = append(out, Directive{Kind: DirectiveField, Code: code, Arg: arg, HasArg: hasArg})
	}

	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			lit.WriteByte(template[i])
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			lit.WriteByte('%')
			i++
			continue
		}

		// phase 0 reads the code, phase 1 the brace parameter; 2 means closed
		n := i + 1
		phase := 0
		argStart := 0
		var code, arg string
	scan:
		for n < len(template) {
			c := template[n]
			switch phase {
			case 0:
				if c == '{' {
					code = template[i+1 : n]
					phase = 1
					argStart = n + 1
				} else if !isLetter(c) && c != '}' {
					break scan
				}
			case 1:
				if c == '}' {
					arg = template[argStart:n]
					phase = 2
					n++
					break scan
				}
			}
			n++
		}

		flush()
		switch phase {
		case 0:
			field(template[i+1:n], "", false)
			i = n - 1
		case 1:
			out = append(out, Directive{Kind: DirectiveLiteral, Text: PatternErrorText})
			i = len(template)
		case 2:
			field(code, arg, true)
			i = n - 1
		}
	}
	flush()
	return out
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
