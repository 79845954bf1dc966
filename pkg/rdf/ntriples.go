package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseNTriples reads an N-Triples document and returns the resulting
// graph. Blank lines and comment lines are skipped. Blank node subjects
// and objects are not supported; the repository always serves skolemized
// resources.
func ParseNTriples(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		subject, rest, err := parseURIRef(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid subject: %w", lineNo, err)
		}

		predicate, rest, err := parseURIRef(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid predicate: %w", lineNo, err)
		}

		object, rest, err := parseObject(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid object: %w", lineNo, err)
		}

		if strings.TrimSpace(rest) != "." {
			return nil, fmt.Errorf("line %d: missing statement terminator", lineNo)
		}

		g.Add(subject, predicate, object)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

func parseURIRef(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", s, fmt.Errorf("expected '<', got %q", firstRune(s))
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", s, fmt.Errorf("unterminated URI reference")
	}
	return s[1:end], s[end+1:], nil
}

func parseObject(s string) (Term, string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		uri, rest, err := parseURIRef(s)
		if err != nil {
			return Term{}, s, err
		}
		return NewURIRef(uri), rest, nil
	}

	if !strings.HasPrefix(s, `"`) {
		return Term{}, s, fmt.Errorf("expected '<' or '\"', got %q", firstRune(s))
	}

	value, rest, err := parseQuoted(s)
	if err != nil {
		return Term{}, s, err
	}

	if lang, after, found := strings.Cut(rest, " "); found && strings.HasPrefix(lang, "@") {
		return NewLangLiteral(value, lang[1:]), after, nil
	}

	if strings.HasPrefix(rest, "^^") {
		datatype, after, err := parseURIRef(rest[2:])
		if err != nil {
			return Term{}, s, err
		}
		return NewTypedLiteral(value, datatype), after, nil
	}

	return NewLiteral(value), rest, nil
}

func parseQuoted(s string) (string, string, error) {
	var b strings.Builder
	i := 1

	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), s[i+1:], nil
		case '\\':
			if i+1 >= len(s) {
				return "", s, fmt.Errorf("truncated escape sequence")
			}
			i++
			switch s[i] {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\':
				b.WriteByte(s[i])
			case 'u', 'U':
				width := 4
				if s[i] == 'U' {
					width = 8
				}
				if i+width >= len(s) {
					return "", s, fmt.Errorf("truncated unicode escape")
				}
				code, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
				if err != nil {
					return "", s, fmt.Errorf("invalid unicode escape: %w", err)
				}
				b.WriteRune(rune(code))
				i += width
			default:
				return "", s, fmt.Errorf("unknown escape sequence \\%c", s[i])
			}
		default:
			b.WriteByte(c)
		}
		i++
	}

	return "", s, fmt.Errorf("unterminated literal")
}

func firstRune(s string) string {
	if s == "" {
		return "EOL"
	}
	return s[:1]
}
