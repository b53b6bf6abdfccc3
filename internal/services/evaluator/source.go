package evaluator

import "strings"

// line is one line of code with comments removed. no is 1-based.
type line struct {
	no   int
	text string
}

// source is contract text split for line-oriented checks.
type source struct {
	raw   string
	lines []line
}

func parse(raw string) *source {
	src := &source{raw: raw}
	inBlock := false
	for i, l := range strings.Split(raw, "\n") {
		text := stripComments(strings.TrimRight(l, "\r"), &inBlock)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		src.lines = append(src.lines, line{no: i + 1, text: text})
	}
	return src
}

// stripComments drops // and /* */ comment text. Comment markers inside
// string literals are kept; literals do not span lines.
func stripComments(l string, inBlock *bool) string {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(l); i++ {
		c := l[i]
		if *inBlock {
			if strings.HasPrefix(l[i:], "*/") {
				*inBlock = false
				i++
			}
			continue
		}
		if quote != 0 {
			b.WriteByte(c)
			switch {
			case c == '\\' && i+1 < len(l):
				i++
				b.WriteByte(l[i])
			case c == quote:
				quote = 0
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(l[i:], "//"):
			return b.String()
		case strings.HasPrefix(l[i:], "/*"):
			*inBlock = true
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// first returns the first code line matching fn.
func (s *source) first(fn func(string) bool) (line, bool) {
	for _, l := range s.lines {
		if fn(l.text) {
			return l, true
		}
	}
	return line{}, false
}

func (s *source) contains(fn func(string) bool) bool {
	_, ok := s.first(fn)
	return ok
}
