// Package present renders exercises for display.
//
// Questions are converted to LaTeX textually, token by token, so the
// authored term order is never changed. Solutions are rendered from their
// canonical structured form.
package present

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokNumber  tokenKind = iota // digit run, optionally with one decimal point
	tokRadical                  // √
	tokSlash                    // /
	tokOpen                     // (
	tokClose                    // )
	tokSpace                    // run of spaces
	tokOther                    // operators, letters, anything else
)

type token struct {
	kind tokenKind
	text string
}

// scanner states
const (
	stStart = iota
	stNumber
	stFraction // inside the digits after a decimal point
	stSpace
)

// tokenize splits s into tokens in a single left-to-right pass.
func tokenize(s string) []token {
	var toks []token
	state := stStart
	start := 0

	flush := func(end int) {
		switch state {
		case stNumber, stFraction:
			toks = append(toks, token{tokNumber, s[start:end]})
		case stSpace:
			toks = append(toks, token{tokSpace, s[start:end]})
		}
		state = stStart
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r >= '0' && r <= '9':
			if state != stNumber && state != stFraction {
				flush(i)
				state, start = stNumber, i
			}
		case r == '.' && state == stNumber && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9':
			state = stFraction
		case r == ' ':
			if state != stSpace {
				flush(i)
				state, start = stSpace, i
			}
		default:
			flush(i)
			kind := tokOther
			switch r {
			case '√':
				kind = tokRadical
			case '/':
				kind = tokSlash
			case '(':
				kind = tokOpen
			case ')':
				kind = tokClose
			}
			toks = append(toks, token{kind, s[i : i+size]})
		}
		i += size
	}
	flush(len(s))
	return toks
}

// innermostPairs returns the indexes of brackets that enclose no other
// bracket pair, keyed by the opening index with the closing index as value.
// Unbalanced brackets are not paired.
func innermostPairs(toks []token) map[int]int {
	type frame struct {
		open     int
		hasChild bool
	}
	pairs := make(map[int]int)
	var stack []frame
	for i, t := range toks {
		switch t.kind {
		case tokOpen:
			stack = append(stack, frame{open: i})
		case tokClose:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !top.hasChild {
				pairs[top.open] = i
			}
			if len(stack) > 0 {
				stack[len(stack)-1].hasChild = true
			}
		}
	}
	return pairs
}

var symbols = map[string]string{
	"·": `\cdot`,
	"×": `\times`,
	"÷": `\div`,
	":": `\div`,
	"²": `^{2}`,
	"−": "-",
}

// QuestionLaTeX converts a question string into LaTeX markup without
// reordering anything:
//
//	(√3 + 2)(√3 - 2)  ->  \left(\sqrt{3} + 2\right)\left(\sqrt{3} - 2\right)
//	(3/4 + 1/2) · 4   ->  \left(\frac{3}{4} + \frac{1}{2}\right) \cdot 4
//	2 1/2 ÷ 0.5       ->  2\frac{1}{2} \div 0.5
//
// Only brackets without nested brackets become \left( \right). The result is
// not wrapped in math delimiters.
func QuestionLaTeX(q string) string {
	toks := tokenize(q)
	pairs := innermostPairs(toks)
	closers := make(map[int]bool, len(pairs))
	for _, c := range pairs {
		closers[c] = true
	}

	var w latexWriter
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.kind {
		case tokNumber:
			// whole, space, a/b: mixed number
			if isFraction(toks, i+2) && toks[i+1].kind == tokSpace && !strings.Contains(t.text, ".") {
				w.write(t.text)
				w.frac(toks[i+2].text, toks[i+4].text)
				i += 4
				continue
			}
			if isFraction(toks, i) {
				w.frac(t.text, toks[i+2].text)
				i += 2
				continue
			}
			w.write(t.text)
		case tokRadical:
			if i+1 < len(toks) && toks[i+1].kind == tokNumber {
				w.control(`\sqrt`)
				w.write("{" + toks[i+1].text + "}")
				i++
				continue
			}
			w.control(`\sqrt`)
		case tokOpen:
			if _, ok := pairs[i]; ok {
				w.control(`\left(`)
				continue
			}
			w.write(t.text)
		case tokClose:
			if closers[i] {
				w.control(`\right)`)
				continue
			}
			w.write(t.text)
		case tokOther:
			if sym, ok := symbols[t.text]; ok {
				if strings.HasPrefix(sym, `\`) {
					w.control(sym)
				} else {
					w.write(sym)
				}
				continue
			}
			w.write(t.text)
		default:
			w.write(t.text)
		}
	}
	return w.String()
}

// isFraction reports whether toks[i:i+3] is number/number with integer parts.
func isFraction(toks []token, i int) bool {
	return i+2 < len(toks) &&
		toks[i].kind == tokNumber && toks[i+1].kind == tokSlash && toks[i+2].kind == tokNumber &&
		!strings.Contains(toks[i].text, ".") && !strings.Contains(toks[i+2].text, ".")
}

// latexWriter separates a control word from a following letter.
type latexWriter struct {
	b           strings.Builder
	afterSymbol bool
}

func (w *latexWriter) write(s string) {
	if w.afterSymbol && s != "" && isLetter(s[0]) {
		w.b.WriteByte(' ')
	}
	w.afterSymbol = false
	w.b.WriteString(s)
}

// control writes a control sequence. Sequences ending in a letter need a
// separator before a following letter.
func (w *latexWriter) control(s string) {
	w.write(s)
	w.afterSymbol = isLetter(s[len(s)-1])
}

func (w *latexWriter) frac(num, den string) {
	w.control(`\frac`)
	w.write("{" + num + "}{" + den + "}")
}

func (w *latexWriter) String() string { return w.b.String() }

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
