package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate computes an arithmetic expression such as "2 + 2", "sqrt(16)" or
// "pow(2, 10) % 7". Supported operators are + - * / % and ^ for
// exponentiation, with parentheses and the functions sqrt, pow, abs, sin,
// cos, tan, log and exp.
func Evaluate(expression string) (float64, error) {
	p := &exprParser{input: expression}

	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()

	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}

	return value, nil
}

// mathFuncs are the functions the evaluator accepts, with their arity.
var mathFuncs = map[string]struct {
	arity int
	apply func(args []float64) float64
}{
	"sqrt": {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"pow":  {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"abs":  {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"sin":  {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":  {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":  {1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"log":  {1, func(a []float64) float64 { return math.Log(a[0]) }},
	"exp":  {1, func(a []float64) float64 { return math.Exp(a[0]) }},
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '+':
			p.pos++

			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}

			value += right
		case '-':
			p.pos++

			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}

			value -= right
		default:
			return value, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '*':
			p.pos++

			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}

			value *= right
		case '/':
			p.pos++

			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}

			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}

			value /= right
		case '%':
			p.pos++

			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}

			if right == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}

			value = math.Mod(value, right)
		default:
			return value, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++

		value, err := p.parseUnary()
		return -value, err
	case '+':
		p.pos++
		return p.parseUnary()
	}

	return p.parsePower()
}

func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}

	if p.peek() == '^' {
		p.pos++

		// Right associative.
		exponent, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		return math.Pow(base, exponent), nil
	}

	return base, nil
}

func (p *exprParser) parsePrimary() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++

		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}

		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}

		p.pos++

		return value, nil

	case c == '.' || unicode.IsDigit(rune(c)):
		return p.parseNumber()

	case unicode.IsLetter(rune(c)):
		return p.parseCall()
	}

	return 0, fmt.Errorf("unexpected input at position %d", p.pos)
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", p.input[start:p.pos])
	}

	return value, nil
}

func (p *exprParser) parseCall() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsLetter(rune(p.input[p.pos])) || unicode.IsDigit(rune(p.input[p.pos]))) {
		p.pos++
	}

	name := strings.ToLower(p.input[start:p.pos])

	fn, ok := mathFuncs[name]
	if !ok {
		return 0, fmt.Errorf("unknown function %q", name)
	}

	if p.peek() != '(' {
		return 0, fmt.Errorf("expected '(' after %q", name)
	}

	p.pos++

	args := make([]float64, 0, fn.arity)

	for i := 0; i < fn.arity; i++ {
		if i > 0 {
			if p.peek() != ',' {
				return 0, fmt.Errorf("%s expects %d arguments", name, fn.arity)
			}

			p.pos++
		}

		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}

		args = append(args, arg)
	}

	if p.peek() != ')' {
		return 0, fmt.Errorf("missing closing parenthesis in call to %q", name)
	}

	p.pos++

	return fn.apply(args), nil
}

// peek returns the next non-space byte without consuming it, or 0 at the end
// of input.
func (p *exprParser) peek() byte {
	p.skipSpaces()

	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// FormatResult renders an evaluation result: whole values print without a
// decimal point.
func FormatResult(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
