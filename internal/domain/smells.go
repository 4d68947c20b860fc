package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "covlens.dev/pkg/covlens/internal/model"
)

// Scanner thresholds.
const (
	longMethodLines   = 50
	largeClassLines   = 500
	duplicateMinChars = 20
	duplicateMinCount = 2
)

// methodSignaturePattern matches a Java method signature on a single line:
// visibility modifier, optional static, return type, name, parameter list,
// opening brace. This is line-pattern matching, not parsing; signatures
// split across lines or sharing a line with other code can be missed, and
// that blind spot is part of the scanner's contract.
var methodSignaturePattern = regexp.MustCompile(`(public|private|protected)\s+(?:static\s+)?[\w<>]+\s+(\w+)\s*\([^)]*\)\s*\{`)

// magicNumberPattern matches a bare integer literal of two or more digits.
var magicNumberPattern = regexp.MustCompile(`\b\d{2,}\b`)

// ScanSmells runs the heuristic smell checks over one source file. Long
// methods and the large-class check share a single top-to-bottom pass;
// the magic-number and duplicate-line checks are separate passes appended
// after, so smells arrive in detection order.
func ScanSmells(source []byte) []m.CodeSmell {
	lines := strings.Split(string(source), "\n")

	smells := scanStructure(lines)

	if smell, ok := scanMagicNumber(lines); ok {
		smells = append(smells, smell)
	}

	if smell, ok := scanDuplicates(lines); ok {
		smells = append(smells, smell)
	}

	return smells
}

// scanStructure walks the file once, tracking brace depth. A method
// signature matched at depth zero closes the previous open method; spans
// longer than 50 lines are flagged. Files longer than 500 lines earn a
// single file-level smell.
func scanStructure(lines []string) []m.CodeSmell {
	var smells []m.CodeSmell

	braceDepth := 0
	currentMethod := ""
	methodStart := 0

	for i, line := range lines {
		match := methodSignaturePattern.FindStringSubmatch(line)
		if match != nil && braceDepth == 0 {
			if currentMethod != "" {
				span := i - methodStart
				if span > longMethodLines {
					smells = append(smells, m.CodeSmell{
						Kind:       m.SmellLongMethod,
						Location:   fmt.Sprintf("Line %d", methodStart+1),
						Unit:       currentMethod,
						Severity:   m.SeverityMedium,
						Suggestion: "Consider breaking down into smaller methods",
					})
				}
			}

			currentMethod = match[2]
			methodStart = i
		}

		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
	}

	if len(lines) > largeClassLines {
		smells = append(smells, m.CodeSmell{
			Kind:       m.SmellLargeClass,
			Location:   "Entire file",
			Unit:       "N/A",
			Severity:   m.SeverityHigh,
			Suggestion: "Consider splitting into multiple classes",
		})
	}

	return smells
}

// scanMagicNumber flags only the first qualifying line per file. Lines
// mentioning final or static anywhere are assumed to declare constants and
// are exempt.
func scanMagicNumber(lines []string) (m.CodeSmell, bool) {
	for i, line := range lines {
		if strings.Contains(line, "final") || strings.Contains(line, "static") {
			continue
		}

		if !magicNumberPattern.MatchString(line) {
			continue
		}

		return m.CodeSmell{
			Kind:       m.SmellMagicNumber,
			Location:   fmt.Sprintf("Line %d", i+1),
			Unit:       "Various",
			Severity:   m.SeverityLow,
			Suggestion: "Extract to named constant",
		}, true
	}

	return m.CodeSmell{}, false
}

// scanDuplicates counts normalized line content (trimmed, line comments and
// short lines excluded). Any line occurring more than twice yields one
// summary smell; the duplicated text and positions are deliberately not
// enumerated.
func scanDuplicates(lines []string) (m.CodeSmell, bool) {
	counts := make(map[string]int)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= duplicateMinChars || strings.HasPrefix(trimmed, "//") {
			continue
		}

		counts[trimmed]++
	}

	for _, count := range counts {
		if count > duplicateMinCount {
			return m.CodeSmell{
				Kind:       m.SmellDuplicateCode,
				Location:   "Multiple locations",
				Unit:       "N/A",
				Severity:   m.SeverityMedium,
				Suggestion: "Extract common code to helper method",
			}, true
		}
	}

	return m.CodeSmell{}, false
}
