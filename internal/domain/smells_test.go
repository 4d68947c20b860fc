package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func javaSource(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

func methodBody(statements int) []string {
	lines := make([]string, 0, statements)
	for i := 0; i < statements; i++ {
		lines = append(lines, "        doWork();")
	}

	return lines
}

func TestScanSmells_LongMethod(t *testing.T) {
	lines := []string{"public void bigMethod() {"}
	lines = append(lines, methodBody(55)...)
	lines = append(lines, "}")
	lines = append(lines, "public void small() {", "}")

	smells := ScanSmells(javaSource(lines...))

	require.Len(t, smells, 1)
	require.Equal(t, m.SmellLongMethod, smells[0].Kind)
	require.Equal(t, "bigMethod", smells[0].Unit)
	require.Equal(t, "Line 1", smells[0].Location)
	require.Equal(t, m.SeverityMedium, smells[0].Severity)
}

func TestScanSmells_ShortMethodsAreClean(t *testing.T) {
	lines := []string{"public void first() {"}
	lines = append(lines, methodBody(10)...)
	lines = append(lines, "}", "public void second() {", "}")

	require.Empty(t, ScanSmells(javaSource(lines...)))
}

func TestScanSmells_SignatureInsideNestedBraceIgnored(t *testing.T) {
	// A signature-shaped line inside an anonymous class body must not close
	// out the enclosing method.
	lines := []string{"public void outer() {", "    Runnable r = new Runnable() {"}
	lines = append(lines, methodBody(55)...)
	lines = append(lines, "        public void run() {", "        }", "    };", "}")
	lines = append(lines, "public void next() {", "}")

	smells := ScanSmells(javaSource(lines...))

	require.Len(t, smells, 1)
	require.Equal(t, "outer", smells[0].Unit)
}

func TestScanSmells_LargeClass(t *testing.T) {
	lines := make([]string, 0, 510)
	for i := 0; i < 510; i++ {
		lines = append(lines, "// filler")
	}

	smells := ScanSmells(javaSource(lines...))

	require.Len(t, smells, 1)
	require.Equal(t, m.SmellLargeClass, smells[0].Kind)
	require.Equal(t, "Entire file", smells[0].Location)
	require.Equal(t, m.SeverityHigh, smells[0].Severity)
}

func TestScanSmells_MagicNumber(t *testing.T) {
	smells := ScanSmells(javaSource(
		"public int price() {",
		"    static final int MAX = 100;",
		"    return base * 100;",
		"}",
	))

	require.Len(t, smells, 1)
	require.Equal(t, m.SmellMagicNumber, smells[0].Kind)
	require.Equal(t, "Line 3", smells[0].Location)
	require.Equal(t, m.SeverityLow, smells[0].Severity)
}

func TestScanSmells_MagicNumberOnlyFirstLineFlagged(t *testing.T) {
	smells := ScanSmells(javaSource(
		"int a = 100;",
		"int b = 250;",
	))

	require.Len(t, smells, 1)
	require.Equal(t, "Line 1", smells[0].Location)
}

func TestScanSmells_SingleDigitLiteralsIgnored(t *testing.T) {
	require.Empty(t, ScanSmells(javaSource("int a = b + 5;")))
}

func TestScanSmells_DuplicateCode(t *testing.T) {
	line := `    System.out.println(currentState);`

	smells := ScanSmells(javaSource(line, "int x = y;", line, "int z = y;", line))

	require.Len(t, smells, 1)
	require.Equal(t, m.SmellDuplicateCode, smells[0].Kind)
	require.Equal(t, "Multiple locations", smells[0].Location)
}

func TestScanSmells_TwoOccurrencesAreNotDuplicates(t *testing.T) {
	line := `    System.out.println(currentState);`

	require.Empty(t, ScanSmells(javaSource(line, line)))
}

func TestScanSmells_CommentsExemptFromDuplicateCheck(t *testing.T) {
	comment := "// this comment repeats throughout the file"

	require.Empty(t, ScanSmells(javaSource(comment, comment, comment, comment)))
}

func TestScanSmells_EmptySource(t *testing.T) {
	require.Empty(t, ScanSmells(nil))
}
