package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/safehx/pkg/position"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Loc:      position.Location{Line: 3, Column: 14, Offset: 40},
		Message:  "unterminated expression",
		Severity: Lex,
	}
	require.Equal(t, "3:14: unterminated expression", d.String())
}

func TestDiagnosticsCollect(t *testing.T) {
	var ds Diagnostics
	require.False(t, ds.HasErrors())
	require.NoError(t, ds.Err())

	ds.Lexf(position.Location{Line: 1, Column: 2}, "bad %s", "char")
	ds.Syntaxf(position.Location{Line: 2, Column: 1}, "missing closing tag")

	require.True(t, ds.HasErrors())
	require.Equal(t, []string{
		"1:2: bad char",
		"2:1: missing closing tag",
	}, ds.Strings())
	require.Equal(t, "1:2: bad char\n2:1: missing closing tag", ds.Report())
}

func TestDiagnosticsErrJoinsOnePerLine(t *testing.T) {
	var ds Diagnostics
	ds.Lexf(position.Location{Line: 1, Column: 1}, "first")
	ds.Lexf(position.Location{Line: 1, Column: 5}, "second")

	err := ds.Err()
	require.Error(t, err)
	require.Equal(t, "1:1: first\n1:5: second", err.Error())
}

func TestDuplicatesAreKept(t *testing.T) {
	var ds Diagnostics
	ds.Lexf(position.Location{Line: 1, Column: 1}, "same")
	ds.Lexf(position.Location{Line: 1, Column: 1}, "same")
	require.Len(t, ds, 2)
}
