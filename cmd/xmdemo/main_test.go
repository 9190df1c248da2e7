package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--skip-cpu-check"))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// field returns the value printed for label, or "" if absent.
func field(out, label string) string {
	for line := range strings.Lines(out) {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, label+" ")
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " ")
		if len(rest) > 2 && (rest[0] == '=' || rest[0] == '~') {
			return rest[2:]
		}
	}
	return ""
}

func TestFunctions(t *testing.T) {
	out, _, err := execute(t, "functions")
	require.NoError(t, err)

	require.Equal(t, "(2, 1, 3, 2.5)", field(out, "Abs(v)"))
	require.Equal(t, "(1, 4, 4, 1)", field(out, "Pow(u, p)"))
	require.Equal(t, "(4, 4, 2, 8)", field(out, "Swizzle(u, 2, 2, 1, 3)"))
	require.Equal(t, "(4, 2, 1, 8)", field(out, "Swizzle(u, 2, 1, 0, 3)"))
	require.Equal(t, "(-2, 2, -12, 20)", field(out, "Multiply(u, v)"))
	require.Equal(t, "(1, 0, 0.5, 0.1)", field(out, "Saturate(q)"))
	require.Equal(t, "(-2, 1, -3, 0)", field(out, "Min(p, v)"))
	require.Equal(t, "(2, 2, 1, 2.5)", field(out, "Max(p, v)"))
	require.NotContains(t, out, "Vector algebra")
}

func TestAlgebra(t *testing.T) {
	out, _, err := execute(t, "algebra")
	require.NoError(t, err)

	require.Equal(t, "(-1, 3, 0, 0)", field(out, "u + v"))
	require.Equal(t, "(3, 1, 6, 0)", field(out, "u - v"))
	require.Equal(t, "(10, 20, 30, 0)", field(out, "10 * u"))
	require.Equal(t, "-9", field(out, "u . v"))
	require.Equal(t, "(-9, -3, 5, 0)", field(out, "u x v"))
	require.Equal(t, "(0.707, 0, 0, 0)", field(out, "proj_n(w)"))
	require.Equal(t, "(0, 0.707, 0, 0)", field(out, "perp_n(w)"))
	require.Equal(t, "true", field(out, "proj + perp == w"))
	require.Equal(t, "false", field(out, "proj + perp != w"))
	require.Regexp(t, `(?m)^  \|u\| +~ \d`, out)
}

func TestPrecision(t *testing.T) {
	out, _, err := execute(t, "precision")
	require.NoError(t, err)
	require.Equal(t, "true", field(out, "NearEqual(length, 1)"))
	require.Equal(t, "true", field(out, "NearEqual3(exact, estimate)"))

	out, _, err = execute(t, "precision", "--epsilon", "1e-9")
	require.NoError(t, err)
	require.Equal(t, "false", field(out, "NearEqual3(exact, estimate)"))
}

func TestAllSections(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	all, _, err := execute(t, "all")
	require.NoError(t, err)
	require.Equal(t, out, all)

	iFunc := strings.Index(out, "Vector functions")
	iAlg := strings.Index(out, "Vector algebra")
	iPrec := strings.Index(out, "Precision")
	require.True(t, iFunc >= 0 && iFunc < iAlg && iAlg < iPrec, "sections out of order:\n%s", out)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "precision")
	require.NoError(t, err)
	require.NotContains(t, stderr, "cpu dispatch")

	_, stderr, err = execute(t, "precision", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "msg=\"cpu dispatch\"")
}

func TestInvalidInvocation(t *testing.T) {
	_, _, err := execute(t, "precision", "--epsilon", "0")
	require.ErrorContains(t, err, "--epsilon must be positive")

	_, _, err = execute(t, "precision", "--epsilon=-1")
	require.Error(t, err)

	_, _, err = execute(t, "bogus")
	require.Error(t, err)
}
