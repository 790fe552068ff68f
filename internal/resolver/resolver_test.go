package resolver_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/ok/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TrimsAndSkips(t *testing.T) {
	t.Parallel()
	content := "  build :  make all  \n\n\t\nnotanentry\ntest: go test ./...\n"

	entries := resolver.Parse(content)
	require.Len(t, entries, 2)
	assert.Equal(t, resolver.Entry{Name: "build", Script: "make all", Line: 1}, entries[0])
	assert.Equal(t, resolver.Entry{Name: "test", Script: "go test ./...", Line: 5}, entries[1])
}

func TestParse_OnlyFirstColonSplits(t *testing.T) {
	t.Parallel()
	entries := resolver.Parse("serve: python -m http.server --bind 127.0.0.1:8000")
	require.Len(t, entries, 1)
	assert.Equal(t, "serve", entries[0].Name)
	assert.Equal(t, "python -m http.server --bind 127.0.0.1:8000", entries[0].Script)
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()
	entries := resolver.Parse("a: one\r\nb: two\r\n")
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Script)
	assert.Equal(t, "two", entries[1].Script)
}

func TestParseWithMalformed_ReportsSkippedLines(t *testing.T) {
	t.Parallel()
	entries, malformed := resolver.ParseWithMalformed("foo: bar\nnotanentry\nbaz: qux")
	assert.Len(t, entries, 2)
	assert.Equal(t, []resolver.Malformed{{Line: 2, Text: "notanentry"}}, malformed)
}

func TestNames_FileOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "foo baz", resolver.Names(resolver.Parse("foo: bar\nnotanentry\nbaz: qux")))
}

func TestNames_KeepsDuplicates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b a", resolver.Names(resolver.Parse("a: 1\nb: 2\na: 3")))
}

func TestNames_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, resolver.Names(resolver.Parse("")))
	assert.Empty(t, resolver.Names(resolver.Parse("no colon here\n\n")))
}

func TestNames_EmptyNamesTrimmed(t *testing.T) {
	t.Parallel()
	assert.Empty(t, resolver.Names(resolver.Parse(": a\n: b")))
	assert.Equal(t, "x", resolver.Names(resolver.Parse(": a\nx: b")))
}

func TestLookup_FirstMatchWins(t *testing.T) {
	t.Parallel()
	e, ok := resolver.Lookup(resolver.Parse("a: first\na: second"), "a")
	require.True(t, ok)
	assert.Equal(t, "first", e.Script)
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	t.Parallel()
	entries := resolver.Parse("build: make\nBuild: other")

	_, ok := resolver.Lookup(entries, "bui")
	assert.False(t, ok, "prefix must not match")

	e, ok := resolver.Lookup(entries, "Build")
	require.True(t, ok)
	assert.Equal(t, "other", e.Script)
}

func TestResolve_EndToEndExample(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("build: echo hi", "/proj", "build", resolver.Options{Prefix: "cd {} && "})
	require.True(t, ok)
	assert.Equal(t, "cd /proj && echo hi", out)
}

func TestResolve_SubstitutesEveryPlaceholder(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("cp: cp {}/a {}/b", "/p", "cp", resolver.Options{Prefix: "[", Suffix: "]"})
	require.True(t, ok)
	assert.Equal(t, "[cp /p/a /p/b]", out)
	assert.Equal(t, 2, strings.Count(out, "/p/"))
}

func TestResolve_PlaceholderInSuffix(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("x: run", "/d", "x", resolver.Options{Suffix: "; cd {}"})
	require.True(t, ok)
	assert.Equal(t, "run; cd /d", out)
}

func TestResolve_NoMatch(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("x: run", "/d", "y", resolver.Options{Prefix: "cd {} && ", Suffix: "; cd -"})
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestResolve_EmptyScriptIsFound(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("noop:", "/d", "noop", resolver.Options{})
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestResolve_PositionalArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		dir    string
		script string
		args   []string
		want   string
	}{
		{name: "no holes no args", script: "ls", want: "ls"},
		{name: "fills holes", script: "git commit -m {0} --author {1}", args: []string{"msg", "me"}, want: "git commit -m msg --author me"},
		{name: "repeated hole", script: "echo {0} {0}", args: []string{"x"}, want: "echo x x"},
		{name: "missing args become empty", script: "echo [{0}] [{1}]", args: []string{"x"}, want: "echo [x] []"},
		{name: "extra args appended", script: "go test", args: []string{"./...", "-v"}, want: "go test ./... -v"},
		{name: "holes then extra", script: "echo {0}", args: []string{"a", "b"}, want: "echo a b"},
		{name: "gap stops counting", script: "echo {0} {2}", args: []string{"a", "b"}, want: "echo a {2} b"},
		{name: "arg is not rescanned", script: "echo {0} {1}", args: []string{"{1}", "z"}, want: "echo {1} z"},
		{name: "dir text is not a hole", dir: "/work/{0}", script: "cd {}", want: "cd /work/{0}"},
		{name: "dir text with args", dir: "/work/{0}", script: "cd {} && echo {0}", args: []string{"a"}, want: "cd /work/{0} && echo a"},
		{name: "arg with dir token", script: "echo {0}", args: []string{"{}"}, want: "echo {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := tt.dir
			if dir == "" {
				dir = "/d"
			}
			out, ok := resolver.Resolve("c: "+tt.script, dir, "c", resolver.Options{Args: tt.args})
			require.True(t, ok)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolve_ArgsDoNotApplyToPrefix(t *testing.T) {
	t.Parallel()
	out, ok := resolver.Resolve("c: echo {0}", "/d", "c", resolver.Options{Prefix: "{0} ", Args: []string{"a"}})
	require.True(t, ok)
	assert.Equal(t, "{0} echo a", out)
}
