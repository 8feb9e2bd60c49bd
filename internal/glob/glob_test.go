package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarMatchesWithinOneSegment(t *testing.T) {
	p, err := Compile("src/*.go")
	require.NoError(t, err)
	assert.True(t, p.Match("src/main.go"))
	assert.False(t, p.Match("src/pkg/main.go"))
}

func TestDoubleStarMatchesAcrossSegments(t *testing.T) {
	p, err := Compile("**/node_modules/**")
	require.NoError(t, err)
	assert.True(t, p.Match("node_modules/foo/index.js"))
	assert.True(t, p.Match("a/b/node_modules/c/d.js"))
	assert.False(t, p.Match("src/node_mod/index.js"))
}

func TestQuestionMarkMatchesOneNonSeparatorChar(t *testing.T) {
	p, err := Compile("file?.go")
	require.NoError(t, err)
	assert.True(t, p.Match("file1.go"))
	assert.False(t, p.Match("file12.go"))
	assert.False(t, p.Match("file/.go"))
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	p, err := Compile("**/*.MIN.JS")
	require.NoError(t, err)
	assert.True(t, p.Match("dist/app.min.js"))
}

func TestMatchIsWholePathAnchored(t *testing.T) {
	p, err := Compile("*.go")
	require.NoError(t, err)
	assert.False(t, p.Match("src/main.go"))
	assert.True(t, p.Match("main.go"))
}

func TestRegexMetacharactersAreEscaped(t *testing.T) {
	p, err := Compile("a+b.go")
	require.NoError(t, err)
	assert.True(t, p.Match("a+b.go"))
	assert.False(t, p.Match("aab.go"))
}

func TestMatchAny(t *testing.T) {
	patterns, err := CompileAll([]string{"**/*.min.js", "**/vendor/**"})
	require.NoError(t, err)
	assert.True(t, MatchAny(patterns, "vendor/lib/a.go"))
	assert.True(t, MatchAny(patterns, "dist/app.min.js"))
	assert.False(t, MatchAny(patterns, "src/main.go"))
}

func TestDoubleStarPrefixAndSuffixMatchWithNothingOnThatSide(t *testing.T) {
	p, err := Compile("**/.git/**")
	require.NoError(t, err)
	assert.True(t, p.Match(".git/HEAD"), "leading **/ must also match a root-level directory")
	assert.True(t, p.Match(".git"), "trailing /** must also match the literal segment alone")
}

func TestCompileAllAcceptsMultiplePatterns(t *testing.T) {
	_, err := CompileAll([]string{"ok/*.go", "still/ok/**"})
	assert.NoError(t, err)
}
