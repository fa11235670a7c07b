package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

func TestTokenizeWords(t *testing.T) {
	tokens := Tokenize("ls -la /home")
	assert.Equal(t, []Kind{Word, Word, Word}, kinds(tokens))
	assert.Equal(t, []string{"ls", "-la", "/home"}, values(tokens))
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t  "))
}

func TestTokenizeQuotes(t *testing.T) {
	tokens := Tokenize(`echo "hello world" 'single quoted'`)
	require.Len(t, tokens, 3)
	assert.Equal(t, "hello world", tokens[1].Value)
	assert.Equal(t, "single quoted", tokens[2].Value)

	// Unterminated quote runs to end of line.
	tokens = Tokenize(`echo "open ended`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "open ended", tokens[1].Value)

	// Empty quoted string is still a word.
	tokens = Tokenize(`echo ""`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "", tokens[1].Value)
}

func TestTokenizeOperators(t *testing.T) {
	tokens := Tokenize("a | b && c || d ; e")
	assert.Equal(t, []Kind{Word, Pipe, Word, And, Word, Or, Word, Semi, Word}, kinds(tokens))
}

func TestTokenizeRedirections(t *testing.T) {
	tokens := Tokenize("echo hi > out.txt")
	assert.Equal(t, []Kind{Word, Word, RedirOut, Word}, kinds(tokens))

	tokens = Tokenize("echo hi >> out.txt")
	assert.Equal(t, []Kind{Word, Word, RedirAppend, Word}, kinds(tokens))

	tokens = Tokenize("cat < in.txt")
	assert.Equal(t, []Kind{Word, RedirIn, Word}, kinds(tokens))
}

func TestTokenizeAdjacentOperators(t *testing.T) {
	// Operators split words even without whitespace.
	tokens := Tokenize("echo hi>out.txt")
	assert.Equal(t, []Kind{Word, Word, RedirOut, Word}, kinds(tokens))
	assert.Equal(t, []string{"echo", "hi", ">", "out.txt"}, values(tokens))

	tokens = Tokenize("a|b")
	assert.Equal(t, []Kind{Word, Pipe, Word}, kinds(tokens))
}

func TestTokenizeLoneAmpersand(t *testing.T) {
	// Only "&&" is an operator; a single '&' is an ordinary word.
	tokens := Tokenize("sleep 1 &")
	assert.Equal(t, []Kind{Word, Word, Word}, kinds(tokens))
	assert.Equal(t, []string{"sleep", "1", "&"}, values(tokens))

	tokens = Tokenize("a&b")
	require.Len(t, tokens, 1)
	assert.Equal(t, "a&b", tokens[0].Value)

	tokens = Tokenize("a && b")
	assert.Equal(t, []Kind{Word, And, Word}, kinds(tokens))

	tokens = Tokenize("&&&")
	assert.Equal(t, []Kind{And, Word}, kinds(tokens))
	assert.Equal(t, "&", tokens[1].Value)
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("ls /tmp")
	require.Len(t, tokens, 2)
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 3, tokens[1].Pos)
}
