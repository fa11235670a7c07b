package shell

import "strings"

// Kind classifies a token.
type Kind int

const (
	Word Kind = iota
	Pipe
	And
	Or
	Semi
	RedirOut
	RedirAppend
	RedirIn
)

// Token is one lexical element of a command line.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
}

// A lone '&' is an ordinary word character; only "&&" is an operator.
const operatorChars = "|;><"

// Tokenize splits a command line into words and operators. Quoted
// strings (single or double) form one word; an unterminated quote runs
// to the end of the line. Operator characters end a word even without
// surrounding whitespace.
func Tokenize(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]

		if c == ' ' || c == '\t' {
			i++
			continue
		}

		if i+1 < len(input) {
			switch input[i : i+2] {
			case "&&":
				tokens = append(tokens, Token{And, "&&", i})
				i += 2
				continue
			case "||":
				tokens = append(tokens, Token{Or, "||", i})
				i += 2
				continue
			case ">>":
				tokens = append(tokens, Token{RedirAppend, ">>", i})
				i += 2
				continue
			}
		}

		switch c {
		case '|':
			tokens = append(tokens, Token{Pipe, "|", i})
			i++
			continue
		case ';':
			tokens = append(tokens, Token{Semi, ";", i})
			i++
			continue
		case '>':
			tokens = append(tokens, Token{RedirOut, ">", i})
			i++
			continue
		case '<':
			tokens = append(tokens, Token{RedirIn, "<", i})
			i++
			continue
		}

		if c == '"' || c == '\'' {
			quote := c
			start := i
			i++
			end := i
			for end < len(input) && input[end] != quote {
				end++
			}
			tokens = append(tokens, Token{Word, input[i:end], start})
			i = end
			if i < len(input) {
				i++ // closing quote
			}
			continue
		}

		start := i
		for i < len(input) && input[i] != ' ' && input[i] != '\t' &&
			!strings.ContainsRune(operatorChars, rune(input[i])) {
			i++
		}
		tokens = append(tokens, Token{Word, input[start:i], start})
	}
	return tokens
}
