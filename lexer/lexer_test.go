package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nova-lang/nova/token"
)

func TestNextToken_Operators(t *testing.T) {
	src := `let x = 1 + 2 * 3 / 4 % 5 - 6; if (x == 1 and x != 2 or x <= 3) {}`
	toks, err := All(src)
	require.Nil(t, err)
	require.NotEmpty(t, toks)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type)

	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER,
		token.STAR, token.NUMBER, token.SLASH, token.NUMBER, token.MOD, token.NUMBER,
		token.MINUS, token.NUMBER, token.SEMI,
		token.IF, token.LPAREN, token.IDENT, token.EQ, token.NUMBER, token.AND,
		token.IDENT, token.NEQ, token.NUMBER, token.OR, token.IDENT, token.LE, token.NUMBER,
		token.RPAREN, token.LBRACE, token.RBRACE, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		require.Equalf(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestNextToken_Keywords(t *testing.T) {
	src := `class extends super this constructor private public static new true false null return fn while for in`
	toks, err := All(src)
	require.Nil(t, err)
	want := []token.Type{
		token.CLASS, token.EXTENDS, token.SUPER, token.THIS, token.CONSTRUCTOR,
		token.PRIVATE, token.PUBLIC, token.STATIC, token.NEW, token.TRUE, token.FALSE,
		token.NULL, token.RETURN, token.FN, token.WHILE, token.FOR, token.IN, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		require.Equalf(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	toks, err := All(`"hello\nworld\t\"\\"`)
	require.Nil(t, err)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "hello\nworld\t\"\\", toks[0].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	_, err := All(`"unterminated`)
	require.NotNil(t, err)
}

func TestNextToken_UnrecognizedEscape(t *testing.T) {
	_, err := All(`"bad\rescape"`)
	require.NotNil(t, err)
}

func TestNextToken_InvalidCharacter(t *testing.T) {
	_, err := All("let x = 1 @ 2;")
	require.NotNil(t, err)
}

func TestNextToken_LineComment(t *testing.T) {
	toks, err := All("let x = 1; // trailing comment\nlet y = 2;")
	require.Nil(t, err)
	// two full let statements, then EOF
	numSemis := 0
	for _, tk := range toks {
		if tk.Type == token.SEMI {
			numSemis++
		}
	}
	require.Equal(t, 2, numSemis)
}

// TestPositions covers spec §8 Property 1: every token's position points
// into the original source, and the stream always ends in EOF.
func TestPositions(t *testing.T) {
	toks, err := All("let x\n= 1;")
	require.Nil(t, err)
	require.Equal(t, 1, toks[0].Pos.Line) // "let"
	// "=" is on line 2
	var eqTok token.Token
	for _, tk := range toks {
		if tk.Type == token.ASSIGN {
			eqTok = tk
		}
	}
	require.Equal(t, 2, eqTok.Pos.Line)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type)
}

func TestNumberLiteral_Decimal(t *testing.T) {
	toks, err := All("3.14;")
	require.Nil(t, err)
	require.Equal(t, token.NUMBER, toks[0].Type)
	require.Equal(t, "3.14", toks[0].Literal)
}
