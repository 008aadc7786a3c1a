package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/pakhi-lang/pakhi/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '-':
		// -৫ is a negative numeral, -> is the record map operator,
		// a bare - is binary minus
		if isBengaliDigit(l.peekChar()) {
			return l.readNumber()
		}
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '&':
		tok = newToken(token.AMPERSAND, l.ch, l.line, l.column)
	case '|':
		tok = newToken(token.PIPE, l.ch, l.line, l.column)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "!=", Literal: "!=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Literal: "<=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Literal: ">=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '@':
		tok = newToken(token.AT, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '"':
		return l.readString()
	case '#':
		return l.readComment()
	case 0:
		tok = token.Token{Type: token.EOT, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isBengaliDigit(l.ch) {
			return l.readNumber()
		}
		if isIdentifierChar(l.ch) {
			return l.readIdentifier()
		}
		tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Literal: "unexpected character " + string(l.ch), Line: l.line, Column: l.column}
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readNumber consumes a Bengali-digit numeral with an optional fractional
// part and an optional leading minus. Literal holds the value translated to
// ASCII digits so the parser can hand it to strconv.
func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	var lexeme, literal strings.Builder

	if l.ch == '-' {
		lexeme.WriteRune('-')
		literal.WriteByte('-')
		l.readChar()
	}

	sawDot := false
	for isBengaliDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if sawDot {
				return token.Token{Type: token.ILLEGAL, Lexeme: lexeme.String(), Literal: "number is not properly formatted", Line: startLine, Column: startCol}
			}
			sawDot = true
			lexeme.WriteByte('.')
			literal.WriteByte('.')
		} else {
			lexeme.WriteRune(l.ch)
			literal.WriteByte(bengaliDigitValue(l.ch))
		}
		l.readChar()
	}

	return token.Token{Type: token.NUM, Lexeme: lexeme.String(), Literal: literal.String(), Line: startLine, Column: startCol}
}

func (l *Lexer) readString() token.Token {
	startLine, startCol := l.line, l.column
	var val strings.Builder

	l.readChar() // opening quote
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Lexeme: val.String(), Literal: "string literal was never closed", Line: startLine, Column: startCol}
		}
		val.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // closing quote

	s := val.String()
	return token.Token{Type: token.STRING, Lexeme: s, Literal: s, Line: startLine, Column: startCol}
}

// readComment consumes a #...# block. A # escaped as \# does not close it.
func (l *Lexer) readComment() token.Token {
	startLine, startCol := l.line, l.column
	var val strings.Builder

	l.readChar() // opening #
	for l.ch != '#' {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Lexeme: val.String(), Literal: "comment block was never closed", Line: startLine, Column: startCol}
		}
		if l.ch == '\\' && l.peekChar() == '#' {
			val.WriteRune('\\')
			l.readChar()
		}
		val.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // closing #

	s := val.String()
	return token.Token{Type: token.COMMENT, Lexeme: s, Literal: s, Line: startLine, Column: startCol}
}

func (l *Lexer) readIdentifier() token.Token {
	startLine, startCol := l.line, l.column
	var val strings.Builder

	for isIdentifierChar(l.ch) {
		val.WriteRune(l.ch)
		l.readChar()
	}

	s := val.String()
	return token.Token{Type: token.LookupIdent(s), Lexeme: s, Literal: s, Line: startLine, Column: startCol}
}

func newToken(tokenType token.Type, ch rune, line, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Literal: string(ch), Line: line, Column: column}
}

func isBengaliDigit(ch rune) bool {
	return ch >= '০' && ch <= '৯'
}

func bengaliDigitValue(ch rune) byte {
	return byte('0' + (ch - '০'))
}

// isIdentifierChar mirrors the language's permissive identifier rule:
// '-' and '_' are allowed, everything else except ASCII whitespace,
// punctuation and control characters is an identifier rune. Bengali letters,
// Latin letters and ASCII digits all qualify.
func isIdentifierChar(ch rune) bool {
	if ch == '-' || ch == '_' {
		return true
	}
	if ch == 0 {
		return false
	}
	if ch < 0x80 {
		switch {
		case ch <= ' ' || ch == 0x7f:
			return false
		case (ch >= '!' && ch <= '/') || (ch >= ':' && ch <= '@') || (ch >= '[' && ch <= '`') || (ch >= '{' && ch <= '~'):
			return false
		}
	}
	return true
}
