package token

type Type string

type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOT     Type = "EOT"

	IDENT   Type = "IDENT"
	NUM     Type = "NUM"
	STRING  Type = "STRING"
	COMMENT Type = "COMMENT"

	// Operators
	PLUS      Type = "+"
	MINUS     Type = "-"
	ASTERISK  Type = "*"
	SLASH     Type = "/"
	PERCENT   Type = "%"
	AMPERSAND Type = "&"
	PIPE      Type = "|"
	BANG      Type = "!"
	ASSIGN    Type = "="
	EQ        Type = "=="
	NOT_EQ    Type = "!="
	LT        Type = "<"
	GT        Type = ">"
	LTE       Type = "<="
	GTE       Type = ">="
	ARROW     Type = "->"
	AT        Type = "@"

	// Delimiters
	SEMICOLON Type = ";"
	COMMA     Type = ","
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"

	// Keywords
	VAR          Type = "VAR"
	IF           Type = "IF"
	ELSE         Type = "ELSE"
	LOOP         Type = "LOOP"
	FUNCTION     Type = "FUNCTION"
	RETURN       Type = "RETURN"
	BREAK        Type = "BREAK"
	CONTINUE     Type = "CONTINUE"
	PRINT        Type = "PRINT"
	PRINT_NO_EOL Type = "PRINT_NO_EOL"
	TRUE         Type = "TRUE"
	FALSE        Type = "FALSE"
)

var keywords = map[string]Type{
	"নাম":    VAR,
	"যদি":    IF,
	"অথবা":   ELSE,
	"লুপ":    LOOP,
	"ফাং":    FUNCTION,
	"ফেরত":   RETURN,
	"থামাও":  BREAK,
	"আবার":   CONTINUE,
	"দেখাও":  PRINT,
	"_দেখাও": PRINT_NO_EOL,
	"সত্য":   TRUE,
	"মিথ্যা": FALSE,
}

// LookupIdent returns the keyword type for ident, or IDENT if it is not a
// reserved word.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}
