package token

type Kind int

const (
	INVALID Kind = iota

	// ( or )
	PAREN
	// [0-9]+
	NUMBER
	// [a-z]+
	NAME
)

const (
	OPEN_PAREN  = "("
	CLOSE_PAREN = ")"
)

func (kind Kind) String() string {
	switch kind {
	case INVALID:
		return "INVALID"
	case PAREN:
		return "paren"
	case NUMBER:
		return "number"
	case NAME:
		return "name"
	}
	return "unknown"
}
