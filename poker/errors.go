package poker

import "errors"

var (
	// ErrInvalidToken is returned when a value, suit or card token cannot be parsed.
	ErrInvalidToken = errors.New("invalid card token")
	// ErrDuplicateCard is returned when a card appears more than once.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrCardCount is returned when a fixed-size card set gets the wrong number of cards.
	ErrCardCount = errors.New("wrong number of cards")
	// ErrBoardSize is returned when a board is built from other than 0, 3, 4 or 5 cards.
	ErrBoardSize = errors.New("board must hold 0, 3, 4 or 5 cards")
	// ErrIllegalTransition is returned when a street is dealt out of order.
	ErrIllegalTransition = errors.New("illegal board transition")
	// ErrPreflopBoard is returned when the nuts are requested before the flop.
	ErrPreflopBoard = errors.New("no nuts before the flop")
)
