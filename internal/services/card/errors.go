package card

import "errors"

// Domain errors for the card service
var (
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrInvalidCardID  = errors.New("invalid card ID")
)
