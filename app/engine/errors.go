package engine

import "errors"

// Validation failures returned by action methods. None of these mutate
// state; the caller surfaces the message to the requesting player only.
var (
	ErrNotYourTurn       = errors.New("not your turn")
	ErrActionPending     = errors.New("resolve the pending action first")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTarget     = errors.New("invalid target cell")
	ErrMonopolyRequired  = errors.New("you need the full color group to build")
	ErrUnevenBuilding    = errors.New("build evenly across the color group")
	ErrMaxHouses         = errors.New("maximum houses/hotel already built")
	ErrBankrupt          = errors.New("player is bankrupt")
	ErrRoomFull          = errors.New("room is full")
	ErrAlreadyStarted    = errors.New("game already started")
	ErrNotStarted        = errors.New("game has not started")
	ErrGameOver          = errors.New("game is over")
	ErrNotInJail         = errors.New("you are not in jail")
	ErrNoOffer           = errors.New("no matching purchase offer")
	ErrUnknownPlayer     = errors.New("unknown player")
)
