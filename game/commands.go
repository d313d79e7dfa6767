package game

// Command represents a game action that can be performed
type Command interface {
	CommandName() string
}

// PlaceBetCommand commits a bet and starts the deal
type PlaceBetCommand struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

func (c PlaceBetCommand) CommandName() string { return "place-bet" }

// HitCommand draws one more card for the player
type HitCommand struct {
	Name string `json:"name"`
}

func (c HitCommand) CommandName() string { return "hit" }

// StandCommand ends the player's turn and hands play to the dealer
type StandCommand struct {
	Name string `json:"name"`
}

func (c StandCommand) CommandName() string { return "stand" }

// PlayAgainCommand resets a settled round for a new bet
type PlayAgainCommand struct {
	Name string `json:"name"`
}

func (c PlayAgainCommand) CommandName() string { return "play-again" }

// GetStateCommand asks for the current round view without acting
type GetStateCommand struct {
	Name string `json:"name"`
}

func (c GetStateCommand) CommandName() string { return "get-state" }
