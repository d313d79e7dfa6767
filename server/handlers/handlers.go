package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"blackjack/config"
	"blackjack/events"
	"blackjack/game"
	"blackjack/server/connection"
	serverevents "blackjack/server/events"
)

// CommandRouter routes incoming commands to the engine owned by the sending
// client's session.
type CommandRouter struct {
	cfg        *config.Config
	eventStore events.EventStore
	dispatcher *serverevents.Dispatcher
	logger     *log.Logger

	mutex   sync.Mutex
	engines map[string]*game.RoundEngine
}

// NewCommandRouter creates a new command router
func NewCommandRouter(cfg *config.Config, store events.EventStore, dispatcher *serverevents.Dispatcher, logger *log.Logger) *CommandRouter {
	return &CommandRouter{
		cfg:        cfg,
		eventStore: store,
		dispatcher: dispatcher,
		logger:     logger.WithPrefix("router"),
		engines:    make(map[string]*game.RoundEngine),
	}
}

// Attach creates the engine for a newly connected session and sends the
// opening state. Each session gets its own shuffle source: engines are
// driven sequentially by their session's read loop.
func (r *CommandRouter) Attach(client *connection.Client) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := game.NewRoundEngine(r.eventStore, r.cfg.StartingBank, r.cfg.BetOptions, r.logger, rng)
	engine.AddEventHandler(r.dispatcher.HandlerFor(client.ID))

	r.mutex.Lock()
	r.engines[client.ID] = engine
	r.mutex.Unlock()

	r.sendState(client, engine)
}

// Detach drops the engine of a disconnected session
func (r *CommandRouter) Detach(client *connection.Client) {
	r.mutex.Lock()
	delete(r.engines, client.ID)
	r.mutex.Unlock()
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	engine := r.engineFor(client.ID)
	if engine == nil {
		return fmt.Errorf("no engine for client %s", client.ID)
	}

	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	var cmdErr error
	switch baseCmd.Name {
	case game.PlaceBetCommand{}.CommandName():
		var cmd game.PlaceBetCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		cmdErr = engine.PlaceBet(cmd.Amount)

	case game.HitCommand{}.CommandName():
		cmdErr = engine.Hit()

	case game.StandCommand{}.CommandName():
		cmdErr = engine.Stand()

	case game.PlayAgainCommand{}.CommandName():
		cmdErr = engine.PlayAgain()

	case game.GetStateCommand{}.CommandName():
		// State reply below is the whole effect.

	default:
		return fmt.Errorf("unknown command type %q", baseCmd.Name)
	}

	if cmdErr != nil {
		r.logger.Debug("command rejected", "command", baseCmd.Name, "err", cmdErr)
		r.sendError(client, baseCmd.Name, cmdErr)
		return nil
	}

	r.sendState(client, engine)
	return nil
}

func (r *CommandRouter) engineFor(clientID string) *game.RoundEngine {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.engines[clientID]
}

// StateEnvelope carries the round view after a successful command
type StateEnvelope struct {
	Name  string         `json:"name"`
	State game.RoundView `json:"state"`
}

// ErrorEnvelope reports a rejected command with its typed error code
type ErrorEnvelope struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (r *CommandRouter) sendState(client *connection.Client, engine *game.RoundEngine) {
	data, err := json.Marshal(StateEnvelope{Name: "state", State: engine.View()})
	if err != nil {
		r.logger.Error("failed to marshal state envelope", "err", err)
		return
	}
	client.Send <- data
}

func (r *CommandRouter) sendError(client *connection.Client, command string, cmdErr error) {
	data, err := json.Marshal(ErrorEnvelope{
		Name:    "error",
		Command: command,
		Code:    errorCode(cmdErr),
		Message: cmdErr.Error(),
	})
	if err != nil {
		r.logger.Error("failed to marshal error envelope", "err", err)
		return
	}
	client.Send <- data
}

// errorCode maps the engine's typed errors to stable wire codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidBet):
		return "InvalidBet"
	case errors.Is(err, game.ErrShoeExhausted):
		return "ShoeExhausted"
	case errors.Is(err, game.ErrOutOfFunds):
		return "OutOfFunds"
	case errors.Is(err, game.ErrIllegalTransition):
		return "IllegalTransition"
	default:
		return "Internal"
	}
}
