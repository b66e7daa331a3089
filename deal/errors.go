package deal

import "errors"

var (
	ErrNotStarted      = errors.New("game not started")
	ErrGameOver        = errors.New("game already over")
	ErrOutOfTurn       = errors.New("action out of turn")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrNoNegotiation   = errors.New("no negotiation in progress")
	ErrNotYourDecision = errors.New("decision belongs to another player")
)

// RuleError is a rejected play whose message is safe to send back to
// the offending client verbatim.
type RuleError string

func (e RuleError) Error() string { return string(e) }

func errRule(msg string) error { return RuleError(msg) }
