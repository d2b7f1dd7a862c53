package events

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message published via pubsub.
type EventType string

const (
	EventPlayerRegistered EventType = "player-registered"
	EventPlayerCancelled  EventType = "player-cancelled"
	EventWalletToppedUp   EventType = "wallet-topped-up"
)

// PlayerEvent is the payload of registration and cancellation events.
type PlayerEvent struct {
	MatchID  string `msgpack:"match_id"`
	PlayerID string `msgpack:"player_id"`
	Roster   int    `msgpack:"roster"`
	Waitlist int    `msgpack:"waitlist"`
}

// WalletEvent is the payload of wallet top-up events.
type WalletEvent struct {
	UserID  string  `msgpack:"user_id"`
	Amount  float64 `msgpack:"amount"`
	Balance float64 `msgpack:"balance"`
}
