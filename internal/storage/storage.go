// Package storage defines the session store contract: point lookups, a code
// index, and atomic multi-document transactions scoped to one room.
package storage

import (
	"context"
	"errors"

	"hexroom/internal/room"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrCodeTaken indicates a room code was claimed between the uniqueness
// probe and the creation transaction.
var ErrCodeTaken = errors.New("room code already taken")

// RoomBundle is the complete document set created atomically with a room.
type RoomBundle struct {
	Room   room.Room
	Player room.Player
	Hand   room.Hand
	Board  room.Board
	Config room.Config
	Bank   room.Bank
	Trade  room.Trade
}

// Tx provides snapshot reads and atomically committed writes for the
// documents of one room. Every read observes the same consistent snapshot;
// writes become visible only when the enclosing Update commits.
type Tx interface {
	Room() (room.Room, error)
	PutRoom(room.Room) error

	// Players returns seated players in ascending seat order.
	Players() ([]room.Player, error)
	Player(playerID string) (room.Player, error)
	PutPlayer(room.Player) error
	DeletePlayer(playerID string) error

	Hand(playerID string) (room.Hand, error)
	PutHand(playerID string, hand room.Hand) error
	DeleteHand(playerID string) error

	Board() (room.Board, error)
	PutBoard(room.Board) error

	Config() (room.Config, error)
	PutConfig(room.Config) error

	Bank() (room.Bank, error)
	PutBank(room.Bank) error

	Trade() (room.Trade, error)
	PutTrade(room.Trade) error
}

// Store persists room aggregates.
type Store interface {
	// CreateRoom atomically writes every document in the bundle and claims
	// the room code in the index. Fails with ErrCodeTaken when the code was
	// claimed concurrently.
	CreateRoom(ctx context.Context, bundle RoomBundle) error

	// CodeInUse reports whether a code is currently claimed. The probe is
	// non-transactional with respect to later writes.
	CodeInUse(ctx context.Context, code string) (bool, error)

	// RoomIDByCode resolves a code to a room id. The lookup is
	// non-transactional: a stale hit makes the subsequent transaction fail
	// fast with ErrNotFound.
	RoomIDByCode(ctx context.Context, code string) (string, error)

	// Update runs fn inside one atomic transaction over the room's
	// documents. If fn returns an error the transaction aborts with no
	// observable effects.
	Update(ctx context.Context, roomID string, fn func(tx Tx) error) error

	// AppendLog appends an audit entry outside any room transaction.
	AppendLog(ctx context.Context, roomID string, entry room.LogEntry) error

	// Log returns up to limit audit entries in append order.
	Log(ctx context.Context, roomID string, limit int) ([]room.LogEntry, error)
}
