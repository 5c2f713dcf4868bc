// Package bbolt provides a BoltDB-backed session store. Each coordinator
// operation runs inside a single serializable db.Update, which gives the
// transaction contract the coordinator relies on: snapshot reads, atomic
// commits, no partial effects.
package bbolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"hexroom/internal/room"
	"hexroom/internal/storage"
)

const (
	roomBucket   = "room"
	playerBucket = "player"
	handBucket   = "hand"
	boardBucket  = "board"
	configBucket = "config"
	bankBucket   = "bank"
	tradeBucket  = "trade"
	logBucket    = "log"
	codeBucket   = "idx_code"
)

var buckets = []string{
	roomBucket, playerBucket, handBucket, boardBucket,
	configBucket, bankBucket, tradeBucket, logBucket, codeBucket,
}

// Store provides a BoltDB-backed room store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// scopedKey builds a composite key within a room aggregate.
func scopedKey(roomID, suffix string) []byte {
	return []byte(roomID + "/" + suffix)
}

// CreateRoom atomically writes a full room bundle and claims its code.
func (s *Store) CreateRoom(ctx context.Context, bundle storage.RoomBundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(bundle.Room.ID) == "" {
		return fmt.Errorf("room id is required")
	}
	if strings.TrimSpace(bundle.Room.Code) == "" {
		return fmt.Errorf("room code is required")
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		codes := btx.Bucket([]byte(codeBucket))
		if codes.Get([]byte(bundle.Room.Code)) != nil {
			return storage.ErrCodeTaken
		}
		if err := codes.Put([]byte(bundle.Room.Code), []byte(bundle.Room.ID)); err != nil {
			return fmt.Errorf("claim room code: %w", err)
		}

		tx := &roomTx{btx: btx, roomID: bundle.Room.ID}
		if err := tx.PutRoom(bundle.Room); err != nil {
			return err
		}
		if err := tx.PutPlayer(bundle.Player); err != nil {
			return err
		}
		if err := tx.PutHand(bundle.Player.ID, bundle.Hand); err != nil {
			return err
		}
		if err := tx.PutBoard(bundle.Board); err != nil {
			return err
		}
		if err := tx.PutConfig(bundle.Config); err != nil {
			return err
		}
		if err := tx.PutBank(bundle.Bank); err != nil {
			return err
		}
		return tx.PutTrade(bundle.Trade)
	})
}

// CodeInUse reports whether a room code is claimed.
func (s *Store) CodeInUse(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, fmt.Errorf("storage is not configured")
	}

	var inUse bool
	err := s.db.View(func(btx *bbolt.Tx) error {
		inUse = btx.Bucket([]byte(codeBucket)).Get([]byte(code)) != nil
		return nil
	})
	return inUse, err
}

// RoomIDByCode resolves a room code to its room id.
func (s *Store) RoomIDByCode(ctx context.Context, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.db == nil {
		return "", fmt.Errorf("storage is not configured")
	}

	var roomID string
	err := s.db.View(func(btx *bbolt.Tx) error {
		payload := btx.Bucket([]byte(codeBucket)).Get([]byte(code))
		if payload == nil {
			return storage.ErrNotFound
		}
		roomID = string(payload)
		return nil
	})
	if err != nil {
		return "", err
	}
	return roomID, nil
}

// Update runs fn inside one serializable transaction over the room's documents.
func (s *Store) Update(ctx context.Context, roomID string, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(roomID) == "" {
		return fmt.Errorf("room id is required")
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		return fn(&roomTx{btx: btx, roomID: roomID})
	})
}

// AppendLog appends an audit entry for a room.
func (s *Store) AppendLog(ctx context.Context, roomID string, entry room.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(roomID) == "" {
		return fmt.Errorf("room id is required")
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(logBucket))
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next log sequence: %w", err)
		}
		key := make([]byte, 0, len(roomID)+9)
		key = append(key, []byte(roomID+"/")...)
		key = binary.BigEndian.AppendUint64(key, seq)
		return bucket.Put(key, payload)
	})
}

// Log returns up to limit audit entries for a room in append order.
func (s *Store) Log(ctx context.Context, roomID string, limit int) ([]room.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var entries []room.LogEntry
	err := s.db.View(func(btx *bbolt.Tx) error {
		cursor := btx.Bucket([]byte(logBucket)).Cursor()
		prefix := []byte(roomID + "/")
		for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry room.LogEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("unmarshal log entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// roomTx implements storage.Tx over one bbolt transaction.
type roomTx struct {
	btx    *bbolt.Tx
	roomID string
}

func (t *roomTx) getDoc(bucket string, key []byte, target any) error {
	payload := t.btx.Bucket([]byte(bucket)).Get(key)
	if payload == nil {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("unmarshal %s document: %w", bucket, err)
	}
	return nil
}

func (t *roomTx) putDoc(bucket string, key []byte, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", bucket, err)
	}
	return t.btx.Bucket([]byte(bucket)).Put(key, payload)
}

func (t *roomTx) Room() (room.Room, error) {
	var r room.Room
	err := t.getDoc(roomBucket, []byte(t.roomID), &r)
	return r, err
}

func (t *roomTx) PutRoom(r room.Room) error {
	return t.putDoc(roomBucket, []byte(t.roomID), r)
}

func (t *roomTx) Players() ([]room.Player, error) {
	var players []room.Player
	cursor := t.btx.Bucket([]byte(playerBucket)).Cursor()
	prefix := []byte(t.roomID + "/")
	for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
		var p room.Player
		if err := json.Unmarshal(v, &p); err != nil {
			return nil, fmt.Errorf("unmarshal player document: %w", err)
		}
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Order < players[j].Order
	})
	return players, nil
}

func (t *roomTx) Player(playerID string) (room.Player, error) {
	var p room.Player
	err := t.getDoc(playerBucket, scopedKey(t.roomID, playerID), &p)
	return p, err
}

func (t *roomTx) PutPlayer(p room.Player) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	return t.putDoc(playerBucket, scopedKey(t.roomID, p.ID), p)
}

func (t *roomTx) DeletePlayer(playerID string) error {
	return t.btx.Bucket([]byte(playerBucket)).Delete(scopedKey(t.roomID, playerID))
}

func (t *roomTx) Hand(playerID string) (room.Hand, error) {
	var h room.Hand
	err := t.getDoc(handBucket, scopedKey(t.roomID, playerID), &h)
	return h, err
}

func (t *roomTx) PutHand(playerID string, h room.Hand) error {
	if strings.TrimSpace(playerID) == "" {
		return fmt.Errorf("player id is required")
	}
	return t.putDoc(handBucket, scopedKey(t.roomID, playerID), h)
}

func (t *roomTx) DeleteHand(playerID string) error {
	return t.btx.Bucket([]byte(handBucket)).Delete(scopedKey(t.roomID, playerID))
}

func (t *roomTx) Board() (room.Board, error) {
	var b room.Board
	err := t.getDoc(boardBucket, []byte(t.roomID), &b)
	return b, err
}

func (t *roomTx) PutBoard(b room.Board) error {
	return t.putDoc(boardBucket, []byte(t.roomID), b)
}

func (t *roomTx) Config() (room.Config, error) {
	var c room.Config
	err := t.getDoc(configBucket, []byte(t.roomID), &c)
	return c, err
}

func (t *roomTx) PutConfig(c room.Config) error {
	return t.putDoc(configBucket, []byte(t.roomID), c)
}

func (t *roomTx) Bank() (room.Bank, error) {
	var b room.Bank
	err := t.getDoc(bankBucket, []byte(t.roomID), &b)
	return b, err
}

func (t *roomTx) PutBank(b room.Bank) error {
	return t.putDoc(bankBucket, []byte(t.roomID), b)
}

func (t *roomTx) Trade() (room.Trade, error) {
	var tr room.Trade
	err := t.getDoc(tradeBucket, []byte(t.roomID), &tr)
	return tr, err
}

func (t *roomTx) PutTrade(tr room.Trade) error {
	return t.putDoc(tradeBucket, []byte(t.roomID), tr)
}
