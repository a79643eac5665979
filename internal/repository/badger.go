package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger"
	"github.com/stpnv0/TicketHub/internal/codec"
	"github.com/wb-go/wbf/logger"
)

// BadgerDB owns the embedded database shared by every BadgerStore.
type BadgerDB struct {
	db *badger.DB
}

func OpenBadger(dir string, log logger.Logger) (*BadgerDB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = badgerLogger{log: log}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &BadgerDB{db: db}, nil
}

func (b *BadgerDB) Close() error {
	return b.db.Close()
}

// BadgerStore keeps one collection under a key prefix. Keys sort
// lexicographically, so Values is a prefix scan in key order.
type BadgerStore[V any] struct {
	db     *badger.DB
	prefix []byte
}

func NewBadgerStore[V any](b *BadgerDB, bucket string) *BadgerStore[V] {
	return &BadgerStore[V]{
		db:     b.db,
		prefix: []byte(bucket + "/"),
	}
}

func (s *BadgerStore[V]) key(k string) []byte {
	key := make([]byte, 0, len(s.prefix)+len(k))
	key = append(key, s.prefix...)
	return append(key, k...)
}

func (s *BadgerStore[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var v V
	if err := ctx.Err(); err != nil {
		return v, false, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("badger get %s: %w", key, err)
	}

	if err = codec.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("decode %s: %w", key, err)
	}

	return v, true, nil
}

func (s *BadgerStore[V]) Insert(ctx context.Context, key string, value V) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), data)
	})
	if err != nil {
		return fmt.Errorf("badger set %s: %w", key, err)
	}

	return nil
}

func (s *BadgerStore[V]) Values(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var res []V
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(s.prefix); it.ValidForPrefix(s.prefix); it.Next() {
			item := it.Item()
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			var v V
			if err = codec.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("decode %s: %w", item.Key(), err)
			}
			res = append(res, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger scan %s: %w", s.prefix, err)
	}

	return res, nil
}

type badgerLogger struct {
	log logger.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error("badger", logger.String("message", fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn("badger", logger.String("message", fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug("badger", logger.String("message", fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug("badger", logger.String("message", fmt.Sprintf(format, args...)))
}
