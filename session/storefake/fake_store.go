package storefake

import (
	"sync"

	"github.com/jrsteele09/go-admin-dashboard/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store. SetError makes every following
// call fail with err until it is reset with nil.
type FakeStore struct {
	values map[string]string
	err    error
	lock   sync.RWMutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		values: make(map[string]string),
	}
}

func (fs *FakeStore) SetError(err error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.err = err
}

func (fs *FakeStore) Get(key string) (string, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	if fs.err != nil {
		return "", fs.err
	}
	v, ok := fs.values[key]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

func (fs *FakeStore) Put(values map[string]string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.err != nil {
		return fs.err
	}
	for k, v := range values {
		fs.values[k] = v
	}
	return nil
}

func (fs *FakeStore) Delete(keys ...string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.err != nil {
		return fs.err
	}
	for _, k := range keys {
		delete(fs.values, k)
	}
	return nil
}

// Values returns a copy of the stored values for assertions.
func (fs *FakeStore) Values() map[string]string {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	out := make(map[string]string, len(fs.values))
	for k, v := range fs.values {
		out[k] = v
	}
	return out
}
