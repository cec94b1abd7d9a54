// Package rcache caches parse results by source content hash, so a
// single-file rue parse or explore run against an unchanged file can skip
// straight to the cached tokens and tree. A small in-memory layer sits in
// front of a msgpack-encoded disk cache. Directory-mode commands do not
// consult it.
package rcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/token"
)

// schemaVersion guards against decoding a payload written by an
// incompatible earlier version of this package.
const schemaVersion uint16 = 1

// Digest is a content hash: sha256 of the exact source bytes that were
// tokenized and parsed.
type Digest [sha256.Size]byte

// Sum computes the Digest for src.
func Sum(src []byte) Digest { return sha256.Sum256(src) }

// Payload is the cached outcome of lexing and parsing one file's content.
// Err is nil on success; a cached failure is still worth serving, since
// re-parsing broken content would fail identically.
type Payload struct {
	Schema uint16
	Tokens []token.Token
	Tree   *cst.Tree
	Err    *diag.Diagnostic
}

type entry struct {
	digest  Digest
	payload Payload
}

// Cache is a two-tier cache: an in-memory map guarded by a mutex, backed
// by a directory of msgpack files for cross-run persistence. The zero
// value is unusable; construct with Open.
type Cache struct {
	mu   sync.RWMutex
	mem  map[string]entry // key: file path as passed to Get/Put
	dir  string           // disk cache directory, empty disables persistence
}

// Open creates a Cache backed by dir. If dir is empty, the cache holds
// results only in memory for the lifetime of the process.
func Open(dir string) (*Cache, error) {
	c := &Cache{mem: make(map[string]entry), dir: dir}
	if dir == "" {
		return c, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) diskPath(digest Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(digest[:])+".mp")
}

// Get returns the cached payload for path if its content still hashes to
// digest. A mismatched digest is a cache miss, not an error: the file
// changed since it was last cached.
func (c *Cache) Get(path string, digest Digest) (Payload, bool) {
	c.mu.RLock()
	e, ok := c.mem[path]
	c.mu.RUnlock()
	if ok && e.digest == digest {
		return e.payload, true
	}

	if c.dir == "" {
		return Payload{}, false
	}
	payload, ok := c.readDisk(digest)
	if !ok {
		return Payload{}, false
	}
	c.mu.Lock()
	c.mem[path] = entry{digest: digest, payload: payload}
	c.mu.Unlock()
	return payload, true
}

// Put records path's parse outcome under digest, in memory and, if
// enabled, on disk.
func (c *Cache) Put(path string, digest Digest, payload Payload) error {
	payload.Schema = schemaVersion
	c.mu.Lock()
	c.mem[path] = entry{digest: digest, payload: payload}
	c.mu.Unlock()
	if c.dir == "" {
		return nil
	}
	return c.writeDisk(digest, payload)
}

func (c *Cache) readDisk(digest Digest) (Payload, bool) {
	f, err := os.Open(c.diskPath(digest))
	if err != nil {
		return Payload{}, false
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Payload{}, false
	}
	if payload.Schema != schemaVersion {
		return Payload{}, false
	}
	return payload, true
}

func (c *Cache) writeDisk(digest Digest, payload Payload) error {
	target := c.diskPath(digest)
	tmp, err := os.CreateTemp(c.dir, "tmp-*.mp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, target)
}

// DropAll removes every cached entry from memory and disk.
func (c *Cache) DropAll() error {
	c.mu.Lock()
	c.mem = make(map[string]entry)
	dir := c.dir
	c.mu.Unlock()
	if dir == "" {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
