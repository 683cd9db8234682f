package provider

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Cache keeps provider responses in a sqlite database so a session is
// downloaded only once. Responses are keyed by their full URL.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

func NewCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cache database %s", path)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(buildCreateResponsesTable()); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "initialising cache database %s", path)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Close()
}

func (c *Cache) Get(url string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query, read := buildSelectResponseCommand()
	rows, err := c.db.Query(query, url)
	if err != nil {
		return nil, false, err
	}
	return read(rows)
}

func (c *Cache) Put(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(buildUpsertResponseCommand(), url, body, time.Now().Unix())
	return err
}

// Len returns the number of stored responses.
func (c *Cache) Len() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	err := c.db.QueryRow(buildCountResponsesCommand()).Scan(&n)
	return n, err
}
