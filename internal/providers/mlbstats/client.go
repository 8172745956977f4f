// Package mlbstats reads player roster status and transactions from the
// public MLB Stats API, with a short-lived in-memory cache so draft-room
// refreshes do not hammer the upstream.
package mlbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/roto-auction-service/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	CacheTTL   time.Duration
}

// Client implements providers.NewsProvider against the MLB Stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	ttl        time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	at   time.Time
	news providers.PlayerNews
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		ttl:        resolveCacheTTL(cfg.CacheTTL),
		cache:      make(map[string]cacheEntry),
	}
}

// PlayerNews resolves a player name to their roster status and recent
// transactions. A name with no upstream match is a normal result with
// Status "Unknown"; only transport failures error.
func (c *Client) PlayerNews(ctx context.Context, name string) (providers.PlayerNews, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return providers.PlayerNews{}, fmt.Errorf("mlbstats: empty player name")
	}
	if news, ok := c.cached(key); ok {
		return news, nil
	}

	id, err := c.searchPlayerID(ctx, name)
	if err != nil {
		return providers.PlayerNews{}, err
	}
	if id == 0 {
		news := providers.PlayerNews{
			Status:       "Unknown",
			Transactions: []providers.Transaction{},
			Error:        "player not found",
		}
		c.store(key, news)
		return news, nil
	}

	news := providers.PlayerNews{PlayerID: id, Transactions: []providers.Transaction{}}
	c.hydratePerson(ctx, id, &news)

	// Transactions and bio are best effort: a hiccup on either still
	// yields a usable status instead of a failed lookup.
	if txs, err := c.recentTransactions(ctx, id); err == nil {
		news.Transactions = txs
	}
	news.Status = statusFrom(news.Transactions)

	c.store(key, news)
	return news, nil
}

func (c *Client) searchPlayerID(ctx context.Context, name string) (int, error) {
	var payload searchResponse
	if err := c.getJSON(ctx, "/people/search?names="+url.QueryEscape(name), &payload); err != nil {
		return 0, err
	}
	if len(payload.People) == 0 {
		return 0, nil
	}
	for _, p := range payload.People {
		if p.Active {
			return p.ID, nil
		}
	}
	return payload.People[0].ID, nil
}

func (c *Client) hydratePerson(ctx context.Context, id int, news *providers.PlayerNews) {
	var payload searchResponse
	if err := c.getJSON(ctx, "/people/"+strconv.Itoa(id)+"?hydrate=currentTeam", &payload); err != nil {
		return
	}
	if len(payload.People) == 0 {
		return
	}
	p := payload.People[0]
	news.Age = p.CurrentAge
	news.Debut = p.MLBDebut
	news.BatSide = p.BatSide.Description
	news.ThrowHand = p.PitchHand.Description
	news.CurrentTeam = p.CurrentTeam.Name
}

func (c *Client) recentTransactions(ctx context.Context, id int) ([]providers.Transaction, error) {
	end := c.now()
	start := end.AddDate(0, 0, -transactionWindowDays)
	path := fmt.Sprintf("/transactions?playerId=%d&startDate=%s&endDate=%s",
		id, start.Format("2006-01-02"), end.Format("2006-01-02"))

	var payload transactionsResponse
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return mapTransactions(payload.Transactions), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mlbstats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) cached(key string) (providers.PlayerNews, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || c.now().Sub(entry.at) >= c.ttl {
		return providers.PlayerNews{}, false
	}
	return entry.news, true
}

func (c *Client) store(key string, news providers.PlayerNews) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{at: c.now(), news: news}
}
