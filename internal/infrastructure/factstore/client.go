package factstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"

	"github.com/kazfoot/kpl-fantasy/internal/platform/logging"
	"github.com/kazfoot/kpl-fantasy/internal/platform/resilience"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

const (
	defaultTimeout       = 20 * time.Second
	detailFetchWorkers   = 4
	maxResponseBodyBytes = 8 << 20
)

var errTransient = crerr.New("factstore transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the upstream match-facts feed. It implements
// usecase.FactProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type teamPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"shortName"`
	City  string `json:"city"`
}

type playerPayload struct {
	ID       string `json:"id"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Price    int64  `json:"price"`
}

type matchSummaryPayload struct {
	ID         string    `json:"id"`
	Round      int       `json:"round"`
	KickoffAt  time.Time `json:"kickoffAt"`
	Status     string    `json:"status"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	HomeScore  *int      `json:"homeScore"`
	AwayScore  *int      `json:"awayScore"`
}

type eventPayload struct {
	ID             string `json:"id"`
	TeamID         string `json:"teamId"`
	Type           string `json:"type"`
	Minute         int    `json:"minute"`
	ExtraMinute    int    `json:"extraMinute"`
	PlayerID       string `json:"playerId"`
	AssistPlayerID string `json:"assistPlayerId"`
	SubOutPlayerID string `json:"subOutPlayerId"`
}

type lineupPayload struct {
	TeamID    string `json:"teamId"`
	PlayerID  string `json:"playerId"`
	IsStarter bool   `json:"isStarter"`
	Position  string `json:"position"`
}

type matchDetailPayload struct {
	Events  []eventPayload  `json:"events"`
	Lineups []lineupPayload `json:"lineups"`
}

// FetchSnapshot pulls a competition's teams, players and matches, then fans
// out bounded concurrent fetches for per-match events and lineups.
func (c *Client) FetchSnapshot(ctx context.Context, competitionCode string, season int) (usecase.ExternalSnapshot, error) {
	competitionCode = strings.TrimSpace(competitionCode)
	if competitionCode == "" {
		return usecase.ExternalSnapshot{}, fmt.Errorf("competition code is required")
	}
	if season <= 0 {
		return usecase.ExternalSnapshot{}, fmt.Errorf("season must be greater than zero")
	}

	base := "/v1/competitions/" + url.PathEscape(competitionCode) + "/" + strconv.Itoa(season)

	var teams []teamPayload
	if err := c.getJSON(ctx, base+"/teams", &teams); err != nil {
		return usecase.ExternalSnapshot{}, crerr.Wrapf(err, "fetch teams competition=%s", competitionCode)
	}

	var players []playerPayload
	if err := c.getJSON(ctx, base+"/players", &players); err != nil {
		return usecase.ExternalSnapshot{}, crerr.Wrapf(err, "fetch players competition=%s", competitionCode)
	}

	var summaries []matchSummaryPayload
	if err := c.getJSON(ctx, base+"/matches", &summaries); err != nil {
		return usecase.ExternalSnapshot{}, crerr.Wrapf(err, "fetch matches competition=%s", competitionCode)
	}

	details := make([]matchDetailPayload, len(summaries))
	fetchPool := pool.New().WithContext(ctx).WithMaxGoroutines(detailFetchWorkers).WithCancelOnError()
	for idx, summary := range summaries {
		idx, summary := idx, summary
		fetchPool.Go(func(ctx context.Context) error {
			var detail matchDetailPayload
			if err := c.getJSON(ctx, base+"/matches/"+url.PathEscape(summary.ID), &detail); err != nil {
				return crerr.Wrapf(err, "fetch match detail match=%s", summary.ID)
			}
			details[idx] = detail
			return nil
		})
	}
	if err := fetchPool.Wait(); err != nil {
		return usecase.ExternalSnapshot{}, err
	}

	snapshot := usecase.ExternalSnapshot{
		Teams:   make([]usecase.ExternalTeam, 0, len(teams)),
		Players: make([]usecase.ExternalPlayer, 0, len(players)),
		Matches: make([]usecase.ExternalMatch, 0, len(summaries)),
	}
	for _, t := range teams {
		snapshot.Teams = append(snapshot.Teams, usecase.ExternalTeam(t))
	}
	for _, p := range players {
		snapshot.Players = append(snapshot.Players, usecase.ExternalPlayer(p))
	}
	for idx, summary := range summaries {
		snapshot.Matches = append(snapshot.Matches, mapMatch(summary, details[idx]))
	}

	sort.SliceStable(snapshot.Matches, func(i, j int) bool {
		return snapshot.Matches[i].KickoffAt.Before(snapshot.Matches[j].KickoffAt)
	})

	c.logger.InfoContext(ctx, "factstore snapshot fetched",
		"competition", competitionCode,
		"season", season,
		"teams", len(snapshot.Teams),
		"players", len(snapshot.Players),
		"matches", len(snapshot.Matches),
	)

	return snapshot, nil
}

func mapMatch(summary matchSummaryPayload, detail matchDetailPayload) usecase.ExternalMatch {
	events := make([]usecase.ExternalEvent, 0, len(detail.Events))
	for _, ev := range detail.Events {
		events = append(events, usecase.ExternalEvent(ev))
	}
	lineups := make([]usecase.ExternalLineupEntry, 0, len(detail.Lineups))
	for _, entry := range detail.Lineups {
		lineups = append(lineups, usecase.ExternalLineupEntry(entry))
	}

	return usecase.ExternalMatch{
		ID:         summary.ID,
		Round:      summary.Round,
		KickoffAt:  summary.KickoffAt,
		Status:     summary.Status,
		HomeTeamID: summary.HomeTeamID,
		AwayTeamID: summary.AwayTeamID,
		HomeScore:  summary.HomeScore,
		AwayScore:  summary.AwayScore,
		Events:     events,
		Lineups:    lineups,
	}
}

// getJSON performs one authorized GET with retries on transient failures.
// The circuit breaker sits outside the retry loop so a flapping upstream
// opens it quickly.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				c.recordFailure()
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
			}
		}

		lastErr = c.doGetJSON(ctx, path, out)
		if lastErr == nil {
			c.recordSuccess()
			return nil
		}
		if !crerr.Is(lastErr, errTransient) {
			c.recordFailure()
			return lastErr
		}

		c.logger.WarnContext(ctx, "factstore request retry",
			"path", path,
			"attempt", attempt+1,
			"error", lastErr,
		)
	}

	c.recordFailure()
	return lastErr
}

func (c *Client) doGetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Mark(fmt.Errorf("do request: %w", err), errTransient)
	}
	defer func() { _ = resp.Body.Close() }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxResponseBodyBytes)); err != nil {
		return crerr.Mark(fmt.Errorf("read response body: %w", err), errTransient)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return crerr.Mark(fmt.Errorf("upstream status %d for %s", resp.StatusCode, path), errTransient)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("upstream status %d for %s", resp.StatusCode, path)
	}

	if err := sonic.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("decode response for %s: %w", path, err)
	}
	return nil
}

func (c *Client) recordSuccess() {
	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.circuitEnabled {
		c.breaker.RecordFailure()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
