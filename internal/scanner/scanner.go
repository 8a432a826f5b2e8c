package scanner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/config"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
)

var (
	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qm_scan_duration_seconds",
		Help:    "Duration of a full rank scan over all roles.",
		Buckets: prometheus.DefBuckets,
	})
	scansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qm_scans_total",
		Help: "Number of completed rank scans.",
	})
	liveItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qm_live_items",
		Help: "Items currently in the live feed.",
	})
	livePawns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qm_live_pawns",
		Help: "Pawns currently in the live feed.",
	})
)

// RankEvent is published per role after each scan.
type RankEvent struct {
	RoleID    string                    `json:"role_id"`
	Ranked    []scoring.RankedCandidate `json:"ranked"`
	Timestamp time.Time                 `json:"timestamp"`
}

// StatsEvent summarizes a completed scan.
type StatsEvent struct {
	Roles      int       `json:"roles"`
	Items      int       `json:"items"`
	Pawns      int       `json:"pawns"`
	DurationMs float64   `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Scanner periodically re-ranks the live item set for every known role and
// publishes the results. Runs without a colony client; publishing is then
// skipped.
type Scanner struct {
	feed   *colony.Feed
	engine *scoring.Engine
	client colony.Client
	cfg    *config.Config
	logger *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(feed *colony.Feed, engine *scoring.Engine, client colony.Client, cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{
		feed:   feed,
		engine: engine,
		client: client,
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

func (s *Scanner) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.scanLoop(ctx)
}

func (s *Scanner) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scanner) scanLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.ScanInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan()
		}
	}
}

func (s *Scanner) scan() {
	start := time.Now()

	items := s.feed.Items()
	candidates := make([]scoring.Candidate, len(items))
	for i, it := range items {
		candidates[i] = it
	}

	roles := s.engine.Rules.Roles()
	for _, role := range roles {
		rule := s.engine.Rules.RuleFor(role)
		ranked := rule.Rank(candidates)
		if s.client == nil {
			continue
		}
		ev := RankEvent{RoleID: role, Ranked: ranked, Timestamp: time.Now()}
		if err := s.client.Publish(colony.SubjectRankResult(role), ev); err != nil {
			s.logger.Warn("failed to publish rank result", "role", role, "error", err)
		}
	}

	pawns, itemCount, _ := s.feed.Counts()
	livePawns.Set(float64(pawns))
	liveItems.Set(float64(itemCount))
	scansTotal.Inc()
	elapsed := time.Since(start)
	scanDuration.Observe(elapsed.Seconds())

	if s.client != nil {
		ev := StatsEvent{
			Roles:      len(roles),
			Items:      itemCount,
			Pawns:      pawns,
			DurationMs: float64(elapsed.Milliseconds()),
			Timestamp:  time.Now(),
		}
		if err := s.client.Publish(colony.SubjectScanStats(), ev); err != nil {
			s.logger.Warn("failed to publish scan stats", "error", err)
		}
	}

	s.logger.Debug("scan complete",
		"roles", len(roles),
		"items", itemCount,
		"duration_ms", elapsed.Milliseconds(),
	)
}
