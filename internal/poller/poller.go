package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
	"quiet-scores-service/internal/metrics"
	"quiet-scores-service/internal/providers"
	"quiet-scores-service/internal/timeutil"
)

const (
	defaultLiveInterval = 5 * time.Second
	defaultIdleInterval = 60 * time.Second
)

// ScoreService receives each cycle's snapshot and reports live state.
type ScoreService interface {
	ReplaceScores(date string, records []domain.GameRecord) []domain.ScoreUpdate
	HasLiveGames() bool
}

// SnapshotWriter persists score snapshots to disk.
type SnapshotWriter interface {
	WriteScoresSnapshot(date string, snapshot domain.ScoresResponse) error
}

// UpdatePublisher receives the score changes detected in a cycle.
// WebSocket broadcast and notifications both hang off this.
type UpdatePublisher interface {
	PublishUpdates(ctx context.Context, updates []domain.ScoreUpdate)
}

// Poller fetches scores on an interval, replaces the stored snapshot,
// and fans detected changes out to publishers. The interval tightens
// while any game is live and relaxes when the slate is idle.
type Poller struct {
	provider     providers.ScoreProvider
	service      ScoreService
	writer       SnapshotWriter
	publishers   []UpdatePublisher
	logger       *slog.Logger
	metrics      *metrics.Recorder
	liveInterval time.Duration
	idleInterval time.Duration
	now          func() time.Time

	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Options carries the optional collaborators.
type Options struct {
	Writer     SnapshotWriter
	Publishers []UpdatePublisher
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScoreProvider, service ScoreService, liveInterval, idleInterval time.Duration, opts Options) *Poller {
	if liveInterval <= 0 {
		liveInterval = defaultLiveInterval
	}
	if idleInterval <= 0 {
		idleInterval = defaultIdleInterval
	}
	return &Poller{
		provider:     provider,
		service:      service,
		writer:       opts.Writer,
		publishers:   opts.Publishers,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		liveInterval: liveInterval,
		idleInterval: idleInterval,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started",
			"live_interval_ms", p.liveInterval.Milliseconds(),
			"idle_interval_ms", p.idleInterval.Milliseconds(),
		)
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)
		p.timer = time.NewTimer(p.nextInterval())

		for {
			select {
			case <-ctx.Done():
				p.stopTimer()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTimer()
				p.logInfo("poller stopped")
				return
			case <-p.timer.C:
				p.fetchOnce(ctx)
				p.timer.Reset(p.nextInterval())
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// nextInterval picks the refresh cadence from the stored slate.
func (p *Poller) nextInterval() time.Duration {
	if p.service.HasLiveGames() {
		return p.liveInterval
	}
	return p.idleInterval
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.FormatDate(p.now().UTC())
	records, err := p.provider.FetchScores(ctx, today)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	updates := p.service.ReplaceScores(today, records)
	if p.metrics != nil {
		p.metrics.RecordScoreUpdates(len(updates))
	}
	if len(updates) > 0 {
		for _, pub := range p.publishers {
			pub.PublishUpdates(ctx, updates)
		}
	}

	if p.writer != nil {
		snap := domain.NewScoresResponse(today, records)
		if writeErr := p.writer.WriteScoresSnapshot(today, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed scores",
		logging.FieldCount, len(records),
		"updates", len(updates),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.ScoreProvider {
	return p.provider
}
