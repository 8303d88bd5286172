// Package search recovers rotor order, reflector and ring settings from a
// known plaintext and ciphertext pair, given the starting position and the
// plugboard cables.
//
// Every candidate in a Space is tried on its own freshly built machine, so
// the space is split between workers with nothing shared but the result list.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enigma/internal/alphabet"
)

// chunk is how many candidates a worker claims at a time.
const chunk = 2048

// ErrTextMismatch is returned when plaintext and ciphertext cannot belong
// together.
var ErrTextMismatch = errors.New("plaintext and ciphertext differ in length")

// Match is a candidate whose machine reproduced the ciphertext.
type Match struct {
	Index int64 `json:"index" yaml:"index"`
	Candidate
}

// Report is the outcome of one search. An empty Matches with Exhausted set
// means nothing in Space fits; widen the space and search again.
type Report struct {
	ID        string        `json:"id" yaml:"id"`
	Space     Space         `json:"space" yaml:"space"`
	Size      int64         `json:"size" yaml:"size"`
	Tried     int64         `json:"tried" yaml:"tried"`
	Exhausted bool          `json:"exhausted" yaml:"exhausted"`
	Matches   []Match       `json:"matches" yaml:"matches"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Searcher runs key searches.
type Searcher struct {
	workers   int
	firstOnly bool
	logger    *zap.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets the number of goroutines. Values below 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Searcher) { s.workers = n }
}

// WithFirstOnly makes workers stop claiming candidates once any match is
// found. Trials already running finish, so more than one match may be
// reported.
func WithFirstOnly() Option {
	return func(s *Searcher) { s.firstOnly = true }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Searcher.
func New(opts ...Option) *Searcher {
	s := &Searcher{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Run tries every candidate of space against plaintext and ciphertext. It
// returns an error only for a malformed request or when ctx ends first; in
// the latter case the partial report is returned as well.
func (s *Searcher) Run(ctx context.Context, space Space, plaintext, ciphertext string) (*Report, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if err := alphabet.Check(plaintext); err != nil {
		return nil, fmt.Errorf("plaintext: %w", err)
	}
	if err := alphabet.Check(ciphertext); err != nil {
		return nil, fmt.Errorf("ciphertext: %w", err)
	}
	if len(plaintext) != len(ciphertext) {
		return nil, fmt.Errorf("%w: %d and %d", ErrTextMismatch, len(plaintext), len(ciphertext))
	}

	report := &Report{ID: uuid.NewString(), Space: space, Size: space.Size()}
	log := s.logger.With(zap.String("run", report.ID))
	log.Info("key search started",
		zap.Strings("rotors", space.Rotors),
		zap.Strings("greek", space.Greek),
		zap.Strings("reflectors", space.Reflectors),
		zap.String("position", space.Position),
		zap.Strings("cables", space.Cables),
		zap.Int64("candidates", report.Size),
		zap.Int("workers", s.workers))
	start := time.Now()

	var (
		next    atomic.Int64
		tried   atomic.Int64
		stop    atomic.Bool
		mu      sync.Mutex
		matches []Match
	)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			for {
				lo := next.Add(chunk) - chunk
				if lo >= report.Size || stop.Load() {
					return nil
				}
				log.Debug("worker claimed range", zap.Int("worker", w), zap.Int64("from", lo), zap.Int64("to", lo+chunk))
				for i, c := range space.Range(lo, lo+chunk) {
					if stop.Load() {
						return nil
					}
					if err := gctx.Err(); err != nil {
						return err
					}
					m, err := space.Machine(c)
					if err != nil {
						return fmt.Errorf("candidate %d (%s): %w", i, c, err)
					}
					tried.Add(1)
					if !m.Match(plaintext, ciphertext) {
						continue
					}
					log.Info("key found",
						zap.Strings("rotors", c.Rotors),
						zap.String("reflector", c.Reflector),
						zap.String("ring", c.Ring))
					mu.Lock()
					matches = append(matches, Match{Index: i, Candidate: c})
					mu.Unlock()
					if s.firstOnly {
						stop.Store(true)
					}
				}
			}
		})
	}
	err := g.Wait()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	report.Matches = matches
	report.Tried = tried.Load()
	report.Exhausted = report.Tried == report.Size
	report.Elapsed = time.Since(start)

	log.Info("key search finished",
		zap.Int64("tried", report.Tried),
		zap.Int("matches", len(report.Matches)),
		zap.Bool("exhausted", report.Exhausted),
		zap.Duration("elapsed", report.Elapsed),
		zap.Error(err))
	return report, err
}

// Find runs a search with default options.
func Find(ctx context.Context, space Space, plaintext, ciphertext string) (*Report, error) {
	return New().Run(ctx, space, plaintext, ciphertext)
}
