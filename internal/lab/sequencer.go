// Package lab implements the stage sequencer that drives the experience:
// boot → lab → analyzing → diagnosis, with "new experiment" looping from
// diagnosis back to lab.
//
// The sequencer is the only writer of Stage and Selection. Views call its
// operations; an operation whose precondition stage does not match changes
// nothing and reports ErrInvalidTransition (or panics in strict mode).
package lab

import (
	"fmt"

	"github.com/alexanderramin/rosalab/internal/catalog"
	"github.com/alexanderramin/rosalab/internal/domain"
	"go.uber.org/zap"
)

// Sequencer owns the current stage and the selected specimen.
// It is not safe for concurrent use; the TUI event loop is its only caller.
type Sequencer struct {
	catalog   *catalog.Catalog
	stage     domain.Stage
	selection string
	strict    bool
	log       *zap.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger routes transition and rejection events to log.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sequencer) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStrict makes rejected operations panic instead of returning an error.
func WithStrict(strict bool) Option {
	return func(s *Sequencer) { s.strict = strict }
}

// NewSequencer creates a sequencer over c, already started at boot.
func NewSequencer(c *catalog.Catalog, opts ...Option) *Sequencer {
	s := &Sequencer{
		catalog: c,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Start()
	return s
}

// Start puts the sequencer at boot with no selection.
func (s *Sequencer) Start() {
	s.stage = domain.StageBoot
	s.selection = ""
	s.log.Debug("sequencer started", zap.Stringer("stage", s.stage))
}

// Stage returns the active stage.
func (s *Sequencer) Stage() domain.Stage { return s.stage }

// Selection returns the selected specimen identity, if any.
func (s *Sequencer) Selection() (string, bool) {
	return s.selection, s.selection != ""
}

// Catalog returns the catalog the sequencer selects from.
func (s *Sequencer) Catalog() *catalog.Catalog { return s.catalog }

// Strict reports whether rejected operations panic.
func (s *Sequencer) Strict() bool { return s.strict }

// Diagnosis resolves the current selection, or the catalog default when
// nothing is selected.
func (s *Sequencer) Diagnosis() domain.Diagnosis {
	id := s.selection
	if id == "" {
		id = s.catalog.DefaultID()
	}
	return s.catalog.Diagnose(id)
}

// CompleteBoot moves boot → lab.
func (s *Sequencer) CompleteBoot() error {
	return s.advance("complete_boot", domain.StageBoot, domain.StageLab)
}

// BeginTest moves lab → analyzing. It does not require a selection.
func (s *Sequencer) BeginTest() error {
	return s.advance("begin_test", domain.StageLab, domain.StageAnalyzing)
}

// CompleteAnalysis moves analyzing → diagnosis.
func (s *Sequencer) CompleteAnalysis() error {
	return s.advance("complete_analysis", domain.StageAnalyzing, domain.StageDiagnosis)
}

// Reset moves diagnosis → lab for a new experiment. The selection is kept.
func (s *Sequencer) Reset() error {
	return s.advance("reset", domain.StageDiagnosis, domain.StageLab)
}

// SelectSpecimen sets the selection while in the lab. Selecting the
// already-selected specimen is a no-op that succeeds.
func (s *Sequencer) SelectSpecimen(id string) error {
	if s.stage != domain.StageLab {
		return s.reject("select_specimen", fmt.Errorf("select %q in stage %s: %w",
			id, s.stage, ErrInvalidTransition))
	}
	if !s.catalog.Has(id) {
		return s.reject("select_specimen", fmt.Errorf("%w: %q", ErrUnknownSpecimen, id))
	}
	if s.selection != id {
		s.log.Debug("specimen selected",
			zap.String("specimen", id),
			zap.String("previous", s.selection))
	}
	s.selection = id
	return nil
}

func (s *Sequencer) advance(op string, from, to domain.Stage) error {
	if s.stage != from {
		return s.reject(op, fmt.Errorf("%s requires stage %s, current stage %s: %w",
			op, from, s.stage, ErrInvalidTransition))
	}
	s.stage = to
	s.log.Info("stage transition",
		zap.String("op", op),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("selection", s.selection))
	return nil
}

func (s *Sequencer) reject(op string, err error) error {
	s.log.Warn("operation rejected",
		zap.String("op", op),
		zap.Stringer("stage", s.stage),
		zap.Error(err))
	if s.strict {
		panic(err)
	}
	return err
}
