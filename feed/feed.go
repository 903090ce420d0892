// Package feed streams live or recorded sample traces into the
// timeseries layer. A trace is a CSV file whose first column is a unix
// nanosecond timestamp and whose remaining columns each hold one named
// value series; blank cells mark series with no sample on that row.
// Traces being actively appended to are followed via filesystem
// notifications.
package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"git.sr.ht/~gioverse/skel/stream"
	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"git.sr.ht/~cgenuity/timechart/timeseries"
)

// Mode describes how a session acquires data.
type Mode uint8

const (
	ModeNone Mode = iota
	// ModeReplaying reads a complete recorded trace.
	ModeReplaying
	// ModeFollowing tails a trace that is still being written.
	ModeFollowing
)

// Session is one growing set of sample series parsed from a trace.
// Values emitted on a session stream are snapshots; the Samples slices
// must not be mutated by consumers.
type Session struct {
	ID      string
	Names   []string
	Samples [][]timeseries.Sample
	Mode    Mode
	Err     error
}

// SeriesSamples returns the accumulated samples for a named series,
// or nil when the trace declares no such series.
func (s Session) SeriesSamples(name string) []timeseries.Sample {
	for i, n := range s.Names {
		if n == name {
			return s.Samples[i]
		}
	}
	return nil
}

// apply folds one parsed input into the session. Series indices are
// allocated across every trace feeding the session, so the slices grow
// with placeholder entries when a later trace's headings arrive before
// an earlier trace's.
func (s *Session) apply(in input) {
	switch in.kind {
	case kindHeadings:
		for len(s.Names) < in.series+len(in.headings) {
			s.Names = append(s.Names, "")
			s.Samples = append(s.Samples, nil)
		}
		for i, heading := range in.headings {
			s.Names[in.series+i] = heading
		}
	case kindSample:
		s.Samples[in.series] = append(s.Samples[in.series], in.sample)
	}
}

type inputKind uint8

const (
	kindSample inputKind = iota
	kindHeadings
)

type input struct {
	kind     inputKind
	series   int
	sample   timeseries.Sample
	headings []string
}

// Feed owns trace sessions and publishes their growth through a
// mutation pool.
type Feed struct {
	pool    *stream.MutationPool[string, Session]
	watcher *fsnotify.Watcher
	appCtx  context.Context
	logger  log.Logger
}

// New builds a feed whose sessions live until appCtx is cancelled.
// logger may be nil for silence.
func New(appCtx context.Context, mutator *stream.Mutator, logger log.Logger) (*Feed, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating file watcher: %w", err)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Feed{
		pool:    stream.NewMutationPool[string, Session](mutator),
		watcher: watcher,
		appCtx:  appCtx,
		logger:  logger,
	}, nil
}

// Sessions streams the set of known sessions.
func (f *Feed) Sessions(ctx context.Context) <-chan map[string]*stream.Mutation[Session] {
	return f.pool.Stream(ctx)
}

// Session streams snapshots of one session as its trace grows.
func (f *Feed) Session(ctx context.Context, sessionID string) <-chan Session {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	return (<-f.pool.Stream(subCtx))[sessionID].Stream(ctx)
}

// Replay parses complete recorded traces into a new session and
// returns its ID. The readers are consumed on a background goroutine.
func (f *Feed) Replay(traces ...io.ReadCloser) string {
	id := uuid.NewString()
	f.record(id, ModeReplaying, traces...)
	return id
}

// Follow opens the trace at path and tails it as it grows, returning
// the new session's ID.
func (f *Feed) Follow(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed opening trace: %w", err)
	}
	if err := f.watcher.Add(path); err != nil {
		file.Close()
		return "", fmt.Errorf("failed watching trace: %w", err)
	}
	id := uuid.NewString()
	f.record(id, ModeFollowing, file)
	return id, nil
}

func (f *Feed) record(sessionID string, mode Mode, traces ...io.ReadCloser) *stream.Mutation[Session] {
	mutation, _ := stream.Mutate(f.pool, sessionID, func(ctx context.Context) <-chan Session {
		out := make(chan Session, 1)
		go func() {
			defer close(out)
			session := Session{
				ID:   sessionID,
				Mode: mode,
			}
			out <- session

			raw := make(chan input, 1024)
			// Series indices are allocated per session, shared across
			// every trace feeding it, so that parallel traces never
			// claim the same slot.
			var seriesCounter atomic.Int64
			for _, trace := range traces {
				trace := trace
				go func() {
					defer trace.Close()
					f.readTrace(trace, mode, &seriesCounter, raw)
				}()
			}
			for {
				select {
				case <-ctx.Done():
					return
				case in := <-raw:
					session.apply(in)
					out <- session
				}
			}
		}()
		return out
	})
	return mutation
}

// readTrace parses CSV rows from one trace, emitting headings first
// and then samples. Series indices are claimed from counter so that
// every trace feeding one session occupies distinct slots. In
// following mode an EOF blocks on the next write notification instead
// of ending the trace.
func (f *Feed) readTrace(trace io.Reader, mode Mode, counter *atomic.Int64, raw chan<- input) {
	var reader io.Reader = trace
	if mode == ModeFollowing {
		reader = newLineReader(trace)
	}
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	headings, err := csvReader.Read()
	if err != nil {
		level.Warn(f.logger).Log("msg", "failed reading trace headings", "err", err)
		return
	}
	if len(headings) < 2 {
		level.Warn(f.logger).Log("msg", "trace declares no series", "columns", len(headings))
		return
	}
	names := make([]string, len(headings)-1)
	for i, h := range headings[1:] {
		names[i] = strings.TrimSpace(h)
	}
	base := int(counter.Add(int64(len(names)))) - len(names)
	raw <- input{kind: kindHeadings, series: base, headings: names}

readLoop:
	for {
		rec, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) && mode == ModeFollowing {
				for ev := range f.watcher.Events {
					if ev.Op == fsnotify.Write {
						continue readLoop
					}
				}
			}
			if !errors.Is(err, io.EOF) {
				level.Warn(f.logger).Log("msg", "could not read trace data", "err", err)
			}
			return
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil {
			level.Warn(f.logger).Log("msg", "failed parsing timestamp", "value", rec[0], "err", err)
			continue
		}
		when := time.Unix(0, ns).UTC()
		for i := 1; i < len(rec) && i < len(headings); i++ {
			cell := strings.TrimSpace(rec[i])
			if len(cell) < 1 {
				// Skip null cells.
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				level.Warn(f.logger).Log("msg", "failed parsing sample", "series", names[i-1], "value", cell, "err", err)
				continue
			}
			raw <- input{
				kind:   kindSample,
				series: base + i - 1,
				sample: timeseries.Sample{Time: when, Value: value},
			}
		}
	}
}
