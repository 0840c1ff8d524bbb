// Package report keeps the results of play: sessions, the activities played
// in them and every judged action. A Reporter is the progress sink handed to
// activity controllers.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"boxplay/pkg/game/activity"
	gameerrors "boxplay/pkg/game/errors"
)

// ActionRecord is one judged move as it was reported
type ActionRecord struct {
	Type   activity.ActionType
	Source string
	Dest   string
	OK     bool
	At     time.Time
}

// ActivityRecord holds the results of one run of an activity
type ActivityRecord struct {
	Name     string
	Started  time.Time
	Ended    time.Time
	Actions  []ActionRecord
	Score    int
	Progress float64
	Solved   bool
	Closed   bool
}

// NumActions returns the number of judged moves
func (r *ActivityRecord) NumActions() int {
	return len(r.Actions)
}

// Precision returns the share of correct moves as a percentage
func (r *ActivityRecord) Precision() int {
	if len(r.Actions) == 0 {
		return 0
	}
	ok := 0
	for _, a := range r.Actions {
		if a.OK {
			ok++
		}
	}
	return ok * 100 / len(r.Actions)
}

// Elapsed returns the play time, up to now for open records
func (r *ActivityRecord) Elapsed(now time.Time) time.Duration {
	if r.Closed {
		return r.Ended.Sub(r.Started)
	}
	return now.Sub(r.Started)
}

// Session groups the activities played in one run of the program
type Session struct {
	ID         string
	Project    string
	Started    time.Time
	Activities []*ActivityRecord
	names      mapset.Set[string]
}

// Current returns the open record of an activity, or nil
func (s *Session) Current(name string) *ActivityRecord {
	for i := len(s.Activities) - 1; i >= 0; i-- {
		if r := s.Activities[i]; r.Name == name && !r.Closed {
			return r
		}
	}
	return nil
}

// Played reports whether an activity was ever started in the session
func (s *Session) Played(name string) bool {
	return s.names.Has(name)
}

// Summary totals a session
type Summary struct {
	Activities int
	Solved     int
	Actions    int
	Score      int
	Precision  int
}

// Summary totals every record of the session
func (s *Session) Summary() Summary {
	var sum Summary
	ok := 0
	for _, r := range s.Activities {
		sum.Activities++
		if r.Solved {
			sum.Solved++
		}
		sum.Actions += r.NumActions()
		sum.Score += r.Score
		for _, a := range r.Actions {
			if a.OK {
				ok++
			}
		}
	}
	if sum.Actions > 0 {
		sum.Precision = ok * 100 / sum.Actions
	}
	return sum
}

// Reporter records sessions in memory
type Reporter struct {
	sessions []*Session
	current  *Session
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a reporter. A nil logger disables logging.
func New(logger *zerolog.Logger) *Reporter {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Reporter{
		log: l.With().Str("component", "report").Logger(),
		now: time.Now,
	}
}

// NewSession closes the running session and opens a new one
func (r *Reporter) NewSession(project string) (*Session, error) {
	r.EndSession()
	id, err := generateULID(r.now())
	if err != nil {
		return nil, gameerrors.NewInternal(err)
	}
	s := &Session{
		ID:      id,
		Project: project,
		Started: r.now(),
		names:   mapset.New[string](),
	}
	r.sessions = append(r.sessions, s)
	r.current = s
	r.log.Info().Str("session", id).Str("project", project).Msg("session started")
	return s, nil
}

// EndSession closes every open activity of the running session
func (r *Reporter) EndSession() {
	if r.current == nil {
		return
	}
	for _, a := range r.current.Activities {
		r.close(a, false)
	}
	r.log.Info().Str("session", r.current.ID).Msg("session ended")
	r.current = nil
}

// Session returns the running session, or nil
func (r *Reporter) Session() *Session {
	return r.current
}

// Sessions returns every session recorded so far
func (r *Reporter) Sessions() []*Session {
	return r.sessions
}

// NewActivity opens a record for an activity run, closing any earlier open
// record of the same name
func (r *Reporter) NewActivity(name string) (*ActivityRecord, error) {
	if r.current == nil {
		return nil, gameerrors.NewNotFound("session")
	}
	if prev := r.current.Current(name); prev != nil {
		r.close(prev, false)
	}
	rec := &ActivityRecord{Name: name, Started: r.now()}
	r.current.Activities = append(r.current.Activities, rec)
	r.current.names.Put(name)
	return rec, nil
}

// ReportAction appends a judged move to the open record of the activity
func (r *Reporter) ReportAction(name string, a activity.Action) error {
	rec, err := r.open(name)
	if err != nil {
		return err
	}
	rec.Actions = append(rec.Actions, ActionRecord{
		Type:   a.Type,
		Source: a.Source,
		Dest:   a.Dest,
		OK:     a.OK,
		At:     r.now(),
	})
	rec.Score = a.Score
	rec.Progress = a.Progress
	return nil
}

// ReportActivityEnd closes the open record of the activity
func (r *Reporter) ReportActivityEnd(name string, ok bool) error {
	rec, err := r.open(name)
	if err != nil {
		return err
	}
	r.close(rec, ok)
	return nil
}

// Counters returns the actions, score and time counters of an activity
func (r *Reporter) Counters(name string) (actions, score, elapsed *Counter) {
	actions = NewCounter(CounterActions)
	score = NewCounter(CounterScore)
	elapsed = NewCounter(CounterTime)
	if r.current == nil {
		return
	}
	var rec *ActivityRecord
	for i := len(r.current.Activities) - 1; i >= 0 && rec == nil; i-- {
		if r.current.Activities[i].Name == name {
			rec = r.current.Activities[i]
		}
	}
	if rec == nil {
		return
	}
	actions.Set(rec.NumActions())
	score.Set(rec.Score)
	elapsed.Set(int(rec.Elapsed(r.now()).Seconds()))
	return
}

// open finds the open record of an activity; a session without one gets it
// registered on the fly
func (r *Reporter) open(name string) (*ActivityRecord, error) {
	if r.current == nil {
		return nil, gameerrors.NewNotFound("session")
	}
	if rec := r.current.Current(name); rec != nil {
		return rec, nil
	}
	return r.NewActivity(name)
}

func (r *Reporter) close(rec *ActivityRecord, solved bool) {
	if rec.Closed {
		return
	}
	rec.Closed = true
	rec.Solved = solved
	rec.Ended = r.now()
	r.log.Info().
		Str("activity", rec.Name).
		Bool("solved", solved).
		Int("actions", rec.NumActions()).
		Int("score", rec.Score).
		Int("precision", rec.Precision()).
		Msg("activity closed")
}

func generateULID(t time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
