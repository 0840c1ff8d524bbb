package activity

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"boxplay/pkg/engine/boxes"
)

// Target is one orderable fragment of text. Num is the position it belongs
// at, Pos the position it is shown at. Paragraph travels with the position;
// Group is the paragraph run the target was built in and never changes.
type Target struct {
	Text      string
	Num       int
	Pos       int
	Paragraph int
	Group     int
}

// IsSolved returns true if the target sits at its own position
func (t *Target) IsSolved() bool {
	return t.Pos == t.Num
}

// Ordering is the text reordering game. The first click selects a target,
// a click on a different target swaps the two.
type Ordering struct {
	base
	targets []*Target
	groups  [][]*Target
	members mapset.Set[*Target]
	current *Target
}

// NewOrdering builds the game from targets in their correct order. Only Text
// and Paragraph are read; positions and groups are assigned here.
func NewOrdering(specs []Target, opts Options) *Ordering {
	o := &Ordering{
		base:    newBase(KindOrdering, opts),
		members: mapset.New[*Target](),
	}
	var group []*Target
	for i, s := range specs {
		t := &Target{Text: s.Text, Num: i, Pos: i, Paragraph: s.Paragraph}
		if i > 0 && specs[i-1].Paragraph != s.Paragraph {
			o.groups = append(o.groups, group)
			group = nil
		}
		t.Group = len(o.groups)
		group = append(group, t)
		o.targets = append(o.targets, t)
		o.members.Put(t)
	}
	if len(group) > 0 {
		o.groups = append(o.groups, group)
	}
	return o
}

// Start scrambles the targets and starts play. Unless targets may move among
// paragraphs, each paragraph run is shuffled on its own.
func (o *Ordering) Start(rng *rand.Rand) {
	o.current = nil
	if o.cfg.AmongParagraphs {
		o.shuffle(rng, o.targets)
	} else {
		for _, g := range o.groups {
			o.shuffle(rng, g)
		}
	}
	o.log.Info().Int("targets", len(o.targets)).Int("groups", len(o.groups)).Msg("ordering started")
	o.begin()
}

func (o *Ordering) shuffle(rng *rand.Rand, ts []*Target) {
	boxes.Shuffle(len(ts), o.cfg.Shuffles, o.cfg.ShuffleRetries, rng, func(i, j int) {
		swapTargets(ts[i], ts[j])
	})
}

func swapTargets(a, b *Target) {
	a.Pos, b.Pos = b.Pos, a.Pos
	a.Paragraph, b.Paragraph = b.Paragraph, a.Paragraph
}

// Current returns the selected target, or nil
func (o *Ordering) Current() *Target {
	return o.current
}

// Groups returns the number of paragraph runs
func (o *Ordering) Groups() int {
	return len(o.groups)
}

// Targets returns the targets in display order
func (o *Ordering) Targets() []*Target {
	ts := slices.Clone(o.targets)
	slices.SortFunc(ts, func(a, b *Target) int { return a.Pos - b.Pos })
	return ts
}

// TargetAt returns the target shown at position pos, or nil
func (o *Ordering) TargetAt(pos int) *Target {
	for _, t := range o.targets {
		if t.Pos == pos {
			return t
		}
	}
	return nil
}

// CountSolvedTargets counts the targets at their own position
func (o *Ordering) CountSolvedTargets() int {
	n := 0
	for _, t := range o.targets {
		if t.IsSolved() {
			n++
		}
	}
	return n
}

// Progress returns the fraction of targets in place
func (o *Ordering) Progress() float64 {
	if len(o.targets) == 0 {
		return 0
	}
	return float64(o.CountSolvedTargets()) / float64(len(o.targets))
}

// Hint returns the first target, in solution order, that is out of place
func (o *Ordering) Hint() *Target {
	for _, t := range o.targets {
		if !t.IsSolved() {
			return t
		}
	}
	return nil
}

// TargetClick handles a click on a target
func (o *Ordering) TargetClick(t *Target) {
	if !o.playing || t == nil || !o.members.Has(t) || t == o.current {
		return
	}
	if o.current == nil || (!o.cfg.AmongParagraphs && o.current.Group != t.Group) {
		o.current = t
		o.playEvent(EventClick)
		return
	}

	swapTargets(t, o.current)
	o.current = nil

	solved := o.CountSolvedTargets()
	ok := t.IsSolved()
	o.report(Action{
		Type:     ActionPlace,
		Source:   t.Text,
		Dest:     strconv.Itoa(t.Pos),
		OK:       ok,
		Progress: o.Progress(),
		Score:    solved,
	})
	if ok && solved == len(o.targets) {
		o.finish(true)
		return
	}
	if ok {
		o.playEvent(EventActionOk)
	} else {
		o.playEvent(EventActionError)
	}
}
