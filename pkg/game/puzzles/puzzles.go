// Package puzzles ships the demo content playable without an external
// project file.
package puzzles

import (
	"sort"

	"boxplay/pkg/engine/content"
	"boxplay/pkg/game/activity"
	gameerrors "boxplay/pkg/game/errors"
)

// Puzzle is a named piece of content for one activity kind
type Puzzle struct {
	Name  string
	Kind  activity.Kind
	Title string
	build func() activity.Content
}

// Content builds a fresh copy of the puzzle content
func (p Puzzle) Content() activity.Content {
	return p.build()
}

// Build creates the controller for the puzzle
func (p Puzzle) Build(opts activity.Options) (activity.Controller, error) {
	if opts.Name == "" {
		opts.Name = p.Name
	}
	return activity.New(p.Kind, p.Content(), opts)
}

var catalog = []Puzzle{
	{
		Name:  "animals",
		Kind:  activity.KindMatching,
		Title: "Find the pairs of animals",
		build: func() activity.Content {
			return activity.Content{
				Primary: content.TextBag("cat", "dog", "cow", "owl", "fox", "bee"),
				Rows:    2,
				Cols:    3,
			}
		},
	},
	{
		Name:  "numbers",
		Kind:  activity.KindMatching,
		Title: "Match each number with its French name",
		build: func() activity.Content {
			return activity.Content{
				Primary:   content.TextBag("one", "two", "three", "four"),
				Secondary: content.TextBag("un", "deux", "trois", "quatre"),
				Rows:      2,
				Cols:      2,
			}
		},
	},
	{
		Name:  "proverb",
		Kind:  activity.KindOrdering,
		Title: "Put the words back in order",
		build: func() activity.Content {
			return activity.Content{Targets: words(0, "a", "stitch", "in", "time", "saves", "nine")}
		},
	},
	{
		Name:  "recipe",
		Kind:  activity.KindOrdering,
		Title: "Order the steps inside each paragraph",
		build: func() activity.Content {
			t := words(0, "crack", "whisk", "fry")
			t = append(t, words(1, "toast", "butter", "serve")...)
			return activity.Content{Targets: t}
		},
	},
	{
		Name:  "colors",
		Kind:  activity.KindCrossword,
		Title: "Fill in the colors",
		build: func() activity.Content {
			return activity.Content{Lines: []string{
				"PINK",
				"**A*",
				"**V*",
				"SKY*",
			}}
		},
	},
	{
		Name:  "fruit",
		Kind:  activity.KindWordSearch,
		Title: "Find the hidden fruit",
		build: func() activity.Content {
			return activity.Content{
				Lines: []string{
					"PEAR**",
					"*L**F*",
					"**U*I*",
					"***MG*",
					"LIME**",
				},
				Words: []string{"PEAR", "PLUM", "FIG", "LIME"},
			}
		},
	},
}

func words(paragraph int, ws ...string) []activity.Target {
	out := make([]activity.Target, len(ws))
	for i, w := range ws {
		out[i] = activity.Target{Text: w, Paragraph: paragraph}
	}
	return out
}

// All returns every built-in puzzle sorted by kind then name
func All() []Puzzle {
	out := append([]Puzzle(nil), catalog...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ForKind returns the puzzles of one activity kind
func ForKind(k activity.Kind) []Puzzle {
	var out []Puzzle
	for _, p := range All() {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Find looks a puzzle up by kind and name. An empty name picks the first
// puzzle of the kind.
func Find(k activity.Kind, name string) (Puzzle, error) {
	for _, p := range ForKind(k) {
		if name == "" || p.Name == name {
			return p, nil
		}
	}
	return Puzzle{}, gameerrors.NewNotFound(k.String() + " puzzle " + name)
}
