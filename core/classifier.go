package core

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/dlclark/regexp2"
)

// DefaultPunctuation splits "word" runs: letters, digits and everything not
// listed here group together, runs of these characters form their own unit.
const DefaultPunctuation = "/\\()\"':,.;<>~!@#$%^&*|+=[]{}`?-"

// RunKind tells which rule produced a Run.
type RunKind int

const (
	RunBlank       RunKind = iota // whole line is tabs/spaces or empty
	RunWord                       // neither whitespace nor punctuation
	RunPunctuation                // punctuation characters only
)

func (k RunKind) String() string {
	switch k {
	case RunBlank:
		return "blank"
	case RunWord:
		return "word"
	case RunPunctuation:
		return "punctuation"
	default:
		return fmt.Sprintf("RunKind(%d)", int(k))
	}
}

// Run is a classified span of a line, in characters.
type Run struct {
	Start  int
	Length int
	Kind   RunKind
}

// End is the offset of the run's last character. An empty line yields -1.
func (r Run) End() int {
	return r.Start + r.Length - 1
}

// Classifier splits a line into word runs for a given punctuation set.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	punctuation string
	re          *regexp2.Regexp
}

// NewClassifier compiles a classifier. An empty punctuation set makes every
// whitespace-delimited run a single unit (vi "WORD").
func NewClassifier(punctuation string) (*Classifier, error) {
	class, err := escapeClass(punctuation)
	if err != nil {
		return nil, err
	}

	segments := []string{`(?<blank>^[ \t]*$)`, `(?<word>[^\s` + class + `]+)`}
	if class != "" {
		segments = append(segments, `(?<punct>[`+class+`]+)`)
	}

	re, err := regexp2.Compile(strings.Join(segments, "|"), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("NewClassifier: %w: %v", ErrInvalidPunctuation, err)
	}

	return &Classifier{punctuation: punctuation, re: re}, nil
}

// MustClassifier is like NewClassifier but panics on error.
func MustClassifier(punctuation string) *Classifier {
	c, err := NewClassifier(punctuation)
	if err != nil {
		panic(err)
	}
	return c
}

// escapeClass prepares the punctuation set for use inside a character class.
func escapeClass(punctuation string) (string, error) {
	var sb strings.Builder
	seen := make(map[rune]bool)
	for _, r := range punctuation {
		if unicode.IsSpace(r) {
			return "", fmt.Errorf("%w: whitespace %q is always a separator", ErrInvalidPunctuation, r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func (c *Classifier) Punctuation() string {
	return c.punctuation
}

// Runs scans text left to right. Offsets are rune offsets.
func (c *Classifier) Runs(text string) []Run {
	var runs []Run

	// No match timeout is configured, so the matcher cannot return an error.
	m, _ := c.re.FindStringMatch(text)
	for m != nil {
		runs = append(runs, Run{Start: m.Index, Length: m.Length, Kind: runKind(m)})
		m, _ = c.re.FindNextMatch(m)
	}

	return runs
}

func runKind(m *regexp2.Match) RunKind {
	if g := m.GroupByName("blank"); g != nil && len(g.Captures) > 0 {
		return RunBlank
	}
	if g := m.GroupByName("punct"); g != nil && len(g.Captures) > 0 {
		return RunPunctuation
	}
	return RunWord
}

// Starts returns the start offset of every run.
func (c *Classifier) Starts(text string) []int {
	runs := c.Runs(text)
	starts := make([]int, len(runs))
	for i, r := range runs {
		starts[i] = r.Start
	}
	return starts
}

// Ends returns the offset of the last character of every run.
func (c *Classifier) Ends(text string) []int {
	runs := c.Runs(text)
	ends := make([]int, len(runs))
	for i, r := range runs {
		ends[i] = r.End()
	}
	return ends
}

// RunAt returns the word or punctuation run covering character.
func (c *Classifier) RunAt(text string, character int) (Run, bool) {
	for _, r := range c.Runs(text) {
		if r.Kind == RunBlank {
			continue
		}
		if character >= r.Start && character <= r.End() {
			return r, true
		}
	}
	return Run{}, false
}

// Classifiers holds the two classifiers motions need: Word splits on the
// punctuation set, BigWord only on whitespace.
type Classifiers struct {
	Word    *Classifier
	BigWord *Classifier
}

func NewClassifiers(punctuation string) (*Classifiers, error) {
	word, err := NewClassifier(punctuation)
	if err != nil {
		return nil, err
	}
	bigWord, err := NewClassifier("")
	if err != nil {
		return nil, err
	}
	return &Classifiers{Word: word, BigWord: bigWord}, nil
}

var (
	defaultClassifiersOnce sync.Once
	defaultClassifiers     *Classifiers
)

// DefaultClassifiers returns the shared classifiers for DefaultPunctuation.
func DefaultClassifiers() *Classifiers {
	defaultClassifiersOnce.Do(func() {
		c, err := NewClassifiers(DefaultPunctuation)
		if err != nil {
			panic(err)
		}
		defaultClassifiers = c
	})
	return defaultClassifiers
}
