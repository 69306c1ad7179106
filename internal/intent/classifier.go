package intent

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/FACorreiaa/finchat/internal/nlp"
)

// minScore is the classification threshold: anything scoring below it is
// reported as unknown.
const minScore = 2

const (
	keywordWeight = 2
	synonymWeight = 1
	patternWeight = 2
)

// Result is an ephemeral classification outcome.
type Result struct {
	Name  Name
	Score int
}

// termHit ties a matcher pattern back to the rule and weight it scores
// for. The same normalized term may appear in several rules, so each
// pattern carries a group of hits (same grouping the duplicate-pattern
// handling in a multi-rule matcher needs).
type termHit struct {
	rule   int
	weight int
}

// Classifier scores normalized utterances against the rule table. All
// keywords and synonyms are folded into a single Aho-Corasick matcher at
// build time, so one pass over the text scores every term; regex patterns
// are evaluated per rule afterwards. Immutable after construction and safe
// for concurrent use.
type Classifier struct {
	rules   []Rule
	matcher *ahocorasick.Matcher
	hits    [][]termHit
}

// NewClassifier builds the term matcher from the rule table. Keywords and
// synonyms are normalized here so the table may be written with
// diacritics.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{rules: rules}

	termIndex := make(map[string]int)
	var terms []string

	add := func(term string, hit termHit) {
		normalized := nlp.Normalize(strings.TrimSpace(term))
		if normalized == "" {
			return
		}
		if idx, ok := termIndex[normalized]; ok {
			c.hits[idx] = append(c.hits[idx], hit)
			return
		}
		termIndex[normalized] = len(terms)
		terms = append(terms, normalized)
		c.hits = append(c.hits, []termHit{hit})
	}

	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			add(kw, termHit{rule: i, weight: keywordWeight})
		}
		for _, syn := range rule.Synonyms {
			add(syn, termHit{rule: i, weight: synonymWeight})
		}
	}

	if len(terms) > 0 {
		patterns := make([][]byte, len(terms))
		for i, t := range terms {
			patterns[i] = []byte(t)
		}
		c.matcher = ahocorasick.NewMatcher(patterns)
	}
	return c
}

// Detect scores the utterance against every rule and returns the best
// match, or unknown when the top score stays below the threshold. Each
// keyword or synonym counts once regardless of how often it occurs; ties
// go to the earlier rule.
func (c *Classifier) Detect(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Name: Unknown, Score: 0}
	}
	normalized := nlp.Normalize(trimmed)

	scores := make([]int, len(c.rules))
	if c.matcher != nil {
		// Match mutates shared trie state; MatchThreadSafe returns the
		// same hits and keeps Detect callable from concurrent sessions.
		for _, idx := range c.matcher.MatchThreadSafe([]byte(normalized)) {
			for _, hit := range c.hits[idx] {
				scores[hit.rule] += hit.weight
			}
		}
	}
	for i, rule := range c.rules {
		for _, p := range rule.Patterns {
			if p.MatchString(normalized) {
				scores[i] += patternWeight
			}
		}
	}

	best := -1
	maxScore := 0
	for i, score := range scores {
		if score > maxScore {
			best = i
			maxScore = score
		}
	}

	if best < 0 || maxScore < minScore {
		return Result{Name: Unknown, Score: maxScore}
	}
	return Result{Name: c.rules[best].Name, Score: maxScore}
}
