package sentiment

import "strings"

// Sentiment is the classification label attached to a review.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known labels.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Lexicon is the keyword table for one locale. Stems are matched by
// case-insensitive substring containment, so "хорош" matches "хороший"
// and "хорошо". NegatedPhrases win over everything else: they catch
// negations ("не нравится") that would otherwise read as positive.
type Lexicon struct {
	PositiveStems  []string
	NegativeStems  []string
	NegatedPhrases []string
}

// Russian is the shipped locale table.
var Russian = Lexicon{
	PositiveStems: []string{
		"хорош", "хорошо", "отличн", "прекрасн", "люблю",
		"нравится", "супер", "класс", "восхитительн", "лучш",
		"замечательн", "превосходн", "удобн", "рекомендую", "доволен",
		"великолепн", "безупречн", "идеальн", "прекрасно", "отлично",
	},
	NegativeStems: []string{
		"плох", "плохо", "ужасн", "ненавиж", "отвратительн",
		"кошмар", "разочарован", "неудобн", "худш", "недостаток",
		"проблем", "недостат", "недоволен", "некачествен", "ужасно",
		"недоволь", "отвратно", "отвратительно", "мерзост", "неприятн", "не нравится",
	},
	NegatedPhrases: []string{
		"не нравится", "не люблю", "не хочу",
	},
}

// Classify maps text to a sentiment label using the lexicon. Blank text is
// Neutral. Priority order: negated phrase, then positive stem, then negative
// stem. The function is pure and safe for concurrent use.
func (l Lexicon) Classify(text string) Sentiment {
	if strings.TrimSpace(text) == "" {
		return Neutral
	}

	lower := strings.ToLower(text)

	for _, phrase := range l.NegatedPhrases {
		if strings.Contains(lower, phrase) {
			return Negative
		}
	}
	for _, stem := range l.PositiveStems {
		if strings.Contains(lower, stem) {
			return Positive
		}
	}
	for _, stem := range l.NegativeStems {
		if strings.Contains(lower, stem) {
			return Negative
		}
	}
	return Neutral
}

// Classify classifies text against the default (Russian) lexicon.
func Classify(text string) Sentiment {
	return Russian.Classify(text)
}
