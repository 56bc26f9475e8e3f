package sentiment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Sentiment
	}{
		{"positive product", "Отличный продукт!", Positive},
		{"positive stem inside word", "Хороший товар", Positive},
		{"negated phrase beats positive stem", "Мне очень не нравится", Negative},
		{"negated phrase not-love", "я не люблю этот сервис", Negative},
		{"plain negative", "Ужасное качество", Negative},
		{"neutral text", "Это обычный продукт", Neutral},
		{"empty", "", Neutral},
		{"whitespace only", "   ", Neutral},
		{"mixed polarity resolves positive", "хороший, но есть проблемы", Positive},
		{"uppercase input", "ПРЕКРАСНО", Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestSentimentValid(t *testing.T) {
	assert.True(t, Positive.Valid())
	assert.True(t, Negative.Valid())
	assert.True(t, Neutral.Valid())
	assert.False(t, Sentiment("angry").Valid())
	assert.False(t, Sentiment("").Valid())
}

func TestClassifyConcurrent(t *testing.T) {
	const goroutines = 50
	text := "Мне очень не нравится"

	var wg sync.WaitGroup
	results := make([]Sentiment, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Classify(text)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, Negative, got)
	}
}
