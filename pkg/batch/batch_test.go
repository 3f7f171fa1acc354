package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/japaniel/tentoku/pkg/model"
)

type stubTokenizer struct{}

func (stubTokenizer) Tokenize(text string) []model.Token {
	return []model.Token{{Text: text, Start: 0, End: len([]rune(text))}}
}

func TestTokenizeAllPreservesOrder(t *testing.T) {
	texts := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		texts = append(texts, fmt.Sprintf("text-%02d", i))
	}

	driver := NewDriver(4, func() Tokenizer { return stubTokenizer{} })
	results := driver.TokenizeAll(context.Background(), texts)

	if len(results) != len(texts) {
		t.Fatalf("expected %d results, got %d", len(texts), len(results))
	}
	for i, text := range texts {
		if len(results[i]) != 1 || results[i][0].Text != text {
			t.Fatalf("result %d: expected token for %q, got %+v", i, text, results[i])
		}
	}
}

func TestTokenizeAllEmptyInput(t *testing.T) {
	driver := NewDriver(2, func() Tokenizer { return stubTokenizer{} })
	results := driver.TokenizeAll(context.Background(), nil)
	if results != nil {
		t.Fatalf("expected nil results for empty input, got %+v", results)
	}
}

func TestTokenizeAllSingleWorker(t *testing.T) {
	driver := NewDriver(1, func() Tokenizer { return stubTokenizer{} })
	results := driver.TokenizeAll(context.Background(), []string{"a", "b", "c"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i][0].Text != want {
			t.Fatalf("result %d: expected %q, got %q", i, want, results[i][0].Text)
		}
	}
}
