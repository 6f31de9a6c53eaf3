package quiz

import (
	"testing"

	"github.com/skillswap/skillswap/internal/app/skills"
)

func TestBank_EveryCategoryHasFullBank(t *testing.T) {
	for _, name := range skills.Names() {
		bank := Bank(name)
		if len(bank) != BankSize {
			t.Errorf("category %q: expected %d questions, got %d", name, BankSize, len(bank))
		}
	}
}

func TestBank_QuestionsAreWellFormed(t *testing.T) {
	for _, name := range skills.Names() {
		for i, q := range Bank(name) {
			if q.Text == "" {
				t.Errorf("%s question %d: empty text", name, i)
			}
			for j, opt := range q.Options {
				if opt == "" {
					t.Errorf("%s question %d: empty option %d", name, i, j)
				}
			}
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				t.Errorf("%s question %d: answer index %d out of range", name, i, q.AnswerIndex)
			}
		}
	}
}

func TestBank_UnknownCategory(t *testing.T) {
	if got := Bank("Knitting"); got != nil {
		t.Errorf("expected nil bank for unknown category, got %d questions", len(got))
	}
}

func TestBank_PassingScoreBelowQuizSize(t *testing.T) {
	if PassingScore > QuestionsPerQuiz {
		t.Fatalf("passing score %d exceeds quiz size %d", PassingScore, QuestionsPerQuiz)
	}
	if QuestionsPerQuiz > BankSize {
		t.Fatalf("quiz size %d exceeds bank size %d", QuestionsPerQuiz, BankSize)
	}
}
