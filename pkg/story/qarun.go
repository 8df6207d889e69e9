package story

import (
	"fmt"
)

// AnswerRecord captures one scored answer within a Q&A run.
type AnswerRecord struct {
	Number     int
	Question   string
	UserAnswer string
	Correct    bool
	Expected   string
}

// QARun tracks question progress and scoring for one Q&A activation.
// It is owned by a single activation and never shared across goroutines
// without external synchronization.
type QARun struct {
	questions []Question
	index     int
	score     int
	answered  int
	answers   []AnswerRecord
}

// NewQARun starts a run over the chapter's questions, capped at maxQuestions
// when maxQuestions is positive.
func NewQARun(ch *Chapter, maxQuestions int) *QARun {
	qs := ch.Questions
	if maxQuestions > 0 && len(qs) > maxQuestions {
		qs = qs[:maxQuestions]
	}
	return &QARun{questions: append([]Question(nil), qs...)}
}

// Total returns the number of questions in this run.
func (r *QARun) Total() int { return len(r.questions) }

// Current returns the question awaiting an answer, or nil when the run is
// complete.
func (r *QARun) Current() *Question {
	if r.index < len(r.questions) {
		return &r.questions[r.index]
	}
	return nil
}

// Record scores the user's answer against the current question and advances.
// It reports whether the answer was correct; it is a no-op after the last
// question.
func (r *QARun) Record(userAnswer string) bool {
	q := r.Current()
	if q == nil {
		return false
	}
	correct := q.CheckAnswer(userAnswer)
	r.answers = append(r.answers, AnswerRecord{
		Number:     q.Number,
		Question:   q.Text,
		UserAnswer: userAnswer,
		Correct:    correct,
		Expected:   q.ExpectedAnswers[0],
	})
	r.answered++
	if correct {
		r.score++
	}
	r.index++
	return correct
}

// Done reports whether every question has been answered.
func (r *QARun) Done() bool { return r.index >= len(r.questions) }

// Answers returns the recorded answers so far.
func (r *QARun) Answers() []AnswerRecord { return r.answers }

// Score returns the formatted score summary, e.g. "3 out of 4 (75%)".
func (r *QARun) Score() string {
	pct := 0.0
	if r.answered > 0 {
		pct = float64(r.score) / float64(r.answered) * 100
	}
	return fmt.Sprintf("%d out of %d (%.0f%%)", r.score, r.answered, pct)
}

// Praise returns an encouragement line matched to the score tier. Folded
// into the goodbye instruction so the wrap-up matches how the child did.
func (r *QARun) Praise() string {
	if r.answered == 0 {
		return "Great listening!"
	}
	pct := float64(r.score) / float64(r.answered) * 100
	switch {
	case pct >= 90:
		return "WOW! You are absolutely AMAZING! You got almost everything right! You're a superstar listener!"
	case pct >= 70:
		return "Great job! You remembered so many things from the story! You're such a good listener!"
	case pct >= 50:
		return "Good effort! You remembered many parts of the story. Keep listening and you'll get even better!"
	default:
		return "Nice try! Every story teaches us something new. You did your best and that's what matters!"
	}
}
