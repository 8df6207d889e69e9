// Package story holds the story/chapter/question dataset consumed by the
// Q&A and intro modes, and the fuzzy answer matcher used for scoring.
package story

import (
	"strings"
)

// Question is a single question for a chapter with its acceptable answers.
type Question struct {
	Number          int
	Text            string
	ExpectedAnswers []string
}

// Chapter groups the questions for one part of a story.
type Chapter struct {
	ID        string
	Name      string
	Summary   string
	Questions []Question
}

// Story is a complete story with its ordered chapters.
type Story struct {
	ID       string
	Name     string
	order    []string
	chapters map[string]*Chapter
}

// NewStory creates a story from chapters, preserving their order.
func NewStory(id, name string, chapters ...*Chapter) *Story {
	s := &Story{ID: id, Name: name, chapters: make(map[string]*Chapter)}
	for _, ch := range chapters {
		s.addChapter(ch)
	}
	return s
}

func (s *Story) addChapter(ch *Chapter) {
	if _, ok := s.chapters[ch.ID]; !ok {
		s.order = append(s.order, ch.ID)
	}
	s.chapters[ch.ID] = ch
}

// Chapter returns the chapter with the given id, or nil.
func (s *Story) Chapter(id string) *Chapter {
	return s.chapters[id]
}

// NextChapterID returns the id of the chapter after current, or "" if
// current is the last chapter or unknown.
func (s *Story) NextChapterID(current string) string {
	for i, id := range s.order {
		if id == current && i+1 < len(s.order) {
			return s.order[i+1]
		}
	}
	return ""
}

// IsLastChapter reports whether id is the story's final chapter.
func (s *Story) IsLastChapter(id string) bool {
	if len(s.order) == 0 {
		return true
	}
	return s.order[len(s.order)-1] == id
}

// Chapters returns the chapter ids in story order.
func (s *Story) Chapters() []string {
	return append([]string(nil), s.order...)
}

// CheckAnswer reports whether the user's answer matches any of the expected
// answers. Matching is case-insensitive and forgiving: articles are
// stripped, containment counts in either direction, and any expected word
// longer than three characters appearing in the answer counts.
func (q *Question) CheckAnswer(userAnswer string) bool {
	userClean := normalize(userAnswer)
	userLower := strings.ToLower(strings.TrimSpace(userAnswer))

	for _, expected := range q.ExpectedAnswers {
		expectedLower := strings.ToLower(strings.TrimSpace(expected))
		expectedClean := normalize(expected)

		if expectedLower == userLower || expectedClean == userClean {
			return true
		}
		if expectedClean != "" && userClean != "" &&
			(strings.Contains(userClean, expectedClean) || strings.Contains(expectedClean, userClean)) {
			return true
		}
		for _, word := range strings.Fields(expectedClean) {
			if len(word) > 3 && strings.Contains(userClean, word) {
				return true
			}
		}
	}
	return false
}

// normalize lowercases, trims, and strips leading articles from each word
// boundary so "the pumpkin" and "pumpkin" compare equal.
func normalize(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	for _, article := range []string{"the ", "a ", "an "} {
		out = strings.ReplaceAll(out, article, "")
	}
	return out
}
