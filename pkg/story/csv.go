package story

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV builds a story from a question sheet. Expected columns:
// ,Chapter Id,Question No,Question Text,Expected Answers
// where "Chapter Id" uses the "1: Chapter Name" form and the first two rows
// are a blank row and the header.
func LoadCSV(path, storyID, storyName string) (*Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("story: open %s: %w", path, err)
	}
	defer f.Close()
	return parseCSV(f, storyID, storyName)
}

func parseCSV(r io.Reader, storyID, storyName string) (*Story, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	s := NewStory(storyID, storyName)

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("story: parse csv: %w", err)
		}
		row++
		if row <= 2 || len(record) < 5 {
			continue
		}

		chapterField := strings.TrimSpace(record[1])
		questionText := strings.TrimSpace(record[3])
		expected := strings.TrimSpace(record[4])
		if chapterField == "" || questionText == "" {
			continue
		}

		chapterID, chapterName := chapterField, chapterField
		if i := strings.Index(chapterField, ":"); i >= 0 {
			chapterID = strings.TrimSpace(chapterField[:i])
			chapterName = strings.TrimSpace(chapterField[i+1:])
		}

		ch := s.Chapter(chapterID)
		if ch == nil {
			ch = &Chapter{ID: chapterID, Name: chapterName}
			s.addChapter(ch)
		}

		// Sheets sometimes carry trailing row numbers in the question text.
		questionText = strings.TrimRight(questionText, "0123456789 ")

		number, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			number = len(ch.Questions) + 1
		}

		ch.Questions = append(ch.Questions, Question{
			Number:          number,
			Text:            questionText,
			ExpectedAnswers: splitAnswers(expected),
		})
	}

	return s, nil
}

// splitAnswers turns a sheet cell like "1: A medal, chocolate medal" into
// individual answers, dropping any leading list numbering.
func splitAnswers(cell string) []string {
	var answers []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if i := strings.Index(part, ":"); i >= 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(part[:i])); err == nil {
				part = strings.TrimSpace(part[i+1:])
			}
		}
		if part != "" {
			answers = append(answers, part)
		}
	}
	if len(answers) == 0 {
		return []string{cell}
	}
	return answers
}
