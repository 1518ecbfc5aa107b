// Package vocab holds the core vocabulary types shared across the app.
package vocab

import "strings"

// Word is a single character/pronunciation pair subject to quizzing.
// IDs are opaque tokens; a word keeps its id across lesson edits as long
// as its character+pinyin pair is unchanged, so mistake history survives.
type Word struct {
	ID        string `json:"id"`
	Character string `json:"character"`
	Pinyin    string `json:"pinyin"`
}

// Lesson is a named, ordered collection of words.
type Lesson struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Words      []Word `json:"words"`
	Predefined bool   `json:"isPredefined,omitempty"`
	Level      string `json:"level,omitempty"`
}

// TestResult records one answered word within a session. It is never
// persisted directly; completed batches are folded into the mistake
// ledger and the score history.
type TestResult struct {
	Word      Word
	UserInput string
	Correct   bool
}

// HistoricalScore summarizes one completed test.
type HistoricalScore struct {
	Date        string   `json:"date"`
	Score       int      `json:"score"`
	Total       int      `json:"total"`
	LessonNames []string `json:"lessonNames"`
}

// NormalizePinyin lowercases, collapses internal whitespace, and trims.
// Answer checking compares normalized forms only; there is no fuzzy match.
func NormalizePinyin(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// PinyinEqual reports whether a learner's input matches the canonical
// pinyin after normalization.
func PinyinEqual(input, canonical string) bool {
	return NormalizePinyin(input) == NormalizePinyin(canonical)
}
