// Package quiz drives one trivia run at a time: it fetches a question set
// from a QuestionProvider, fixes a shuffled answer order per question, keeps
// the running score, and records a Score when the last answer is in.
//
// States move Idle -> Loading -> InProgress -> Complete. A failed load
// returns a retryable *LoadError and leaves the controller Idle with the
// settings kept for Retry.
package quiz
