package curriculum

import "strings"

// Topic represents a curriculum content topic.
type Topic string

const (
	TopicPointerBasics     Topic = "pointer-basics"
	TopicPointerArithmetic Topic = "pointer-arithmetic"
	TopicDynamicMemory     Topic = "dynamic-memory"
	TopicPointerPitfalls   Topic = "pointer-pitfalls"
	TopicSmartPointers     Topic = "smart-pointers"
)

// AllTopics returns all topics in display order.
func AllTopics() []Topic {
	return []Topic{
		TopicPointerBasics,
		TopicPointerArithmetic,
		TopicDynamicMemory,
		TopicPointerPitfalls,
		TopicSmartPointers,
	}
}

// TopicDisplayName returns a human-readable name for a topic.
func TopicDisplayName(t Topic) string {
	switch t {
	case TopicPointerBasics:
		return "Pointer Basics"
	case TopicPointerArithmetic:
		return "Pointer Arithmetic"
	case TopicDynamicMemory:
		return "Dynamic Memory"
	case TopicPointerPitfalls:
		return "Pointer Pitfalls"
	case TopicSmartPointers:
		return "Smart Pointers"
	default:
		return string(t)
	}
}

// Lesson is a single lesson page: ordered prose sections with read-only
// C++ samples, followed by a short quiz.
type Lesson struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Topic    Topic          `json:"topic"`
	Summary  string         `json:"summary"`
	Sections []Section      `json:"sections"`
	Quiz     []QuizQuestion `json:"quiz"`
}

// Section is one page of a lesson. Code, when present, is shown as-is;
// it is never compiled or executed.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Code    string `json:"code,omitempty"`
}

// QuizQuestion is a single quiz item. Questions with Options are
// multiple-choice (Answer indexes Options); questions without are
// short-answer (Expected holds the normalized answer text).
type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	Answer      int      `json:"answer,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Explanation string   `json:"explanation"`
}

// MultipleChoice reports whether the question is answered by picking an
// option rather than typing.
func (q QuizQuestion) MultipleChoice() bool {
	return len(q.Options) > 0
}

// CheckAnswer checks a typed short answer against the expected text.
// Comparison is case-insensitive and ignores surrounding whitespace.
func (q QuizQuestion) CheckAnswer(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(q.Expected))
}
