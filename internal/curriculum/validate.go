package curriculum

import (
	"fmt"
	"strings"
)

// validateLessons performs structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	idSet := make(map[string]bool, len(lessons))
	topicSet := make(map[Topic]bool)

	for _, l := range lessons {
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
		topicSet[l.Topic] = true

		for qi, q := range l.Quiz {
			prefix := fmt.Sprintf("lesson %q quiz %d", l.ID, qi)
			switch {
			case q.MultipleChoice():
				if q.Answer < 0 || q.Answer >= len(q.Options) {
					errs = append(errs, fmt.Sprintf("%s: answer index %d out of range for %d options", prefix, q.Answer, len(q.Options)))
				}
				if q.Expected != "" {
					errs = append(errs, fmt.Sprintf("%s: has both options and expected text", prefix))
				}
			default:
				if strings.TrimSpace(q.Expected) == "" {
					errs = append(errs, fmt.Sprintf("%s: short-answer question has no expected text", prefix))
				}
			}
		}
	}

	// Every declared topic carries at least one lesson.
	for _, t := range AllTopics() {
		if !topicSet[t] {
			errs = append(errs, fmt.Sprintf("topic %q has no lessons", t))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("lesson catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
