package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content/lessons.json
var lessonsJSON []byte

// catalog holds the loaded lesson set with precomputed indices.
type catalog struct {
	lessons []Lesson
	byID    map[string]*Lesson
	byTopic map[Topic][]Lesson
}

// c is the package-level catalog singleton, set by init.
var c *catalog

func init() {
	loaded, err := load(lessonsJSON)
	if err != nil {
		// The content is compiled in; a bad catalog is a build defect.
		panic(fmt.Sprintf("curriculum: %v", err))
	}
	c = loaded
}

// lessonFile is the top-level shape of the embedded content file.
type lessonFile struct {
	Lessons []Lesson `json:"lessons"`
}

// load parses, schema-checks and structurally validates lesson content.
func load(raw []byte) (*catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var file lessonFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse lesson content: %w", err)
	}

	if err := validateLessons(file.Lessons); err != nil {
		return nil, err
	}

	cat := &catalog{
		lessons: file.Lessons,
		byID:    make(map[string]*Lesson, len(file.Lessons)),
		byTopic: make(map[Topic][]Lesson),
	}
	for i := range cat.lessons {
		l := &cat.lessons[i]
		cat.byID[l.ID] = l
		cat.byTopic[l.Topic] = append(cat.byTopic[l.Topic], *l)
	}
	return cat, nil
}

// validateSchema validates raw content against the lesson file schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal([]byte(lessonFileSchema), &schemaDoc); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const schemaURL = "schema://lessons.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("lesson content schema validation failed: %w", err)
	}
	return nil
}

// AllLessons returns all lessons in content order.
func AllLessons() []Lesson {
	return slices.Clone(c.lessons)
}

// GetLesson returns a lesson by ID, or an error if not found.
func GetLesson(id string) (Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// ByTopic returns all lessons for a topic, in content order.
func ByTopic(t Topic) []Lesson {
	return slices.Clone(c.byTopic[t])
}

// Count returns the number of lessons in the catalog.
func Count() int {
	return len(c.lessons)
}
