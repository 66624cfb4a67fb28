package curriculum

// lessonFileSchema is the JSON Schema the embedded lesson content must
// satisfy before structural validation runs. Keeping the shape check in a
// schema makes content errors readable (path + constraint) instead of
// surfacing as zero values deep in the UI.
const lessonFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["lessons"],
  "properties": {
    "lessons": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title", "topic", "summary", "sections", "quiz"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "topic": {
            "type": "string",
            "enum": [
              "pointer-basics",
              "pointer-arithmetic",
              "dynamic-memory",
              "pointer-pitfalls",
              "smart-pointers"
            ]
          },
          "summary": {"type": "string", "minLength": 1},
          "sections": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["heading", "body"],
              "properties": {
                "heading": {"type": "string", "minLength": 1},
                "body": {"type": "string", "minLength": 1},
                "code": {"type": "string"}
              }
            }
          },
          "quiz": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["prompt", "explanation"],
              "properties": {
                "prompt": {"type": "string", "minLength": 1},
                "options": {
                  "type": "array",
                  "items": {"type": "string", "minLength": 1},
                  "minItems": 2,
                  "maxItems": 4
                },
                "answer": {"type": "integer", "minimum": 0},
                "expected": {"type": "string"},
                "explanation": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`
