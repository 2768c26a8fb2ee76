package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// tasksSchema describes the tasks file layout: a flat array of task records.
const tasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "tasca tasks file",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "description", "completed", "createdAt", "priority", "dueDate", "category"],
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "completed": {"type": "boolean"},
      "createdAt": {"type": "string", "format": "date-time"},
      "priority": {"enum": ["low", "medium", "high"]},
      "dueDate": {"type": ["string", "null"], "format": "date"},
      "category": {"enum": ["work", "personal", "general", "shopping", "other"]}
    },
    "additionalProperties": false
  }
}`

// ValidationError pins a schema violation to a location in the tasks file.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult collects the outcome of a schema check.
type ValidationResult struct {
	Valid  bool
	Errors []*ValidationError
}

// Validate checks the tasks file at path against the embedded schema and
// reports every violation with its location. Loading does not require a
// valid file; this is the strict check behind 'tasca doctor'. The returned
// error covers I/O failures only.
func Validate(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	result := &ValidationResult{Valid: true}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("not valid JSON: %w", err)})
		return result, nil
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		collectSchemaErrors(result, err)
	}
	return result, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(tasksSchema)); err != nil {
		return nil, fmt.Errorf("failed to register schema: %w", err)
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

// collectSchemaErrors flattens the nested cause tree into per-location
// entries, keeping only the leaves.
func collectSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, &ValidationError{Err: err})
		return
	}

	if len(ve.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath rewrites a JSON pointer like /0/title into the friendlier
// [0].title form.
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
