package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test fields.",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "the title", Required: true},
			{Name: "tags", Type: "[\"string\"]"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract test fields.")
	assert.Contains(t, prompt, `"title": "string" (required) // the title`)
	assert.Contains(t, prompt, `"tags": ["string"]`)
	assert.Contains(t, prompt, "some input text")
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestJobDescriptionSchema(t *testing.T) {
	schema := JobDescriptionSchema()

	fields := make(map[string]SchemaField, len(schema.Fields))
	for _, f := range schema.Fields {
		fields[f.Name] = f
	}

	for _, name := range []string{
		"title", "company", "location", "employmentType", "experienceLevel",
		"responsibilities", "requirements", "skills", "benefits", "salary",
	} {
		assert.Contains(t, fields, name)
	}

	assert.True(t, fields["title"].Required)
	assert.False(t, fields["salary"].Required)
	assert.Contains(t, fields["employmentType"].Description, "full-time")
	assert.Contains(t, fields["experienceLevel"].Description, "senior")
}
