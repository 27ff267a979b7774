// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobDescription")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "{...}"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Omit optional fields that are not present in the text instead of guessing.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobDescriptionSchema returns the extraction schema for raw job-description
// text. Field names mirror the ParsedDescription JSON shape the pipeline
// assembles into the enriched document.
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobDescription",
		Description: `You are an expert job posting parser. Your task is to extract structured
fields from a raw job-description text. Preserve the original wording of list
items; normalize only the enum fields.
EXCLUDE: application form fields, EEO statements, legal disclaimers.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Job title",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Hiring company name",
				Required:    false,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Primary work location, including remote",
				Required:    false,
			},
			{
				Name:        "employmentType",
				Type:        "\"string\"",
				Description: "One of: full-time, part-time, contract, internship, temporary",
				Required:    false,
			},
			{
				Name:        "experienceLevel",
				Type:        "\"string\"",
				Description: "One of: entry, mid, senior, lead, executive",
				Required:    false,
			},
			{
				Name:        "responsibilities",
				Type:        "[\"string\"]",
				Description: "Job duties, day-to-day work - copy each responsibility verbatim",
				Required:    false,
			},
			{
				Name:        "requirements",
				Type:        "[\"string\"]",
				Description: "Required qualifications - copy each requirement verbatim",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Named technologies and skills, most important first",
				Required:    false,
			},
			{
				Name:        "benefits",
				Type:        "[\"string\"]",
				Description: "Offered benefits and perks",
				Required:    false,
			},
			{
				Name:        "salary",
				Type:        "{\"min\": number, \"max\": number, \"currency\": \"string\", \"period\": \"string\"}",
				Description: "Compensation range if stated",
				Required:    false,
			},
		},
	}
}
