// Package parsing converts raw job-description text into a structured
// ParsedDescription using LLM extraction, recovering from the malformed
// JSON such providers intermittently return.
package parsing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexus/pitch-migrator/internal/llm"
	"github.com/nexus/pitch-migrator/internal/schemas"
	"github.com/nexus/pitch-migrator/internal/types"
)

// Parser binds an extraction client so the pipeline can parse descriptions
// through a single-method interface.
type Parser struct {
	Client llm.Client
}

// Parse implements the pipeline's DescriptionParser contract.
func (p *Parser) Parse(ctx context.Context, rawText string) (*types.ParsedDescription, error) {
	return ParseDescription(ctx, p.Client, rawText)
}

// ParseDescription sends the raw text and the target schema to the
// extraction provider and decodes the response. Mangled responses get one
// bounded repair attempt per normalization pass; if every pass fails the
// record is skipped by the caller.
func ParseDescription(ctx context.Context, client llm.Client, rawText string) (*types.ParsedDescription, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobDescriptionSchema(), rawText)

	responseText, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from extraction provider",
			Cause:   err,
		}
	}

	return decodeResponse(responseText)
}

// decodeResponse repairs, decodes, and validates one raw provider response.
func decodeResponse(responseText string) (*types.ParsedDescription, error) {
	jsonText, ok := NormalizeResponse(responseText, DefaultPasses())
	if !ok {
		return nil, &ParseError{
			Message: "provider response is not valid JSON after all normalization passes",
		}
	}

	if err := schemas.ValidateJSONString(descriptionSchema, jsonText); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return nil, &ValidationError{
				Message: "provider response does not match the description schema",
				Cause:   ve,
			}
		}
		return nil, &ParseError{
			Message: "schema validation could not run",
			Cause:   err,
		}
	}

	var desc types.ParsedDescription
	if err := json.Unmarshal([]byte(jsonText), &desc); err != nil {
		return nil, &ParseError{
			Message: "failed to decode normalized JSON",
			Cause:   err,
		}
	}

	return &desc, nil
}
