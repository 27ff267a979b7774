package parsing

// descriptionSchema is the JSON Schema a decoded provider response must
// satisfy before it is accepted as a ParsedDescription. Only title is
// required; enum fields reject values outside the normalized sets.
const descriptionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "company": {"type": "string"},
    "location": {"type": "string"},
    "employmentType": {
      "type": "string",
      "enum": ["full-time", "part-time", "contract", "internship", "temporary"]
    },
    "experienceLevel": {
      "type": "string",
      "enum": ["entry", "mid", "senior", "lead", "executive"]
    },
    "responsibilities": {"type": "array", "items": {"type": "string"}},
    "requirements": {"type": "array", "items": {"type": "string"}},
    "skills": {"type": "array", "items": {"type": "string"}},
    "benefits": {"type": "array", "items": {"type": "string"}},
    "salary": {
      "type": "object",
      "required": ["min", "max"],
      "properties": {
        "min": {"type": "number"},
        "max": {"type": "number"},
        "currency": {"type": "string"},
        "period": {"type": "string"}
      }
    }
  }
}`
