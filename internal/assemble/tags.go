// Package assemble builds the final enriched document from the outputs of
// the earlier pipeline stages. Everything here is pure: no I/O, no failure
// paths.
package assemble

import (
	"strings"

	"github.com/nexus/pitch-migrator/internal/types"
)

// maxSkillTags caps how many extracted skills contribute to the tag set.
const maxSkillTags = 3

// SynthesizeTags derives the document tag set from the source record and
// the parsed description. Order: company, employment type, experience
// level, up to three skills, location. Empty values contribute nothing and
// duplicates keep their first position.
func SynthesizeTags(record types.JobRecord, desc types.ParsedDescription) []string {
	// The source record is authoritative for company and location, matching
	// the override rule applied during assembly.
	company := record.Company
	if company == "" {
		company = desc.Company
	}
	location := record.Location
	if location == "" {
		location = desc.Location
	}

	candidates := []string{
		company,
		string(desc.EmploymentType),
		string(desc.ExperienceLevel),
	}
	for i, skill := range desc.Skills {
		if i >= maxSkillTags {
			break
		}
		candidates = append(candidates, skill)
	}
	candidates = append(candidates, location)

	tags := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		tag := strings.TrimSpace(c)
		if tag == "" || seen[tag] {
			continue
		}
		tags = append(tags, tag)
		seen[tag] = true
	}

	return tags
}
