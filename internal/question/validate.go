package question

import (
	"fmt"
	"strings"
)

// Problem is one rejected template entry, addressed by its config path.
type Problem struct {
	Path   string
	Reason string
}

// TemplateError lists every problem found in a template set.
type TemplateError struct {
	Problems []Problem
}

func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("question templates invalid")
	for i, problem := range e.Problems {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s %s", problem.Path, problem.Reason)
	}
	return b.String()
}

// NormalizeTemplates trims every prompt and rejects empty sets, blank
// entries, and prompts repeated anywhere across the general and type sets.
func NormalizeTemplates(templates Templates) (Templates, error) {
	var problems []Problem
	reject := func(path, reason string) {
		problems = append(problems, Problem{Path: path, Reason: reason})
	}
	firstSeen := map[string]string{}

	clean := func(set string, prompts []string) []string {
		if len(prompts) == 0 {
			reject(set, "must include at least one entry")
			return nil
		}
		out := make([]string, len(prompts))
		for i, prompt := range prompts {
			path := fmt.Sprintf("%s[%d]", set, i)
			prompt = strings.TrimSpace(prompt)
			out[i] = prompt
			switch first, dup := firstSeen[prompt]; {
			case prompt == "":
				reject(path, "is blank")
			case dup:
				reject(path, fmt.Sprintf("repeats %s %q", first, prompt))
			default:
				firstSeen[prompt] = path
			}
		}
		return out
	}

	normalized := Templates{
		General: clean("questions.general", templates.General),
		Type:    clean("questions.type", templates.Type),
	}
	if len(problems) > 0 {
		return Templates{}, &TemplateError{Problems: problems}
	}
	return normalized, nil
}
