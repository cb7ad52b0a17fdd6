package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// TextGenerator is a language model that answers a prompt with text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ResumeInput is the profile data a civilian resume is written from.
type ResumeInput struct {
	FullName       string
	Headline       string
	Summary        string
	Branch         string
	Rank           string
	MOS            string
	YearsOfService int
	Clearance      string
	LeadershipRole string
	Awards         string
	Skills         []string
	City           string
	State          string
	ServiceNotes   string
}

type ExperienceEntry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Highlights   []string `json:"highlights"`
}

type GeneratedResume struct {
	TranslatedTitle string            `json:"translatedTitle"`
	Summary         string            `json:"summary"`
	Skills          []string          `json:"skills"`
	Experience      []ExperienceEntry `json:"experience"`
	Provider        string            `json:"provider"`
}

type ResumeWriter struct {
	gen    TextGenerator
	logger *zap.Logger
}

func NewResumeWriter(gen TextGenerator, logger *zap.Logger) *ResumeWriter {
	return &ResumeWriter{gen: gen, logger: logger}
}

// Write asks the model for a civilian resume and decodes its JSON answer.
func (w *ResumeWriter) Write(ctx context.Context, in ResumeInput) (*GeneratedResume, error) {
	raw, err := w.gen.GenerateText(ctx, buildResumePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("generate resume: %w", err)
	}

	text := CleanJSON(raw)
	if !gjson.Valid(text) {
		w.logger.Warn("resume model returned invalid JSON",
			zap.String("provider", w.gen.Name()),
			zap.Int("length", len(raw)),
		)
		return nil, fmt.Errorf("resume model returned invalid JSON")
	}

	out := &GeneratedResume{
		TranslatedTitle: gjson.Get(text, "translatedTitle").String(),
		Summary:         gjson.Get(text, "summary").String(),
		Provider:        w.gen.Name(),
	}
	for _, s := range gjson.Get(text, "skills").Array() {
		if v := strings.TrimSpace(s.String()); v != "" {
			out.Skills = append(out.Skills, v)
		}
	}
	for _, e := range gjson.Get(text, "experience").Array() {
		entry := ExperienceEntry{
			Title:        e.Get("title").String(),
			Organization: e.Get("organization").String(),
			Period:       e.Get("period").String(),
		}
		for _, h := range e.Get("highlights").Array() {
			entry.Highlights = append(entry.Highlights, h.String())
		}
		out.Experience = append(out.Experience, entry)
	}
	return out, nil
}

// CleanJSON strips Markdown code fences some models wrap around JSON.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

func buildResumePrompt(in ResumeInput) string {
	var sb strings.Builder
	sb.WriteString("Write a civilian resume for a US military veteran from the profile below.\n")
	sb.WriteString("Translate military jargon, ranks and job codes into plain civilian terms.\n\n")

	field := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&sb, "%s: %s\n", label, value)
		}
	}
	field("Name", in.FullName)
	field("Headline", in.Headline)
	field("Branch", in.Branch)
	field("Rank", in.Rank)
	field("MOS/AFSC/Rating", in.MOS)
	if in.YearsOfService > 0 {
		field("Years of service", fmt.Sprint(in.YearsOfService))
	}
	field("Security clearance", in.Clearance)
	field("Leadership role", in.LeadershipRole)
	field("Awards", in.Awards)
	field("Skills", strings.Join(in.Skills, ", "))
	field("Location", strings.Trim(in.City+", "+in.State, ", "))
	field("Summary", in.Summary)
	field("Service notes", in.ServiceNotes)

	sb.WriteString(`
Return your answer STRICTLY in JSON format with this schema:
{
  "translatedTitle": "<civilian job title equivalent>",
  "summary": "<3-4 sentence professional summary>",
  "skills": ["<civilian skill>", ...],
  "experience": [
    {"title": "<civilian title>", "organization": "<unit or branch>", "period": "<years>", "highlights": ["<achievement>", ...]}
  ]
}`)
	return sb.String()
}
