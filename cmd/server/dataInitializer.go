package main

import (
	"context"

	"aitoolhub-server/services/hub-api/internal/domain/prompttemplate"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

type DataInitializer struct {
	templates *prompttemplate.Service
}

// Install seeds the template marketplace with a starter catalog on first
// boot. Seeding is skipped when any templates already exist.
func (d *DataInitializer) Install(ctx context.Context) error {
	if err := d.templates.SeedDefaults(ctx, defaultTemplates()); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to seed prompt templates")
	}
	return nil
}

func strPtr(s string) *string { return &s }

func defaultTemplates() []*prompttemplate.PromptTemplate {
	return []*prompttemplate.PromptTemplate{
		{
			Title:       "Product Launch Email",
			Content:     "Write a launch announcement email for {{product}}. Audience: {{audience}}. Tone: enthusiastic but concise. Include a clear call to action.",
			Description: strPtr("Announce a new product to an existing mailing list."),
			ToolID:      "email-generator",
		},
		{
			Title:       "Cold Outreach Email",
			Content:     "Write a short cold outreach email to {{recipient_role}} at {{company}} introducing {{product}}. Keep it under 120 words and end with a question.",
			Description: strPtr("First-touch sales email that avoids sounding canned."),
			ToolID:      "email-generator",
		},
		{
			Title:       "SEO Blog Outline",
			Content:     "Create a detailed outline for a blog post targeting the keyword \"{{keyword}}\". Include an H1, 5-7 H2 sections with bullet notes, and a meta description.",
			Description: strPtr("Structure a long-form post before drafting it."),
			ToolID:      "blog-writer",
		},
		{
			Title:       "Landing Page Hero Copy",
			Content:     "Write 3 headline and subheadline pairs for a landing page selling {{product}} to {{audience}}. Headlines under 10 words, benefit-led.",
			Description: strPtr("Punchy above-the-fold copy variants."),
			ToolID:      "ai-copywriter",
		},
		{
			Title:       "Refactor for Readability",
			Content:     "Refactor the following {{language}} code for readability without changing behavior. Explain each change briefly.\n\n{{code}}",
			Description: strPtr("Clean up working but messy code."),
			ToolID:      "code-generation",
		},
		{
			Title:   "Explain This Error",
			Content: "Explain the following {{language}} error message and the most likely fixes, ordered by probability.\n\n{{error}}",
			ToolID:  "code-generation",
		},
		{
			Title:       "Minimal Logo Brief",
			Content:     "Minimalist flat logo for {{company}}, a {{industry}} brand. Geometric, two colors, white background, no text.",
			Description: strPtr("Works well for icon-style marks."),
			ToolID:      "ai-logo-creator",
		},
		{
			Title:   "Professional Headshot Avatar",
			Content: "Professional headshot portrait of {{subject}}, soft studio lighting, neutral background, sharp focus, business attire.",
			ToolID:  "ai-avatar-generator",
		},
		{
			Title:   "Short Story Opening",
			Content: "Write the opening scene of a {{genre}} short story featuring {{protagonist}}. Establish setting and stakes in under 300 words.",
			ToolID:  "storytelling",
		},
		{
			Title:       "Resume Bullet Rewrite",
			Content:     "Rewrite these resume bullet points for a {{role}} position. Make them achievement-oriented with metrics where plausible.\n\n{{bullets}}",
			Description: strPtr("Turn duty lists into achievement statements."),
			ToolID:      "resume-builder",
		},
	}
}
