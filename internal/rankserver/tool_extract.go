package rankserver

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/extract"
	"github.com/anatolykoptev/go_resume/internal/engine/rank"
)

func registerResumeExtract(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_extract",
		Description: "Extract candidate fields from a single resume without scoring: name (line heuristic plus optional NER fallback), email, phone and recognized skills. Accepts plain text or a base64-encoded PDF/DOCX file.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeExtractInput) (*mcp.CallToolResult, engine.ResumeExtractOutput, error) {
		text := input.Text
		if text == "" {
			if input.Data == "" {
				return nil, engine.ResumeExtractOutput{}, fmt.Errorf("either text or data is required")
			}
			raw, err := base64.StdEncoding.DecodeString(input.Data)
			if err != nil {
				return nil, engine.ResumeExtractOutput{}, fmt.Errorf("invalid base64 data: %w", err)
			}
			format := input.Format
			if format == "" {
				format = extract.DetectFormat(input.Filename)
			}
			text, err = extract.Text(format, raw)
			if err != nil {
				return nil, engine.ResumeExtractOutput{}, fmt.Errorf("decode document: %w", err)
			}
		}
		engine.IncrExtractRequests()

		name := rank.ExtractName(text, opts.Recognizer)
		contact := rank.ExtractContact(text)
		skills := rank.SortedSkills(rank.ExtractSkills(text, opts.Vocab))

		out := engine.ResumeExtractOutput{
			Name:      name.Display(),
			NameFound: name.Found,
			Email:     contact.Email,
			Phone:     contact.Phone,
			Skills:    skills,
			Summary: fmt.Sprintf("Extracted %s (email: %v, phone: %v), %d skill(s).",
				name.Display(), contact.HasEmail(), contact.HasPhone(), len(skills)),
		}
		return nil, out, nil
	})
}
