package rankserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/extract"
	"github.com/anatolykoptev/go_resume/internal/engine/rank"
	"github.com/anatolykoptev/go_resume/internal/toolutil"
)

func registerResumeRank(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_rank",
		Description: "Rank a batch of resumes against a job description. Extracts candidate name, email, phone and skills from each resume, scores textual similarity to the job description (0–100 cosine over word counts), and returns candidates sorted by match_score with prioritized improvement tips and the list of skills the job requires. Accepts plain text resumes or base64-encoded PDF/DOCX files.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeRankInput) (*mcp.CallToolResult, engine.ResumeRankOutput, error) {
		if input.JobDescription == "" {
			return nil, engine.ResumeRankOutput{}, fmt.Errorf("job_description is required")
		}
		if len(input.Documents) == 0 {
			return nil, engine.ResumeRankOutput{}, fmt.Errorf("documents is required")
		}
		engine.IncrRankRequests()

		jd := engine.NormalizeJD(input.JobDescription)
		docs := decodeDocuments(input.Documents)

		keyParts := make([]string, 0, 2+3*len(docs))
		keyParts = append(keyParts, "resume_rank", jd)
		for _, d := range docs {
			keyParts = append(keyParts, d.ID, d.Text, d.DecodeErr)
		}
		cacheKey := engine.CacheKey(keyParts...)
		if out, ok := toolutil.CacheLoadJSON[engine.ResumeRankOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		start := time.Now()
		ranking := newPipeline().Rank(ctx, docs, jd)
		slog.Info("resume_rank done",
			slog.Int("documents", len(docs)),
			slog.Int("required_skills", len(ranking.RequiredSkills)),
			slog.Duration("took", time.Since(start)),
		)

		out := engine.ResumeRankOutput{
			RequiredSkills: ranking.RequiredSkills,
			Results:        ranking.Results,
			Summary:        rankSummary(ranking),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func rankSummary(ranking rank.Ranking) string {
	failed := 0
	for _, r := range ranking.Results {
		if r.Error != "" {
			failed++
		}
	}

	summary := fmt.Sprintf("Ranked %d resume(s) against %d required skill(s).", len(ranking.Results), len(ranking.RequiredSkills))
	if len(ranking.Results) > 0 && ranking.Results[0].Error == "" {
		top := ranking.Results[0]
		summary += fmt.Sprintf(" Top match: %s (%.2f/100).", top.Name, top.MatchScore)
	}
	if failed > 0 {
		summary += fmt.Sprintf(" %d document(s) failed to process.", failed)
	}
	return summary
}

// decodeDocuments materializes plain text for each submitted document.
// Decode failures are recorded per document so one bad file never sinks
// the batch. IDs fall back to filename, then a generated UUID.
func decodeDocuments(in []engine.RankDocument) []rank.Document {
	docs := make([]rank.Document, 0, len(in))
	for _, d := range in {
		id := d.ID
		if id == "" {
			id = d.Filename
		}
		if id == "" {
			id = uuid.NewString()
		}

		doc := rank.Document{ID: id}
		switch {
		case d.Text != "":
			doc.Text = d.Text
		case d.Data != "":
			doc.Text, doc.DecodeErr = decodeData(id, d.Data, d.Format, d.Filename)
		default:
			doc.DecodeErr = "document has neither text nor data"
		}
		docs = append(docs, doc)
	}
	return docs
}

func decodeData(id, data, format, filename string) (text, decodeErr string) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Sprintf("invalid base64 data: %v", err)
	}
	if format == "" {
		format = extract.DetectFormat(filename)
	}
	text, err = extract.Text(format, raw)
	if err != nil {
		slog.Warn("resume decode failed", slog.String("id", id), slog.Any("error", err))
		return "", err.Error()
	}
	return text, ""
}
