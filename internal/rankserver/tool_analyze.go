package rankserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/rank"
	"github.com/anatolykoptev/go_resume/internal/toolutil"
)

func registerResumeAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_analyze",
		Description: "Analyze a single resume against a job description. Returns the extracted candidate fields (name, email, phone, skills), the 0–100 match score, the skills the job requires that the resume is missing, and prioritized improvement tips.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeAnalyzeInput) (*mcp.CallToolResult, engine.ResumeAnalyzeOutput, error) {
		if input.Resume == "" {
			return nil, engine.ResumeAnalyzeOutput{}, fmt.Errorf("resume is required")
		}
		if input.JobDescription == "" {
			return nil, engine.ResumeAnalyzeOutput{}, fmt.Errorf("job_description is required")
		}
		engine.IncrAnalyzeRequests()

		jd := engine.NormalizeJD(input.JobDescription)
		cacheKey := engine.CacheKey("resume_analyze", jd, input.Resume)
		if out, ok := toolutil.CacheLoadJSON[engine.ResumeAnalyzeOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		ranking := newPipeline().Rank(ctx, []rank.Document{{ID: "resume", Text: input.Resume}}, jd)
		res := ranking.Results[0]

		matched := len(ranking.RequiredSkills) - len(res.MissingSkills)
		out := engine.ResumeAnalyzeOutput{
			RequiredSkills: ranking.RequiredSkills,
			Result:         res,
			Summary: fmt.Sprintf("%s scored %.2f/100; %d of %d required skill(s) present.",
				res.Name, res.MatchScore, matched, len(ranking.RequiredSkills)),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
