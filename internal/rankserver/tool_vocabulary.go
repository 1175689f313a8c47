package rankserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func registerSkillVocabulary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_vocabulary",
		Description: "List the skill vocabulary the server recognizes in resumes and job descriptions. Skills outside this list are invisible to extraction and gap analysis.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SkillVocabularyInput) (*mcp.CallToolResult, engine.SkillVocabularyOutput, error) {
		skills := opts.Vocab.Terms()
		return nil, engine.SkillVocabularyOutput{
			Count:  len(skills),
			Skills: skills,
		}, nil
	})
}
