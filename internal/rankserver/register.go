// Package rankserver exposes the resume ranking engine as MCP tools:
// resume_rank, resume_analyze, resume_extract, skill_vocabulary.
package rankserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine/rank"
)

// Options carries the capabilities the tools close over.
type Options struct {
	Vocab      rank.Vocabulary
	Recognizer rank.EntityRecognizer // nil = NER disabled
	Workers    int
}

var opts Options

// RegisterTools registers all resume analysis tools on the given MCP server.
func RegisterTools(server *mcp.Server, o Options) {
	opts = o
	registerResumeRank(server)
	registerResumeAnalyze(server)
	registerResumeExtract(server)
	registerSkillVocabulary(server)
}

func newPipeline() *rank.Pipeline {
	p := rank.NewPipeline(opts.Vocab, opts.Recognizer)
	if opts.Workers > 0 {
		p.Workers = opts.Workers
	}
	return p
}
