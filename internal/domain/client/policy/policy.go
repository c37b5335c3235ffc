package policy

import (
	"context"
	"time"

	"github.com/vadim/agency-planner/internal/domain/client/entity"
	"github.com/vadim/agency-planner/internal/domain/client/service"
)

// SWOTAnalyzer defines the interface for generative SWOT analysis.
// Defined by the consumer; the OpenAI upstream client satisfies it
// through an adapter in the app wiring.
type SWOTAnalyzer interface {
	AnalyzeSWOT(ctx context.Context, in AnalyzeInput) (*AnalyzeOutput, error)
}

// AnalyzeInput describes the business being analyzed
type AnalyzeInput struct {
	Name       string
	Segment    string
	Objectives []string
	Notes      string
}

// AnalyzeOutput is the structured analysis returned by the provider
type AnalyzeOutput struct {
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Threats       []string
}

// Policy orchestrates client use-cases that involve the generative
// provider. The embedded Service carries plain CRUD.
type Policy struct {
	*service.Service

	analyzer SWOTAnalyzer
}

// New creates a new client policy
func New(svc *service.Service, analyzer SWOTAnalyzer) *Policy {
	return &Policy{Service: svc, analyzer: analyzer}
}

// GenerateSWOT runs a SWOT analysis for the client and stores the result
// on the client record. Notes are free-form context supplied by the caller.
func (p *Policy) GenerateSWOT(ctx context.Context, clientID, notes string) (*entity.SWOT, error) {
	c, err := p.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if p.analyzer == nil {
		return nil, entity.ErrAssistUnavailable
	}

	objectives, err := p.ListObjectives(ctx, clientID)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(objectives))
	for i, o := range objectives {
		titles[i] = o.Title
	}

	out, err := p.analyzer.AnalyzeSWOT(ctx, AnalyzeInput{
		Name:       c.Name,
		Segment:    c.Segment,
		Objectives: titles,
		Notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	swot := &entity.SWOT{
		Strengths:     out.Strengths,
		Weaknesses:    out.Weaknesses,
		Opportunities: out.Opportunities,
		Threats:       out.Threats,
		GeneratedAt:   time.Now(),
	}

	if err := p.StoreSWOT(ctx, clientID, swot); err != nil {
		return nil, err
	}

	return swot, nil
}
