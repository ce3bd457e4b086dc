package converter

import (
	"fmt"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

// Convert normalizes every test of a technique into render-ready views:
// defaults applied, commands substituted, fence languages resolved. This is
// the single place optional fields get their defaults; the renderer can
// assume every view is complete.
func Convert(tech *domain.Technique) []domain.TestView {
	views := make([]domain.TestView, 0, len(tech.Tests))
	for i, t := range tech.Tests {
		views = append(views, convertTest(t, i+1))
	}
	return views
}

func convertTest(t domain.Test, ordinal int) domain.TestView {
	name := t.Name
	if name == "" {
		name = fmt.Sprintf("Atomic Test #%d", ordinal)
	}

	return domain.TestView{
		Ordinal:            ordinal,
		Name:               name,
		Description:        t.Description,
		SupportedPlatforms: t.SupportedPlatforms,
		AutoGeneratedGUID:  t.AutoGeneratedGUID,
		Inputs:             t.InputArguments, // table shows raw defaults
		ExecutorName:       t.Executor.Name,
		ElevationRequired:  t.Executor.ElevationRequired,
		FenceLang:          FenceLang(t.Executor.Name),
		Command:            Substitute(t.Executor.Command, t.InputArguments),
		CleanupCommand:     Substitute(t.Executor.CleanupCommand, t.InputArguments),
		HasCleanup:         t.Executor.CleanupCommand != "",
	}
}
