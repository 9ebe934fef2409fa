package services

import "context"

// TextGenerator is an external text-generation collaborator. Its output is opaque.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightSvcFacade answers free-form questions about the club's finances.
type InsightSvcFacade interface {
	// BuildPrompt embeds snapshots of contributions, investments and open proposals ahead of the query.
	BuildPrompt(ctx context.Context, query string) (string, error)
	// Ask sends the prompt to the text generator. It never changes club state.
	Ask(ctx context.Context, actorID, query string) (string, error)
}
