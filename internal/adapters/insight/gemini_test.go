package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	gotModel  string
	gotPrompt string
	reply     string
	err       error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestGeminiGenerator_Generate(t *testing.T) {
	fake := &fakeModels{reply: "  Hold VOO.\n"}
	g := newGenerator(fake, "")

	out, err := g.Generate(context.Background(), "What now?")

	require.NoError(t, err)
	assert.Equal(t, "Hold VOO.", out)
	assert.Equal(t, DefaultModel, fake.gotModel)
	assert.Equal(t, "What now?", fake.gotPrompt)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	_, err := newGenerator(&fakeModels{err: errors.New("quota")}, "m").Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "quota")

	_, err = newGenerator(&fakeModels{reply: "   "}, "m").Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "empty response")
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.Error(t, err)
}
