package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock TextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestInsightService_BuildPrompt(t *testing.T) {
	svc := services.NewInsightService(newFixtureStore(t), nil)

	prompt, err := svc.BuildPrompt(context.Background(), "Should we sell QQQ?")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prompt, "You are a helpful financial analyst for a small investment club of alumni."))
	assert.Contains(t, prompt, `- Contributions Data: [{"id":"c1"`)
	assert.NotContains(t, prompt, `"id":"t1"`, "only the first five contributions are embedded")
	assert.Contains(t, prompt, `"ticker":"VOO"`)
	assert.Contains(t, prompt, `"title":"Increase monthly contribution to $150"`)
	assert.NotContains(t, prompt, `"title":"Sell QQQ position"`, "closed proposals are left out")
	assert.True(t, strings.HasSuffix(prompt, "User Query: \"Should we sell QQQ?\"\n"))
}

func TestInsightService_Ask(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "How are we doing?")
	})).Return("You are up 11.7%.", nil).Once()
	svc := services.NewInsightService(store, gen)
	versionBefore := store.Version(ctx)

	answer, err := svc.Ask(ctx, bobID, "How are we doing?")

	require.NoError(t, err)
	assert.Equal(t, "You are up 11.7%.", answer)
	assert.Equal(t, versionBefore, store.Version(ctx))
	gen.AssertExpectations(t)
}

func TestInsightService_Failures(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)

	_, err := services.NewInsightService(store, nil).Ask(ctx, bobID, "anything")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Contains(t, err.Error(), "insight service is not configured")

	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("", errors.New("quota exceeded")).Once()
	_, err = services.NewInsightService(store, gen).Ask(ctx, bobID, "anything")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = services.NewInsightService(store, gen).Ask(ctx, bobID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
