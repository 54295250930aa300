package service

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkVettingService_Pending(t *testing.T) {
	svc := NewLinkVettingService(time.Minute, nil)

	got, err := svc.Analyze(context.Background(), []string{"https://a.example", " ", "https://b.example"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Reprovado", got[0].Status)
	assert.Equal(t, "https://a.example - análise pendente", got[0].DisplayText)
	assert.Equal(t, pendingLinkDescription, got[1].Description)
}

func TestLinkVettingService_Caches(t *testing.T) {
	calls := 0
	svc := NewLinkVettingService(time.Minute, func(_ context.Context, link string) evaluation.LinkAnalysis {
		calls++
		return evaluation.LinkAnalysis{Link: link, Status: "Aprovado"}
	})

	_, err := svc.Analyze(context.Background(), []string{"https://a.example"})
	require.NoError(t, err)
	got, err := svc.Analyze(context.Background(), []string{"https://a.example"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Aprovado", got[0].Status)
}

func TestLinkVettingService_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLinkVettingService(time.Minute, nil).Analyze(ctx, []string{"https://a.example"})
	assert.ErrorIs(t, err, context.Canceled)
}
