package respondchat

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-workers/internal/catalog"
	stderr "placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/scoring/chat"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func createTestHandler(t *testing.T, repo catalog.Repository) *Handler {
	return NewHandler(&Config{Timeout: 5 * time.Second}, repo, logger.NewZapAdapter(zaptest.NewLogger(t)))
}

func TestHandler_Execute(t *testing.T) {
	h := createTestHandler(t, catalog.NewMemoryRepository(catalog.SeedEmployers()))

	tests := []struct {
		message    string
		wantIntent chat.Intent
		wantReply  string
	}{
		{"Which companies are visiting?", chat.IntentCompanies, "• **Goldman Sachs**: Investment Banking Analyst (₹28 LPA), Deadline: 2026-03-05"},
		{"What is the CGPA cutoff?", chat.IntentEligibility, "Eligibility varies by recruiter"},
		{"DCF tips", chat.IntentFinance, "3-statement model"},
		{"asdf qwerty", chat.IntentFallback, ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{Message: tt.message})
			require.NoError(t, err)
			assert.Equal(t, string(tt.wantIntent), out.Intent)
			assert.NotEmpty(t, out.Reply)
			if tt.wantReply != "" {
				assert.Contains(t, out.Reply, tt.wantReply)
			}
		})
	}
}

func TestHandler_Execute_OnlyCompaniesHitsCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := createTestHandler(t, catalog.NewPostgresRepository(db))

	_, err = h.Execute(context.Background(), &Input{Message: "how do I prepare for case interviews"})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM employers`).WillReturnError(errors.New("connection reset"))
	_, err = h.Execute(context.Background(), &Input{Message: "upcoming recruiters"})
	require.Error(t, err)
	assert.Equal(t, stderr.ErrCodeQueryExecutionFailed, stderr.Normalize(err).Code)
	assert.True(t, stderr.Normalize(err).Retryable)

	assert.NoError(t, mock.ExpectationsWereMet())
}
