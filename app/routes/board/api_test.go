package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenview-homes/app/validation"
)

func TestBoardMemberRequestRequiresTermStart(t *testing.T) {
	req := BoardMemberRequest{Name: "Ana Reyes", Position: "President"}

	err := validation.Struct(req)
	require.Error(t, err)
	assert.Equal(t, "This field is required", validation.FieldErrors(err)["termstart"])
}

func TestToModelParsesTerm(t *testing.T) {
	req := BoardMemberRequest{
		Name:      "Ana Reyes",
		Position:  "President",
		TermStart: "2025-01-01",
	}

	m, err := req.toModel()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), m.TermStart)
	assert.Nil(t, m.TermEnd)

	req.TermEnd = "2026-12-31"
	m, err = req.toModel()
	require.NoError(t, err)
	require.NotNil(t, m.TermEnd)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *m.TermEnd)
}

func TestToModelRejectsBadDates(t *testing.T) {
	req := BoardMemberRequest{Name: "Ana Reyes", Position: "President", TermStart: "01/02/2025"}
	_, err := req.toModel()
	assert.Error(t, err)
}
