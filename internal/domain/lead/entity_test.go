//go:build unit

package lead_test

import (
	"strings"
	"testing"
	"time"

	"leadgate/internal/domain/lead"
	"leadgate/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LeadBuilder)
	errIs  error
}

func TestLead(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, lead.StatusNew, actual.Status())
		assert.Equal(t, "Jane Smith", actual.Contact().Name())
		assert.Equal(t, "plumbing", actual.Detail().Category)
		assert.True(t, actual.IsActive())
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty consumer name",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerName("") },
				errIs:  lead.ErrEmptyName,
			},
			{
				name:   "whitespace only consumer name",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerName("   ") },
				errIs:  lead.ErrEmptyName,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerEmail("not-an-email") },
				errIs:  lead.ErrInvalidEmail,
			},
			{
				name:   "phone with letters",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerPhone("555-CALL-NOW") },
				errIs:  lead.ErrInvalidPhone,
			},
			{
				name:   "phone with too few digits",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerPhone("555-123") },
				errIs:  lead.ErrInvalidPhone,
			},
			{
				name:   "international phone format",
				mutate: func(b *builder.LeadBuilder) { b.WithConsumerPhone("+1 (555) 123-4567") },
			},
		})
	})

	t.Run("detail validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty category",
				mutate: func(b *builder.LeadBuilder) { b.WithCategory("") },
				errIs:  lead.ErrEmptyCategory,
			},
			{
				name:   "negative budget",
				mutate: func(b *builder.LeadBuilder) { b.WithBudgetCents(-1) },
				errIs:  lead.ErrNegativeBudget,
			},
			{
				name:   "zero budget is allowed",
				mutate: func(b *builder.LeadBuilder) { b.WithBudgetCents(0) },
			},
			{
				name:   "zip+4 format",
				mutate: func(b *builder.LeadBuilder) { b.WithZipcode("94107-1234") },
			},
			{
				name:   "too short zipcode",
				mutate: func(b *builder.LeadBuilder) { b.WithZipcode("9410") },
				errIs:  lead.ErrInvalidZipcode,
			},
			{
				name:   "alphabetic zipcode",
				mutate: func(b *builder.LeadBuilder) { b.WithZipcode("ABCDE") },
				errIs:  lead.ErrInvalidZipcode,
			},
		})
	})

	t.Run("note validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty note is allowed",
				mutate: func(b *builder.LeadBuilder) { b.WithNote("") },
			},
			{
				name:   "maximum length note",
				mutate: func(b *builder.LeadBuilder) { b.WithNote(strings.Repeat("a", lead.MaxNoteLength)) },
			},
			{
				name:   "note exceeds maximum length",
				mutate: func(b *builder.LeadBuilder) { b.WithNote(strings.Repeat("a", lead.MaxNoteLength+1)) },
				errIs:  lead.ErrNoteTooLong,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		lead1, err1 := builder.NewLeadBuilder().BuildDomain()
		lead2, err2 := builder.NewLeadBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, lead1.ID(), lead2.ID())
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    lead.Status
		to      lead.Status
		allowed bool
	}{
		{lead.StatusNew, lead.StatusContacted, true},
		{lead.StatusNew, lead.StatusViewed, true},
		{lead.StatusNew, lead.StatusWon, true},
		{lead.StatusNew, lead.StatusLost, true},
		{lead.StatusContacted, lead.StatusViewed, true},
		{lead.StatusContacted, lead.StatusWon, true},
		{lead.StatusContacted, lead.StatusLost, true},
		{lead.StatusViewed, lead.StatusWon, true},
		{lead.StatusViewed, lead.StatusLost, true},
		{lead.StatusContacted, lead.StatusNew, false},
		{lead.StatusViewed, lead.StatusNew, false},
		{lead.StatusViewed, lead.StatusContacted, false},
		{lead.StatusWon, lead.StatusLost, false},
		{lead.StatusWon, lead.StatusContacted, false},
		{lead.StatusLost, lead.StatusWon, false},
		{lead.StatusLost, lead.StatusViewed, false},
		{lead.StatusNew, lead.StatusNew, false},
		{lead.StatusWon, lead.StatusWon, false},
	}

	for _, c := range cases {
		name := string(c.from) + " to " + string(c.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.allowed, lead.CanTransition(c.from, c.to))

			err := lead.ValidateTransition(c.from, c.to)
			if c.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, lead.ErrInvalidTransition)
			}
		})
	}

	t.Run("invalid statuses never transition", func(t *testing.T) {
		assert.False(t, lead.CanTransition(lead.Status("bogus"), lead.StatusWon))
		assert.False(t, lead.CanTransition(lead.StatusNew, lead.Status("bogus")))
	})
}

func TestStatusArchival(t *testing.T) {
	assert.False(t, lead.StatusNew.IsArchived())
	assert.False(t, lead.StatusContacted.IsArchived())
	assert.True(t, lead.StatusViewed.IsArchived())
	assert.True(t, lead.StatusWon.IsArchived())
	assert.True(t, lead.StatusLost.IsArchived())
}

func TestNewStatus(t *testing.T) {
	for _, raw := range []string{"new", "contacted", "viewed", "won", "lost"} {
		s, err := lead.NewStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.String())
	}

	_, err := lead.NewStatus("archived")
	assert.ErrorIs(t, err, lead.ErrInvalidStatus)
}

func TestReconstructAssignment(t *testing.T) {
	leadID, businessID := uuid.New(), uuid.New()
	at := time.Now()

	a := lead.ReconstructAssignment(leadID, businessID, true, &at)

	assert.Equal(t, leadID, a.LeadID())
	assert.Equal(t, businessID, a.BusinessID())
	assert.True(t, a.Revealed())
	require.NotNil(t, a.RevealedAt())
	assert.Equal(t, at, *a.RevealedAt())

	// A rehydrated revealed assignment stays monotonic.
	assert.ErrorIs(t, a.Reveal(at.Add(time.Hour)), lead.ErrAlreadyRevealed)
}

func TestTransitionTo(t *testing.T) {
	t.Run("legal transition mutates status", func(t *testing.T) {
		l, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, l.TransitionTo(lead.StatusContacted))
		assert.Equal(t, lead.StatusContacted, l.Status())
	})

	t.Run("illegal transition leaves status untouched", func(t *testing.T) {
		l, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, l.TransitionTo(lead.StatusWon))
		err = l.TransitionTo(lead.StatusContacted)
		assert.ErrorIs(t, err, lead.ErrInvalidTransition)
		assert.Equal(t, lead.StatusWon, l.Status())
	})
}

func TestAssignmentReveal(t *testing.T) {
	t.Run("first reveal succeeds", func(t *testing.T) {
		a := lead.NewAssignment(uuid.New(), uuid.New())
		at := time.Now()

		require.NoError(t, a.Reveal(at))
		assert.True(t, a.Revealed())
		require.NotNil(t, a.RevealedAt())
		assert.Equal(t, at, *a.RevealedAt())
	})

	t.Run("second reveal fails and keeps original timestamp", func(t *testing.T) {
		a := lead.NewAssignment(uuid.New(), uuid.New())
		first := time.Now()
		require.NoError(t, a.Reveal(first))

		err := a.Reveal(first.Add(time.Hour))
		assert.ErrorIs(t, err, lead.ErrAlreadyRevealed)
		assert.Equal(t, first, *a.RevealedAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewLeadBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			actual, err := b.BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
