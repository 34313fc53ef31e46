package gateway

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subject string
	payload any
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	p.subject = subject
	p.payload = payload
	return nil
}

func TestPublishReviewCreated(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewReviewGW(pub)
	review := &models.Review{
		ID:         uuid.New(),
		RideID:     uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		ReviewType: models.ReviewTypeDriver,
		Rating:     4,
	}
	avg := 4.5

	require.NoError(t, gw.PublishReviewCreated(context.Background(), review, &avg))

	assert.Equal(t, constants.SubjectReviewCreated, pub.subject)
	evt, ok := pub.payload.(models.ReviewEvent)
	require.True(t, ok)
	assert.Equal(t, review.ID.String(), evt.ReviewID)
	assert.Equal(t, "driver_review", evt.ReviewType)
	assert.Equal(t, 4, evt.Rating)
	require.NotNil(t, evt.NewAverage)
	assert.Equal(t, 4.5, *evt.NewAverage)
	assert.False(t, evt.OccurredAt.IsZero())
}
