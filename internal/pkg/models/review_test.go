package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewStats(t *testing.T) {
	stats := NewReviewStats(map[int]int{5: 2, 4: 1})

	assert.Equal(t, 3, stats.TotalReviews)
	require.NotNil(t, stats.AverageRating)
	assert.Equal(t, 4.7, *stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, stats.RatingBreakdown)
}

func TestNewReviewStats_NoReviews(t *testing.T) {
	stats := NewReviewStats(nil)

	assert.Zero(t, stats.TotalReviews)
	assert.Nil(t, stats.AverageRating)
	assert.Len(t, stats.RatingBreakdown, 5)
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
}
