package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/reviews"
)

// CreateReview lets a passenger rate the driver of a completed ride, or the
// driver rate one of its passengers, and refreshes the reviewee's rating
func (uc *ReviewUC) CreateReview(ctx context.Context, principal models.Principal, req models.CreateReviewRequest) (*models.Review, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "ReviewUC.CreateReview", func() (*models.Review, error) {
		if req.RideID == uuid.Nil {
			return nil, apperror.Validation("Ride ID is required")
		}
		if !models.IsValidRating(req.Rating) {
			return nil, apperror.Validation("Rating must be between 1 and 5")
		}
		comment, err := reviewComment(req.Comment)
		if err != nil {
			return nil, err
		}

		ride, err := uc.reviewRepo.GetRide(ctx, req.RideID)
		if err != nil {
			return nil, fail(err)
		}

		now := uc.now()
		review := &models.Review{
			ID:         uuid.New(),
			RideID:     ride.ID,
			ReviewerID: principal.UserID,
			Rating:     req.Rating,
			Comment:    comment,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if principal.IsDriver() {
			if ride.DriverID != principal.UserID {
				return nil, apperror.Authorization("You can only review passengers of your own rides")
			}
			if req.RevieweeID == nil || *req.RevieweeID == uuid.Nil {
				return nil, apperror.Validation("Reviewee ID is required when reviewing a passenger")
			}
			booking, err := uc.completedBooking(ctx, ride.ID, *req.RevieweeID, "This passenger did not complete the ride")
			if err != nil {
				return nil, err
			}
			review.RevieweeID = booking.PassengerID
			review.BookingID = booking.ID
			review.ReviewType = models.ReviewTypePassenger
		} else {
			booking, err := uc.completedBooking(ctx, ride.ID, principal.UserID, "You can only review rides you have completed")
			if err != nil {
				return nil, err
			}
			review.RevieweeID = ride.DriverID
			review.BookingID = booking.ID
			review.ReviewType = models.ReviewTypeDriver
		}

		exists, err := uc.reviewRepo.ReviewExists(ctx, review.RideID, review.ReviewerID, review.RevieweeID)
		if err != nil {
			return nil, fail(err)
		}
		if exists {
			return nil, apperror.AlreadyReviewed()
		}

		var rating *float64
		err = uc.reviewRepo.RunInTx(ctx, func(tx reviews.ReviewTx) error {
			if err := tx.InsertReview(ctx, review); err != nil {
				return err
			}
			rating, err = tx.RecomputeRating(ctx, review.RevieweeID)
			return err
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Review created",
			logger.String("review_id", review.ID.String()),
			logger.String("ride_id", review.RideID.String()),
			logger.String("review_type", string(review.ReviewType)),
			logger.Int("rating", review.Rating))

		publish(ctx, constants.SubjectReviewCreated, func() error {
			return uc.reviewGW.PublishReviewCreated(ctx, review, rating)
		})
		return review, nil
	})
}

// completedBooking maps a missing completed booking to a permission error
func (uc *ReviewUC) completedBooking(ctx context.Context, rideID, passengerID uuid.UUID, denied string) (*models.Booking, error) {
	booking, err := uc.reviewRepo.FindCompletedBooking(ctx, rideID, passengerID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.Authorization(denied)
	}
	if err != nil {
		return nil, fail(err)
	}
	return booking, nil
}

func reviewComment(comment *string) (*string, error) {
	c := utils.OptionalString(comment)
	if c != nil && utils.RuneLen(*c) > models.MaxReviewCommentLength {
		return nil, apperror.Validation("Comment must be at most 1000 characters")
	}
	return c, nil
}

// UpdateReview changes the rating or comment of the caller's review
func (uc *ReviewUC) UpdateReview(ctx context.Context, principal models.Principal, reviewID uuid.UUID, req models.UpdateReviewRequest) (*models.Review, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "ReviewUC.UpdateReview", func() (*models.Review, error) {
		if req.Rating == nil && req.Comment == nil {
			return nil, apperror.Validation("Nothing to update")
		}
		if req.Rating != nil && !models.IsValidRating(*req.Rating) {
			return nil, apperror.Validation("Rating must be between 1 and 5")
		}

		review, err := uc.ownReview(ctx, principal, reviewID)
		if err != nil {
			return nil, err
		}

		ratingChanged := false
		if req.Rating != nil {
			ratingChanged = *req.Rating != review.Rating
			review.Rating = *req.Rating
		}
		if req.Comment != nil {
			comment, err := reviewComment(req.Comment)
			if err != nil {
				return nil, err
			}
			review.Comment = comment
		}
		review.UpdatedAt = uc.now()

		err = uc.reviewRepo.RunInTx(ctx, func(tx reviews.ReviewTx) error {
			if err := tx.UpdateReview(ctx, review); err != nil {
				return err
			}
			if !ratingChanged {
				return nil
			}
			_, err := tx.RecomputeRating(ctx, review.RevieweeID)
			return err
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Review updated",
			logger.String("review_id", review.ID.String()),
			logger.Int("rating", review.Rating))
		return review, nil
	})
}

// DeleteReview removes the caller's review and refreshes the reviewee's rating
func (uc *ReviewUC) DeleteReview(ctx context.Context, principal models.Principal, reviewID uuid.UUID) error {
	return nrpkg.WithSegment(ctx, "ReviewUC.DeleteReview", func() error {
		review, err := uc.ownReview(ctx, principal, reviewID)
		if err != nil {
			return err
		}

		err = uc.reviewRepo.RunInTx(ctx, func(tx reviews.ReviewTx) error {
			if err := tx.DeleteReview(ctx, review.ID); err != nil {
				return err
			}
			_, err := tx.RecomputeRating(ctx, review.RevieweeID)
			return err
		})
		if err != nil {
			return fail(err)
		}

		logger.InfoCtx(ctx, "Review deleted", logger.String("review_id", review.ID.String()))
		return nil
	})
}

func (uc *ReviewUC) ownReview(ctx context.Context, principal models.Principal, reviewID uuid.UUID) (*models.Review, error) {
	review, err := uc.reviewRepo.GetReview(ctx, reviewID)
	if err != nil {
		return nil, fail(err)
	}
	if review.ReviewerID != principal.UserID {
		return nil, apperror.Authorization("You can only modify your own reviews")
	}
	return review, nil
}

// DriverReviews returns a page of the reviews a driver received with their rating stats
func (uc *ReviewUC) DriverReviews(ctx context.Context, driverID uuid.UUID, page, perPage int) (*models.DriverReviews, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "ReviewUC.DriverReviews", func() (*models.DriverReviews, error) {
		driver, err := uc.reviewRepo.GetUser(ctx, driverID)
		if err != nil {
			return nil, fail(err)
		}
		if driver.Role != models.RoleDriver {
			return nil, apperror.NotFound("Driver not found")
		}

		page, perPage = models.NormalizePage(page, perPage, maxReviewsPerPage)
		rows, total, err := uc.reviewRepo.ListReceived(ctx, driverID, models.ReviewTypeDriver, page, perPage)
		if err != nil {
			return nil, fail(err)
		}
		counts, err := uc.reviewRepo.RatingCounts(ctx, driverID, models.ReviewTypeDriver)
		if err != nil {
			return nil, fail(err)
		}

		return &models.DriverReviews{
			Reviews: models.NewPage(rows, page, perPage, total),
			Stats:   models.NewReviewStats(counts),
		}, nil
	})
}

// UserReviews returns the reviews a user wrote and received
func (uc *ReviewUC) UserReviews(ctx context.Context, userID uuid.UUID) (*models.UserReviews, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "ReviewUC.UserReviews", func() (*models.UserReviews, error) {
		if _, err := uc.reviewRepo.GetUser(ctx, userID); err != nil {
			return nil, fail(err)
		}
		given, err := uc.reviewRepo.ListByReviewer(ctx, userID)
		if err != nil {
			return nil, fail(err)
		}
		received, err := uc.reviewRepo.ListByReviewee(ctx, userID)
		if err != nil {
			return nil, fail(err)
		}
		return &models.UserReviews{Given: given, Received: received}, nil
	})
}

// PendingReviews lists the completed trips the caller has yet to review
func (uc *ReviewUC) PendingReviews(ctx context.Context, principal models.Principal) ([]*models.PendingReview, error) {
	var (
		pending []*models.PendingReview
		err     error
	)
	if principal.IsDriver() {
		pending, err = uc.reviewRepo.DriverPendingReviews(ctx, principal.UserID)
	} else {
		pending, err = uc.reviewRepo.PassengerPendingReviews(ctx, principal.UserID)
	}
	if err != nil {
		return nil, fail(err)
	}
	return pending, nil
}
