package main

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"otzyv/internal/reviews"

	"github.com/go-chi/chi/v5"
)

type createReviewPayload struct {
	Text string `json:"text" validate:"required"`
}

// createReviewHandler godoc
//
//	@Summary		Submit Review
//	@Description	Accepts review text, classifies its sentiment and stores it.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		createReviewPayload	true	"Review payload"
//	@Success		201		{object}	store.Review		"Created review"
//	@Failure		400		{object}	error				"Bad Request"
//	@Failure		500		{object}	error				"Internal Server Error"
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		app.badRequestResponse(w, r, errors.New("Content-Type must be application/json"))
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errors.New("field 'text' is required"))
		return
	}

	review, err := app.service.CreateReview(r.Context(), payload.Text)
	if err != nil {
		if reviews.IsValidation(err) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReviewsHandler godoc
//
//	@Summary		List Reviews
//	@Description	Returns all reviews, optionally filtered by sentiment.
//	@Tags			Reviews
//	@Produce		json
//	@Param			sentiment	query		string			false	"Sentiment filter"	Enums(positive, negative, neutral)
//	@Success		200			{array}		store.Review	"List of reviews"
//	@Failure		400			{object}	error			"Bad Request"
//	@Failure		500			{object}	error			"Internal Server Error"
//	@Router			/reviews [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("sentiment")
	if err := Validate.Var(filter, "omitempty,sentiment"); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("sentiment must be one of positive, negative, neutral"))
		return
	}

	list, err := app.service.GetReviews(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReviewHandler godoc
//
//	@Summary		Delete Review
//	@Description	Deletes a review by its id.
//	@Tags			Reviews
//	@Produce		json
//	@Param			reviewID	path		int					true	"Review ID"
//	@Success		200			{object}	map[string]any		"Deletion confirmation"
//	@Failure		400			{object}	error				"Bad Request"
//	@Failure		404			{object}	map[string]any		"Review not found"
//	@Failure		500			{object}	error				"Internal Server Error"
//	@Router			/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "reviewID")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	deleted, err := app.service.DeleteReview(r.Context(), id)
	if err != nil {
		if reviews.IsValidation(err) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if !deleted {
		app.logger.Warnw("review not found for deletion", "review_id", id, "correlation_id", getCorrelationID(r))
		if err := writeJSON(w, http.StatusNotFound, map[string]any{
			"error":        fmt.Sprintf("Review with ID %d not found", id),
			"requested_id": id,
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	app.logger.Infow("review deleted", "review_id", id)
	if err := writeJSON(w, http.StatusOK, map[string]any{
		"message":    fmt.Sprintf("Review with ID %d deleted successfully", id),
		"deleted_id": id,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
