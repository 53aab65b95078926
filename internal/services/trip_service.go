package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyago/internal/export"
	"voyago/internal/formatter"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/ai"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const (
	// generateTimeout caps the single round-trip to the AI provider. No
	// automatic retry: on failure the user resubmits.
	generateTimeout = 60 * time.Second

	// sessionTTL keeps trip working state (raw response, edited rendering)
	// around for a planning session, the database copy outlives it.
	sessionTTL = 24 * time.Hour
)

type TripServiceInterface interface {
	PlanTrip(ctx context.Context, accountID string, req request_models.TripRequest) (*response_models.TripPlanResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripPlanResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripSummary, error)
	SaveEditedContent(ctx context.Context, accountID, tripID, content string) error
	DiscardEdit(ctx context.Context, accountID, tripID string) error
	ExportPDF(ctx context.Context, accountID, tripID string) ([]byte, error)
	GenerateRaw(ctx context.Context, prompt string) (string, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	aiClient ai.Client
	sessions mem.TripSessionStore
	logger   *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, aiClient ai.Client, sessions mem.TripSessionStore, logger *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		aiClient: aiClient,
		sessions: sessions,
		logger:   logger,
	}
}

// PlanTrip runs the whole planning flow: build the prompt, call the AI
// provider once, persist the trip with its raw response, seed the trip
// session, and derive the structured document.
func (t *TripService) PlanTrip(ctx context.Context, accountID string, req request_models.TripRequest) (*response_models.TripPlanResponse, error) {
	prompt := BuildTripPrompt(req)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := t.aiClient.GenerateItinerary(genCtx, prompt)
	if err != nil {
		t.logger.Warn("itinerary generation failed", zap.Error(err))
		return nil, utils.ErrAIUnavailable
	}

	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		t.logger.Error("invalid account id", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		AccountID:     ownerID,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Customization: req.Customization,
		RawResponse:   raw,
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		t.logger.Error("trip insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	tripID := trip.ID.String()
	t.seedSession(tripID, req, raw)

	header := tripHeader(req)
	doc := formatter.Format([]byte(raw), header)

	return &response_models.TripPlanResponse{
		TripID:   tripID,
		Trip:     header,
		Document: doc,
		Rendered: doc.RenderHTML(),
	}, nil
}

// GetTrip re-derives the structured document from the stored raw response.
// A saved edit takes precedence in the rendered field: whatever the user
// typed is the displayed truth, the structured model is not reconciled.
func (t *TripService) GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripPlanResponse, error) {
	trip, err := t.findOwned(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	header := headerFromTrip(trip)
	doc := formatter.Format([]byte(trip.RawResponse), header)

	rendered := doc.RenderHTML()
	if session, ok := t.sessions.Get(tripID); ok && session.EditedContent != "" {
		rendered = session.EditedContent
	}

	return &response_models.TripPlanResponse{
		TripID:   tripID,
		Trip:     header,
		Document: doc,
		Rendered: rendered,
	}, nil
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripSummary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	trips, err := t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		t.logger.Error("trip list failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, response_models.TripSummary{
			TripID:        trip.ID.String(),
			Destination:   trip.Destination,
			StartDate:     trip.StartDate,
			EndDate:       trip.EndDate,
			Customization: trip.Customization,
			CreatedAt:     trip.CreatedAt,
		})
	}
	return summaries, nil
}

// SaveEditedContent stores the rendered markup verbatim. No re-parsing: the
// submitted content becomes the new displayed truth.
func (t *TripService) SaveEditedContent(ctx context.Context, accountID, tripID, content string) error {
	trip, err := t.findOwned(ctx, accountID, tripID)
	if err != nil {
		return err
	}

	if t.sessions.SaveEdit(tripID, content) {
		return nil
	}

	// The session expired, rebuild it from the stored trip and retry.
	t.seedSession(tripID, requestFromTrip(trip), trip.RawResponse)
	t.sessions.SaveEdit(tripID, content)
	return nil
}

// DiscardEdit drops the saved edit so the trip falls back to the rendering
// derived from the stored raw response.
func (t *TripService) DiscardEdit(ctx context.Context, accountID, tripID string) error {
	if _, err := t.findOwned(ctx, accountID, tripID); err != nil {
		return err
	}
	t.sessions.ClearEdit(tripID)
	return nil
}

// ExportPDF walks the displayed document, preferring the saved edit over a
// fresh rendering so the export matches what the user sees.
func (t *TripService) ExportPDF(ctx context.Context, accountID, tripID string) ([]byte, error) {
	trip, err := t.findOwned(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	header := headerFromTrip(trip)
	rendered := ""
	if session, ok := t.sessions.Get(tripID); ok && session.EditedContent != "" {
		rendered = session.EditedContent
	} else {
		rendered = formatter.Format([]byte(trip.RawResponse), header).RenderHTML()
	}

	pdfBytes, err := export.BuildPDF(rendered, header)
	if err != nil {
		t.logger.Error("pdf generation failed", zap.Error(err), zap.String("trip_id", tripID))
		return nil, utils.ErrExportFailed
	}
	return pdfBytes, nil
}

// GenerateRaw forwards a prompt to the AI provider untouched, the original
// proxy behavior.
func (t *TripService) GenerateRaw(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := t.aiClient.GenerateItinerary(genCtx, prompt)
	if err != nil {
		t.logger.Warn("generation failed", zap.Error(err))
		return "", utils.ErrAIUnavailable
	}
	return raw, nil
}

func (t *TripService) findOwned(ctx context.Context, accountID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindByIDForAccount(ctx, tripID, accountID)
	if err != nil {
		t.logger.Error("trip lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (t *TripService) seedSession(tripID string, req request_models.TripRequest, raw string) {
	tripData, _ := json.Marshal(req)
	t.sessions.Put(tripID, mem.TripSession{
		TripData:    string(tripData),
		RawResponse: raw,
	}, sessionTTL)
}

func tripHeader(req request_models.TripRequest) formatter.TripHeader {
	return formatter.TripHeader{
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Customization: req.Customization,
	}
}

func headerFromTrip(trip *db_models.Trip) formatter.TripHeader {
	return formatter.TripHeader{
		Destination:   trip.Destination,
		StartDate:     trip.StartDate,
		EndDate:       trip.EndDate,
		Customization: trip.Customization,
	}
}

func requestFromTrip(trip *db_models.Trip) request_models.TripRequest {
	return request_models.TripRequest{
		Destination:   trip.Destination,
		StartDate:     trip.StartDate,
		EndDate:       trip.EndDate,
		Customization: trip.Customization,
	}
}
