package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const DefaultTopN = 5

type OccupationMatch struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Similarity float64  `json:"similarity"`
	Careers    []string `json:"careers,omitempty"`
	Degenerate bool     `json:"degenerate,omitempty"`
}

type RecommendationResult struct {
	Occupation          OccupationMatch                 `json:"occupation"`
	SuggestedCareers    []string                        `json:"suggested_careers"`
	TopOccupations      []OccupationMatch               `json:"top_occupations"`
	UserProfile         map[assessment.Category]float64 `json:"user_profile"`
	UserProfileScaled   map[assessment.Category]float64 `json:"user_profile_scaled"`
	PartialProfile      bool                            `json:"partial_profile"`
	DefaultedDimensions []assessment.Category           `json:"defaulted_dimensions"`
}

type RecommendationService interface {
	Predict(ctx context.Context, userID uuid.UUID) (*RecommendationResult, error)
}

type RecommendationConfig struct {
	TopN    int
	Metrics *observability.Metrics
}

type recommendationService struct {
	log      *logger.Logger
	profiles ProfileService
	catalog  CatalogService
	topN     int
	metrics  *observability.Metrics
	tracer   trace.Tracer
}

func NewRecommendationService(log *logger.Logger, profiles ProfileService, catalog CatalogService, cfg RecommendationConfig) RecommendationService {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	return &recommendationService{
		log:      log.With("service", "RecommendationService"),
		profiles: profiles,
		catalog:  catalog,
		topN:     cfg.TopN,
		metrics:  cfg.Metrics,
		tracer:   otel.Tracer("careerpath/recommendation"),
	}
}

func (s *recommendationService) Predict(ctx context.Context, userID uuid.UUID) (_ *RecommendationResult, err error) {
	const op = "recommendation.Predict"
	ctx, span := s.tracer.Start(ctx, op)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(domain.CodeOf(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		s.metrics.IncPrediction(outcome)
		span.End()
	}()

	profile, err := s.profiles.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	query := recommendation.BuildQuery(profile)
	partial := !profile.Complete()
	span.SetAttributes(
		attribute.Int("profile.categories", len(profile)),
		attribute.Bool("profile.partial", partial),
	)
	if partial {
		s.log.Warn("Partial profile, defaulting missing categories", "user_id", userID, "defaulted", query.Defaulted)
	}

	cat, err := s.catalog.Occupations(ctx)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, domain.NotFound(op, "no occupations available")
	}

	ranked, err := recommendation.Rank(query.Scaled, cat)
	if err != nil {
		if errors.Is(err, recommendation.ErrDegenerateVector) {
			return nil, domain.NewError(domain.CodeDegenerateVector, op, "insufficient data, retake the test", err)
		}
		return nil, domain.Wrap(domain.CodeInternal, op, err)
	}
	top := recommendation.TopN(ranked, s.topN)
	span.SetAttributes(attribute.Int("catalog.size", cat.Len()))

	res := &RecommendationResult{
		TopOccupations:      make([]OccupationMatch, 0, len(top)),
		UserProfile:         make(map[assessment.Category]float64, len(profile)),
		UserProfileScaled:   query.Scaled.Map(),
		PartialProfile:      partial,
		DefaultedDimensions: query.Defaulted,
	}
	for c, v := range profile {
		res.UserProfile[c] = v
	}
	for _, m := range top {
		res.TopOccupations = append(res.TopOccupations, OccupationMatch{
			ID:         m.Occupation.ID,
			Name:       m.Occupation.Name,
			Similarity: m.Similarity,
			Careers:    programsOf(m.Occupation),
			Degenerate: m.Degenerate,
		})
	}
	best := res.TopOccupations[0]
	res.Occupation = OccupationMatch{ID: best.ID, Name: best.Name, Similarity: best.Similarity}
	res.SuggestedCareers = programsOf(top[0].Occupation)
	span.SetAttributes(attribute.Int64("result.occupation_id", int64(best.ID)))
	return res, nil
}

func programsOf(o domain.Occupation) []string {
	out := make([]string, 0, len(o.Programs))
	return append(out, o.Programs...)
}
