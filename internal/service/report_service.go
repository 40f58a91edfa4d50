package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReportService computes summaries on demand from the full matching
// progress set. Results go through a short-TTL redis read-through cache;
// writes invalidate the affected keys. The recomputation is O(matching
// rows) per miss, which is fine at classroom scale.
type ReportService struct {
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
	TTL          time.Duration
}

func NewReportService(progressRepo *repository.ProgressRepository, rdb *redis.Client) *ReportService {
	return &ReportService{
		ProgressRepo: progressRepo,
		Redis:        rdb,
		TTL:          time.Minute,
	}
}

func (s *ReportService) StudentSummary(ctx context.Context, studentID uint) (*model.StudentSummary, error) {
	key := fmt.Sprintf("report:student:%d", studentID)
	var cached model.StudentSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.ProgressRepo.SummarizeStudent(studentID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, summary)
	return summary, nil
}

func (s *ReportService) ModuleSummary(ctx context.Context, moduleID uint) (*model.ContentSummary, error) {
	key := fmt.Sprintf("report:module:%d", moduleID)
	var cached model.ContentSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.ProgressRepo.SummarizeModule(moduleID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, summary)
	return summary, nil
}

func (s *ReportService) QuizSummary(ctx context.Context, quizID uint) (*model.ContentSummary, error) {
	key := fmt.Sprintf("report:quiz:%d", quizID)
	var cached model.ContentSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.ProgressRepo.SummarizeQuiz(quizID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, summary)
	return summary, nil
}

func (s *ReportService) RosterSummary(ctx context.Context, teacherID uint) (*model.RosterSummary, error) {
	key := fmt.Sprintf("report:roster:%d", teacherID)
	var cached model.RosterSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.ProgressRepo.SummarizeRoster(teacherID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, summary)
	return summary, nil
}

// Invalidate drops the cache entries a progress write can affect.
func (s *ReportService) Invalidate(ctx context.Context, studentID, teacherID uint, moduleID, quizID *uint) {
	if s.Redis == nil {
		return
	}
	keys := []string{fmt.Sprintf("report:student:%d", studentID)}
	if teacherID != 0 {
		keys = append(keys, fmt.Sprintf("report:roster:%d", teacherID))
	}
	if moduleID != nil {
		keys = append(keys, fmt.Sprintf("report:module:%d", *moduleID))
	}
	if quizID != nil {
		keys = append(keys, fmt.Sprintf("report:quiz:%d", *quizID))
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("report cache invalidation failed", zap.Error(err))
	}
}

func (s *ReportService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.Redis == nil {
		return false
	}
	raw, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *ReportService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, s.TTL).Err(); err != nil {
		logger.Log.Warn("report cache write failed", zap.Error(err))
	}
}
