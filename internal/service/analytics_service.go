package service

import (
	"context"
	"encoding/json"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type AnalyticsService struct {
	StudyLogRepo *repository.StudyLogRepository
	Redis        *redis.Client
	Config       *config.Config
}

func NewAnalyticsService(studyLogRepo *repository.StudyLogRepository, rdb *redis.Client, cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{
		StudyLogRepo: studyLogRepo,
		Redis:        rdb,
		Config:       cfg,
	}
}

// YearHeatmap 一整年的每日刷题热力图数据
type YearHeatmap struct {
	Year  int                 `json:"year"`
	Days  []engine.DayBucket  `json:"days"`
	Stats engine.DensityStats `json:"stats"`
}

// GetYearHeatmap 聚合某年的每日刷题量。textbookID 为0时统计全部教材。
// 结果缓存在Redis（短TTL，到期重算）
func (s *AnalyticsService) GetYearHeatmap(year int, textbookID uint) (*YearHeatmap, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("heatmap:%d:%d", year, textbookID)

	if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached YearHeatmap
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	var logs []model.StudyLog
	var err error
	if textbookID > 0 {
		logs, err = s.StudyLogRepo.FindByTextbookAndYear(textbookID, year)
	} else {
		logs, err = s.StudyLogRepo.FindByYear(year)
	}
	if err != nil {
		return nil, err
	}

	buckets, stats := engine.YearDensity(year, logs)
	heatmap := &YearHeatmap{
		Year:  year,
		Days:  buckets,
		Stats: stats,
	}

	if payload, err := json.Marshal(heatmap); err == nil {
		ttl := s.Config.Cache.HeatmapTTL
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		s.Redis.Set(ctx, cacheKey, payload, ttl)
	}

	return heatmap, nil
}
