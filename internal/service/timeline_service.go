package service

import (
	"context"
	"encoding/json"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
)

const timelineCacheKey = "timeline:events"

type TimelineService struct {
	ScheduleRepo *repository.ScheduleRepository
	ExamRepo     *repository.ExamRepository
	Redis        *redis.Client
	Config       *config.Config
}

func NewTimelineService(scheduleRepo *repository.ScheduleRepository, examRepo *repository.ExamRepository, rdb *redis.Client, cfg *config.Config) *TimelineService {
	return &TimelineService{
		ScheduleRepo: scheduleRepo,
		ExamRepo:     examRepo,
		Redis:        rdb,
		Config:       cfg,
	}
}

// BuildEvents 从存储层取出计划和考试，聚合为时间轴事件（未排序）
func (s *TimelineService) BuildEvents() ([]engine.Event, error) {
	schedules, err := s.ScheduleRepo.FindAllWithTextbook()
	if err != nil {
		return nil, err
	}

	exams, err := s.ExamRepo.FindByMock(false)
	if err != nil {
		return nil, err
	}

	mocks, err := s.ExamRepo.FindByMock(true)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	events := engine.BuildTimeline(schedules, exams, mocks)
	monitoring.TimelineBuildDuration.Observe(time.Since(start).Seconds())

	return events, nil
}

// GetTimeline 返回按开始日期排序的时间轴，可选 [from, to] 窗口筛选。
// 完整排序结果缓存在Redis里（短TTL，按期重算，不做增量修补）
func (s *TimelineService) GetTimeline(from, to string) ([]engine.Event, error) {
	if (from == "") != (to == "") {
		return nil, util.ErrInvalidDate
	}
	if from != "" && (!engine.IsValidDate(from) || !engine.IsValidDate(to)) {
		return nil, util.ErrInvalidDate
	}

	sorted, err := s.sortedEvents()
	if err != nil {
		return nil, err
	}

	if from != "" {
		return engine.WithinWindow(sorted, from, to), nil
	}
	return sorted, nil
}

func (s *TimelineService) sortedEvents() ([]engine.Event, error) {
	ctx := context.Background()

	if val, err := s.Redis.Get(ctx, timelineCacheKey).Result(); err == nil {
		var cached []engine.Event
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.BuildEvents()
	if err != nil {
		return nil, err
	}
	sorted := engine.Sorted(events)

	if payload, err := json.Marshal(sorted); err == nil {
		ttl := s.Config.Cache.TimelineTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		s.Redis.Set(ctx, timelineCacheKey, payload, ttl)
	}

	return sorted, nil
}

// InvalidateCache 写路径变更计划/考试后让缓存失效
func (s *TimelineService) InvalidateCache() {
	s.Redis.Del(context.Background(), timelineCacheKey)
}
