package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/schedule"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

type datasetGetter interface {
	Get(ctx context.Context, id string) (*models.ExamDataset, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the teacher, room and day views of a dataset.
type DashboardService struct {
	datasets datasetGetter
	cache    *CacheService
	logger   *zap.Logger
	now      func() time.Time
	cfg      DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(datasets datasetGetter, cache *CacheService, cfg DashboardServiceConfig, logger *zap.Logger) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		datasets: datasets,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// WithClock overrides the clock used for "today" flags.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// today keys cached views by date because they embed "today" flags.
func (s *DashboardService) today() string {
	return s.now().Format("2006-01-02")
}

// Teachers returns teacher groups, optionally restricted to one normalised teacher name.
func (s *DashboardService) Teachers(ctx context.Context, datasetID, teacher string) (*dto.TeacherScheduleResponse, bool, error) {
	filter := ""
	if teacher != "" {
		filter = schedule.NormalizeTeacherName(teacher)
	}
	key := DatasetKey(datasetID, "teachers", s.today(), filter)
	return remember(ctx, s.cache, key, s.cfg.CacheTTL, func() (*dto.TeacherScheduleResponse, error) {
		ds, err := s.datasets.Get(ctx, datasetID)
		if err != nil {
			return nil, err
		}
		now := s.now()
		directory := dataset.DirectoryByShortName(ds.TeacherDirectory)
		groups := schedule.BuildTeacherSchedule(ds.Missions)

		resp := &dto.TeacherScheduleResponse{DatasetID: ds.ID, Groups: make([]dto.TeacherGroupView, 0, len(groups))}
		for _, group := range groups {
			if filter != "" && group.Teacher != filter {
				continue
			}
			resp.Groups = append(resp.Groups, teacherGroupView(*ds, group, directory, now))
		}
		if filter != "" && len(resp.Groups) == 0 {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher "+filter+" has no mission")
		}
		return resp, nil
	})
}

func teacherGroupView(ds models.ExamDataset, group models.TeacherScheduleGroup, directory map[string]models.TeacherDirectoryEntry, now time.Time) dto.TeacherGroupView {
	view := dto.TeacherGroupView{
		Teacher:     group.Teacher,
		DisplayName: group.Teacher,
		Unassigned:  group.Teacher == schedule.UnassignedTeacher,
		Missions:    make([]dto.MissionView, 0, len(group.Missions)),
	}
	if entry, ok := directory[group.Teacher]; ok {
		view.DisplayName = entry.FullName()
	}
	for _, m := range group.Missions {
		mv := missionView(ds, m, now)
		view.TotalSeconds += mv.DurationSeconds
		view.Missions = append(view.Missions, mv)
	}
	view.TotalDurationLabel = schedule.FormatDuration(view.TotalSeconds)
	return view
}

func missionView(ds models.ExamDataset, m models.SurveillanceMission, now time.Time) dto.MissionView {
	seconds := schedule.ParseDuration(m.Duration)
	mv := dto.MissionView{
		SurveillanceMission: m,
		TypeLabel:           ds.TypeLabel(m.Type),
		DurationSeconds:     seconds,
		DurationLabel:       schedule.FormatDuration(seconds),
		Today:               schedule.IsDatetimeToday(m.Datetime, now),
	}
	if dt, ok := schedule.ParseMissionDatetime(m.Datetime); ok {
		mv.Highlight = schedule.GetBlockHighlight("", dt.StartTime())
	}
	return mv
}

// Rooms returns the merged room grid with per-session palettes and per-cell layout.
func (s *DashboardService) Rooms(ctx context.Context, datasetID string) (*dto.RoomGridResponse, bool, error) {
	return remember(ctx, s.cache, DatasetKey(datasetID, "rooms", s.today()), s.cfg.CacheTTL, func() (*dto.RoomGridResponse, error) {
		ds, err := s.datasets.Get(ctx, datasetID)
		if err != nil {
			return nil, err
		}
		if skipped := schedule.CountSkippedSupportMissions(ds.Missions); skipped > 0 {
			s.logger.Warn("support missions left out of the room grid", zap.String("dataset_id", ds.ID), zap.Int("count", skipped))
		}
		now := s.now()
		merged := schedule.MergeRoomGrid(ds.RoomSchedule, ds.RoomColumns, ds.Missions)
		resp := &dto.RoomGridResponse{
			DatasetID: ds.ID,
			Columns:   nonNil(ds.RoomColumns),
			Days:      make([]dto.RoomDayView, 0, len(merged)),
		}
		for _, day := range merged {
			view := dto.RoomDayView{
				Day:   day.Day,
				Today: schedule.IsDayLabelToday(day.Day, now),
				Cells: make([]dto.RoomCellView, 0, len(day.Rooms)),
			}
			for _, room := range day.Rooms {
				cell := dto.RoomCellView{
					Room:     room.Room,
					Layout:   schedule.CellLayoutFor(room.Sessions),
					Sessions: make([]dto.SessionView, 0, len(room.Sessions)),
				}
				for _, session := range room.Sessions {
					cell.Sessions = append(cell.Sessions, dto.SessionView{
						RoomSession: session,
						Period:      schedule.ClassifySession(session.Label, session.Time),
						Palette:     schedule.GetBlockHighlight(session.Label, session.Time),
					})
				}
				view.Cells = append(view.Cells, cell)
			}
			resp.Days = append(resp.Days, view)
		}
		return resp, nil
	})
}

// RoomTimelines returns the merged grid pivoted per room.
func (s *DashboardService) RoomTimelines(ctx context.Context, datasetID string) (*dto.RoomTimelineResponse, bool, error) {
	return remember(ctx, s.cache, DatasetKey(datasetID, "timelines"), s.cfg.CacheTTL, func() (*dto.RoomTimelineResponse, error) {
		ds, err := s.datasets.Get(ctx, datasetID)
		if err != nil {
			return nil, err
		}
		merged := schedule.MergeRoomGrid(ds.RoomSchedule, ds.RoomColumns, ds.Missions)
		return &dto.RoomTimelineResponse{DatasetID: ds.ID, Rooms: schedule.PerRoomSchedule(merged, ds.RoomColumns)}, nil
	})
}

// Days returns the day-by-day slot view.
func (s *DashboardService) Days(ctx context.Context, datasetID string) (*dto.DayScheduleResponse, bool, error) {
	return remember(ctx, s.cache, DatasetKey(datasetID, "days", s.today()), s.cfg.CacheTTL, func() (*dto.DayScheduleResponse, error) {
		ds, err := s.datasets.Get(ctx, datasetID)
		if err != nil {
			return nil, err
		}
		now := s.now()
		days := schedule.BuildDaySchedule(ds.RoomSchedule, ds.Missions)
		resp := &dto.DayScheduleResponse{DatasetID: ds.ID, Days: make([]dto.DayView, 0, len(days))}
		for _, day := range days {
			view := dto.DayView{
				Day:   day.Day,
				Today: schedule.IsDayLabelToday(day.Day, now),
				Slots: make([]dto.SlotView, 0, len(day.Slots)),
			}
			for _, slot := range day.Slots {
				view.Slots = append(view.Slots, dto.SlotView{
					Key:     slot.Key,
					Time:    slot.Time,
					Label:   slot.Label,
					Palette: schedule.GetBlockHighlight(slot.Label, slot.Time),
					Entries: slot.Entries,
				})
			}
			resp.Days = append(resp.Days, view)
		}
		return resp, nil
	})
}

// Refresh drops the cached views of a dataset after checking it exists.
func (s *DashboardService) Refresh(ctx context.Context, datasetID string) error {
	if _, err := s.datasets.Get(ctx, datasetID); err != nil {
		return err
	}
	if err := s.cache.InvalidateDataset(ctx, datasetID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to invalidate dataset cache")
	}
	return nil
}
