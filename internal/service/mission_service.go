package service

import (
	"bytes"
	"context"
	"devita_backend/internal/config"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gorm.io/gorm"
)

// MissionService talks to the AI mission generator and turns its output
// into todos in the user's mission categories.
type MissionService struct {
	Users      UserStore
	Todos      TodoStore
	Categories CategoryStore

	client  *http.Client
	address string
	Loc     *time.Location
}

func NewMissionService(users UserStore, todos TodoStore, categories CategoryStore, cfg config.AIConfig, loc *time.Location) *MissionService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MissionService{
		Users:      users,
		Todos:      todos,
		Categories: categories,
		client:     &http.Client{Timeout: timeout},
		address:    cfg.Address,
		Loc:        loc,
	}
}

type missionGenRequest struct {
	PreferredCategories string `json:"preferredCategories"`
	Count               int    `json:"count"`
}

type missionGenResponse struct {
	Missions []string `json:"missions"`
}

type SaveFreeMissionRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"` // 2006-01-02
}

// requestMissions asks the AI server for mission titles. Any transport or
// decode failure surfaces as ErrAIServer.
func (s *MissionService) requestMissions(ctx context.Context, path string, req missionGenRequest) ([]string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrAIServer, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.address+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrAIServer, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrAIServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", util.ErrAIServer, resp.StatusCode)
	}

	var out missionGenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrAIServer, err)
	}
	if len(out.Missions) == 0 {
		return nil, fmt.Errorf("%w: empty mission list", util.ErrAIServer)
	}
	return out.Missions, nil
}

// DailyMission generates one daily mission title for the user.
func (s *MissionService) DailyMission(ctx context.Context, userID uint) (string, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	missions, err := s.requestMissions(ctx, "/missions/daily", missionGenRequest{
		PreferredCategories: user.PreferredCategories,
		Count:               1,
	})
	if err != nil {
		return "", err
	}
	return missions[0], nil
}

// FreeMissions generates candidate free missions the user can pick from.
func (s *MissionService) FreeMissions(ctx context.Context, userID uint, count int) ([]string, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if count <= 0 {
		count = 3
	}
	return s.requestMissions(ctx, "/missions/free", missionGenRequest{
		PreferredCategories: user.PreferredCategories,
		Count:               count,
	})
}

// SaveFreeMission stores a picked free mission as a todo in the user's
// free mission category.
func (s *MissionService) SaveFreeMission(userID uint, req SaveFreeMissionRequest) (*model.Todo, error) {
	date, err := time.ParseInLocation(dateLayout, req.Date, s.Loc)
	if err != nil {
		return nil, util.ErrInvalidInput
	}

	category, err := s.Categories.FindByUserAndName(userID, model.CategoryFreeMissionName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	todo := &model.Todo{
		UserID:     userID,
		CategoryID: category.ID,
		Title:      req.Title,
		Date:       date,
	}
	if err := s.Todos.Create(todo); err != nil {
		return nil, err
	}
	return s.Todos.FindByID(todo.ID)
}

// CreateDailyMissions fans a generated daily mission out to every user as
// a todo for today. Per-user failures are logged and skipped so one bad
// profile cannot stall the whole run.
func (s *MissionService) CreateDailyMissions(ctx context.Context) {
	users, err := s.Users.FindAll()
	if err != nil {
		logger.Log.Error("daily mission run failed to list users", zap.Error(err))
		return
	}

	today := time.Now().In(s.Loc)
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.Loc)

	for _, user := range users {
		title, err := s.requestMissions(ctx, "/missions/daily", missionGenRequest{
			PreferredCategories: user.PreferredCategories,
			Count:               1,
		})
		if err != nil {
			logger.Log.Warn("daily mission generation failed",
				zap.Uint("userID", user.ID), zap.Error(err))
			continue
		}

		category, err := s.Categories.FindByUserAndName(user.ID, model.CategoryDailyMissionName)
		if err != nil {
			logger.Log.Warn("daily mission category missing",
				zap.Uint("userID", user.ID), zap.Error(err))
			continue
		}

		todo := &model.Todo{
			UserID:     user.ID,
			CategoryID: category.ID,
			Title:      title[0],
			Date:       date,
		}
		if err := s.Todos.Create(todo); err != nil {
			logger.Log.Warn("daily mission todo create failed",
				zap.Uint("userID", user.ID), zap.Error(err))
		}
	}
	logger.Log.Info("daily mission run completed", zap.Int("users", len(users)))
}
