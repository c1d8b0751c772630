package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"exercise_tracker/internal/common"
	"exercise_tracker/internal/domain/model"
	"exercise_tracker/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{userRepo: userRepo, exerciseRepo: exerciseRepo}
}

type AddExerciseRequest struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExerciseResponse echoes the created entry. The formatted date is carried
// under "data" and the id field holds the user's id, both kept for contract
// compatibility with existing clients.
type AddExerciseResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	ID          string  `json:"id"`
	Data        string  `json:"data"`
}

func (s *ExerciseService) AddExercise(ctx context.Context, req AddExerciseRequest) (*AddExerciseResponse, error) {
	required := []struct {
		name, value string
	}{
		{"userId", req.UserID},
		{"description", req.Description},
		{"duration", req.Duration},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, common.NewValidationError(field.name + " is required")
		}
	}

	duration, err := strconv.ParseFloat(req.Duration, 64)
	if err != nil {
		return nil, common.NewValidationError("duration must be a number")
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, common.NewNotFoundError("user doesn't exist")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewNotFoundError("user doesn't exist")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// A malformed date silently keeps the default of today.
	date := common.Today()
	if req.Date != "" {
		if parsed, ok := common.ParseDay(req.Date); ok {
			date = parsed
		}
	}

	entry := &model.Exercise{
		Description: req.Description,
		Duration:    duration,
		Date:        date,
		Creator:     user.ID,
	}
	if err := s.exerciseRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}
	if err := s.userRepo.PushLogEntry(ctx, user.ID, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to append log entry: %w", err)
	}

	return &AddExerciseResponse{
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		ID:          user.ID.Hex(),
		Data:        common.FormatDay(entry.Date),
	}, nil
}

type GetLogRequest struct {
	UserID string
	From   string
	To     string
	Limit  string
}

type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type GetLogResponse struct {
	Username string     `json:"username"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}

// GetLog returns a nil response without error for an unknown user; the
// handler serializes that as a 200 with a null body, matching the existing
// contract.
func (s *ExerciseService) GetLog(ctx context.Context, req GetLogRequest) (*GetLogResponse, error) {
	if req.UserID == "" {
		return nil, common.NewValidationError("userId is required")
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	from := time.Unix(0, 0).UTC()
	if parsed, ok := common.ParseDay(req.From); ok {
		from = parsed
	}
	to := time.Now().UTC()
	if parsed, ok := common.ParseDay(req.To); ok {
		to = parsed
	}

	var limit int64
	if n, parseErr := strconv.ParseInt(req.Limit, 10, 64); parseErr == nil && n > 0 {
		limit = n
	}

	entries, err := s.exerciseRepo.FindByCreator(ctx, user.ID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch log: %w", err)
	}

	logEntries := make([]LogEntry, 0, len(entries))
	for _, entry := range entries {
		logEntries = append(logEntries, LogEntry{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        common.DateString(entry.Date),
		})
	}

	return &GetLogResponse{Username: user.Username, ID: user.ID.Hex(), Log: logEntries}, nil
}
