package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"exercise_tracker/internal/common"
	"exercise_tracker/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeExerciseRepo struct {
	created   []*model.Exercise
	createErr error

	findResult []model.Exercise
	findErr    error

	gotCreator primitive.ObjectID
	gotFrom    time.Time
	gotTo      time.Time
	gotLimit   int64
}

func (f *fakeExerciseRepo) Create(ctx context.Context, entry *model.Exercise) error {
	if f.createErr != nil {
		return f.createErr
	}
	entry.ID = primitive.NewObjectID()
	f.created = append(f.created, entry)
	return nil
}

func (f *fakeExerciseRepo) FindByCreator(ctx context.Context, creator primitive.ObjectID, from, to time.Time, limit int64) ([]model.Exercise, error) {
	f.gotCreator = creator
	f.gotFrom = from
	f.gotTo = to
	f.gotLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResult, nil
}

func newExerciseFixture() (*fakeUserRepo, *fakeExerciseRepo, *ExerciseService, *model.User) {
	userRepo := newFakeUserRepo()
	exerciseRepo := &fakeExerciseRepo{}
	svc := NewExerciseService(userRepo, exerciseRepo)
	user := userRepo.seed("alice")
	return userRepo, exerciseRepo, svc, user
}

func TestAddExerciseValidationOrder(t *testing.T) {
	_, _, svc, user := newExerciseFixture()

	tests := []struct {
		name string
		req  AddExerciseRequest
		want string
	}{
		{"missing userId", AddExerciseRequest{Description: "run", Duration: "30"}, "userId is required"},
		{"missing description", AddExerciseRequest{UserID: user.ID.Hex(), Duration: "30"}, "description is required"},
		{"missing duration", AddExerciseRequest{UserID: user.ID.Hex(), Description: "run"}, "duration is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddExercise(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, common.MessageFromError(err))
			assert.Equal(t, http.StatusBadRequest, common.HTTPStatusFromError(err))
		})
	}
}

func TestAddExerciseUnknownUser(t *testing.T) {
	_, exerciseRepo, svc, _ := newExerciseFixture()

	_, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      primitive.NewObjectID().Hex(),
		Description: "run",
		Duration:    "30",
	})
	require.Error(t, err)
	assert.Equal(t, "user doesn't exist", common.MessageFromError(err))
	assert.Equal(t, http.StatusNotFound, common.HTTPStatusFromError(err))
	assert.Empty(t, exerciseRepo.created)
}

func TestAddExerciseMalformedUserID(t *testing.T) {
	_, exerciseRepo, svc, _ := newExerciseFixture()

	_, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      "not-an-object-id",
		Description: "run",
		Duration:    "30",
	})
	require.Error(t, err)
	assert.Equal(t, "user doesn't exist", common.MessageFromError(err))
	assert.Empty(t, exerciseRepo.created)
}

func TestAddExerciseWithValidDate(t *testing.T) {
	userRepo, exerciseRepo, svc, user := newExerciseFixture()

	resp, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      user.ID.Hex(),
		Description: "run",
		Duration:    "30",
		Date:        "2023-05-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "run", resp.Description)
	assert.Equal(t, float64(30), resp.Duration)
	assert.Equal(t, user.ID.Hex(), resp.ID)
	assert.Equal(t, "May 01 2023", resp.Data)

	require.Len(t, exerciseRepo.created, 1)
	entry := exerciseRepo.created[0]
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, user.ID, entry.Creator)

	// The entry reference was appended to the user's log.
	require.Len(t, userRepo.pushed, 1)
	assert.Equal(t, entry.ID, userRepo.pushed[0])
}

func TestAddExerciseDefaultsDateToToday(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	_, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      user.ID.Hex(),
		Description: "run",
		Duration:    "30",
	})
	require.NoError(t, err)
	require.Len(t, exerciseRepo.created, 1)
	assert.Equal(t, common.Today(), exerciseRepo.created[0].Date)
}

func TestAddExerciseInvalidDateSilentlyIgnored(t *testing.T) {
	for _, badDate := range []string{"2021-13-40", "hello", "2021-02-29", "01-05-2023"} {
		t.Run(badDate, func(t *testing.T) {
			_, exerciseRepo, svc, user := newExerciseFixture()

			resp, err := svc.AddExercise(context.Background(), AddExerciseRequest{
				UserID:      user.ID.Hex(),
				Description: "run",
				Duration:    "30",
				Date:        badDate,
			})
			require.NoError(t, err)
			require.Len(t, exerciseRepo.created, 1)
			assert.Equal(t, common.Today(), exerciseRepo.created[0].Date)
			assert.Equal(t, common.FormatDay(common.Today()), resp.Data)
		})
	}
}

func TestAddExerciseZeroDurationString(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	resp, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      user.ID.Hex(),
		Description: "rest day",
		Duration:    "0",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), resp.Duration)
	require.Len(t, exerciseRepo.created, 1)
	assert.Equal(t, float64(0), exerciseRepo.created[0].Duration)
}

func TestAddExerciseNonNumericDuration(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	_, err := svc.AddExercise(context.Background(), AddExerciseRequest{
		UserID:      user.ID.Hex(),
		Description: "run",
		Duration:    "fast",
	})
	require.Error(t, err)
	assert.Equal(t, "duration must be a number", common.MessageFromError(err))
	assert.Empty(t, exerciseRepo.created)
}

func TestGetLogRequiresUserID(t *testing.T) {
	_, _, svc, _ := newExerciseFixture()

	_, err := svc.GetLog(context.Background(), GetLogRequest{})
	require.Error(t, err)
	assert.Equal(t, "userId is required", common.MessageFromError(err))
	assert.Equal(t, http.StatusBadRequest, common.HTTPStatusFromError(err))
}

func TestGetLogUnknownUser(t *testing.T) {
	_, _, svc, _ := newExerciseFixture()

	for _, userID := range []string{primitive.NewObjectID().Hex(), "garbage"} {
		resp, err := svc.GetLog(context.Background(), GetLogRequest{UserID: userID})
		require.NoError(t, err)
		assert.Nil(t, resp)
	}
}

func TestGetLogDefaultBounds(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	before := time.Now().UTC()
	_, err := svc.GetLog(context.Background(), GetLogRequest{UserID: user.ID.Hex()})
	require.NoError(t, err)

	assert.Equal(t, user.ID, exerciseRepo.gotCreator)
	assert.Equal(t, time.Unix(0, 0).UTC(), exerciseRepo.gotFrom)
	assert.False(t, exerciseRepo.gotTo.Before(before))
	assert.False(t, exerciseRepo.gotTo.After(time.Now().UTC()))
	assert.Equal(t, int64(0), exerciseRepo.gotLimit)
}

func TestGetLogParsesBoundsAndLimit(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	_, err := svc.GetLog(context.Background(), GetLogRequest{
		UserID: user.ID.Hex(),
		From:   "2023-01-01",
		To:     "2023-12-31",
		Limit:  "5",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), exerciseRepo.gotFrom)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), exerciseRepo.gotTo)
	assert.Equal(t, int64(5), exerciseRepo.gotLimit)
}

func TestGetLogMalformedBoundsFallBack(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()

	_, err := svc.GetLog(context.Background(), GetLogRequest{
		UserID: user.ID.Hex(),
		From:   "yesterday",
		To:     "2023-13-40",
		Limit:  "lots",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).UTC(), exerciseRepo.gotFrom)
	assert.False(t, exerciseRepo.gotTo.After(time.Now().UTC()))
	assert.Equal(t, int64(0), exerciseRepo.gotLimit)
}

func TestGetLogProjectsEntries(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()
	exerciseRepo.findResult = []model.Exercise{
		{Description: "run", Duration: 30, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Description: "swim", Duration: 45, Date: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	resp, err := svc.GetLog(context.Background(), GetLogRequest{UserID: user.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, user.ID.Hex(), resp.ID)
	require.Len(t, resp.Log, 2)
	assert.Equal(t, "run", resp.Log[0].Description)
	assert.Equal(t, float64(30), resp.Log[0].Duration)
	assert.True(t, strings.HasPrefix(resp.Log[0].Date, "Mon May 01 2023"))
	assert.Equal(t, "swim", resp.Log[1].Description)
}

func TestGetLogStoreErrorSurfaces(t *testing.T) {
	_, exerciseRepo, svc, user := newExerciseFixture()
	exerciseRepo.findErr = errors.New("cursor error")

	_, err := svc.GetLog(context.Background(), GetLogRequest{UserID: user.ID.Hex()})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, common.HTTPStatusFromError(err))
	assert.Equal(t, "Internal Server Error", common.MessageFromError(err))
}
