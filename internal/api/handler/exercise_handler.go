package handler

import (
	"net/http"

	"exercise_tracker/internal/app/service"
	"exercise_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

func (h *ExerciseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/add", h.addExercise)
	r.Get("/log", h.getLog)
}

func (h *ExerciseHandler) addExercise(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.exerciseService.AddExercise(r.Context(), service.AddExerciseRequest{
		UserID:      body.get("userId"),
		Description: body.get("description"),
		Duration:    body.get("duration"),
		Date:        body.get("date"),
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ExerciseHandler) getLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.exerciseService.GetLog(r.Context(), service.GetLogRequest{
		UserID: query.Get("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
