package quiz

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/devllmops-quiz/internal/config"
)

type Handler struct {
	questions QuestionService
	grading   GradingService
}

func NewHandler(questions QuestionService, grading GradingService) *Handler {
	return &Handler{questions: questions, grading: grading}
}

// ListQuestions godoc
// @Summary      List quiz questions
// @Description  Returns every question in bank order, without the answer key.
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  QuestionsResponse
// @Router       /api/questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, QuestionsResponse{
		Questions: h.questions.ListPublicQuestions(r.Context()),
	})
}

// SubmitAnswers godoc
// @Summary      Grade submitted answers
// @Description  Scores a mapping of question id to selected option index.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswersRequest  true  "Selected option per question id"
// @Success      200   {object}  GradeReport
// @Failure      422   {object}  map[string]string
// @Router       /api/answers [post]
func (h *Handler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	submission, err := DecodeSubmission(r.Body)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrInvalidBody):
			log.WithError(err).Warn("Invalid request body for answer submission")
			config.Error(w, http.StatusUnprocessableEntity, ErrInvalidBody.Error())
		case errors.Is(err, ErrMissingAnswers):
			log.Warn("Answer submission without answers field")
			config.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &verr):
			log.WithError(err).Warn("Answer submission failed validation")
			config.Error(w, http.StatusUnprocessableEntity, verr.Error())
		default:
			log.WithError(err).Error("Unexpected error decoding answer submission")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, h.grading.Grade(r.Context(), submission))
}
