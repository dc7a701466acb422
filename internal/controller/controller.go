package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
	"github.com/wfparrish/rhcsa-command-tool/internal/service"
)

const LivenessMessage = "RHCSA command practice API is running"

type Controller struct {
	questionSvc   service.QuestionService
	validationSvc service.ValidationService
	repo          repository.QuestionRepository
}

func NewController(qSvc service.QuestionService, vSvc service.ValidationService, repo repository.QuestionRepository) *Controller {
	useJSONFieldNames()
	return &Controller{
		questionSvc:   qSvc,
		validationSvc: vSvc,
		repo:          repo,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.LivenessHandler)
	router.GET("/healthz", ctrl.HealthHandler)

	api := router.Group("/api")
	{
		api.GET("/questions", ctrl.GetQuestionsHandler)
		api.GET("/questions/:id", ctrl.GetQuestionHandler)
		api.POST("/validate", ctrl.ValidateAnswerHandler)
	}
}

// LivenessHandler godoc
// @Summary Liveness message
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (ctrl *Controller) LivenessHandler(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}

// HealthHandler godoc
// @Summary Health check
// @Description Reports readiness and the number of loaded questions
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Questions: ctrl.repo.Count()})
}

// GetQuestionsHandler godoc
// @Summary List questions
// @Description Returns every question with its steps. Answers and explanations are never included.
// @Tags questions
// @Produce json
// @Success 200 {array} dto.PublicQuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.ListPublic()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Description Returns a single question without answers or explanations
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.PublicQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /api/questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}

	question, err := ctrl.questionSvc.GetPublic(id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Int("id", id).Msg("Failed to get question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// ValidateAnswerHandler godoc
// @Summary Validate an answer
// @Description Compares the answer with the expected one, ignoring case and surrounding whitespace.
// @Description A wrong answer is a 200 response with isCorrect=false and the expected answer.
// @Tags validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateRequest true "Question, step and answer"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed request"
// @Failure 404 {object} dto.ErrorResponse "Question or step not found"
// @Router /api/validate [post]
func (ctrl *Controller) ValidateAnswerHandler(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ValidateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Malformed request", Details: describeBindError(err)})
		return
	}

	result, err := ctrl.validationSvc.Validate(*req.QuestionID, *req.StepID, *req.UserAnswer)
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
		return
	case errors.Is(err, service.ErrStepNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Step not found"})
		return
	case err != nil:
		log.Error().Err(err).Msg("Failed to validate answer")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to validate answer"})
		return
	}

	log.Debug().
		Int("questionId", *req.QuestionID).
		Int("stepId", *req.StepID).
		Bool("isCorrect", result.IsCorrect).
		Msg("Answer validated")
	c.JSON(http.StatusOK, result)
}

func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

var tagNameOnce sync.Once

// useJSONFieldNames makes validation errors name fields as clients send them.
func useJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}
