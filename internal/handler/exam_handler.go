package handler

import (
	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExamHandler handles HTTP requests for exam history.
type ExamHandler struct {
	service service.ExamServicer
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(service service.ExamServicer) *ExamHandler {
	return &ExamHandler{service: service}
}

// GetExamHistory godoc
// @Summary      Get exam history
// @Description  Return a student's exam history; students with no attempts get an empty record
// @Tags         exams
// @Produce      json
// @Param        studentId  query     string  true  "Student ID"
// @Success      200        {object}  response.Response{data=models.ExamHistory}
// @Failure      400        {object}  response.Response
// @Router       /get-exam-history [get]
func (h *ExamHandler) GetExamHistory(c *gin.Context) {
	studentID := c.Query("studentId")
	if studentID == "" {
		response.BadRequest(c, "studentId is required")
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, history)
}

// SubmitExam godoc
// @Summary      Submit an exam result
// @Description  Append an exam attempt to the student's history; repeated submissions append duplicate entries
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        request  body      models.SubmitExamRequest  true  "Exam submission"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /submit-exam [post]
func (h *ExamHandler) SubmitExam(c *gin.Context) {
	var req models.SubmitExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitExam(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{
		"message": "Exam submitted successfully",
		"result":  result,
	})
}
