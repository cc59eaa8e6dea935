package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUsecases "gurukul/internal/application/catalog/usecases"
	"gurukul/internal/domain/course"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/utils"
)

// CourseHandler serves catalog reads
type CourseHandler struct {
	listCoursesUC listCoursesUseCase
	getCourseUC   getCourseUseCase
	logger        logger.Interface
}

func NewCourseHandler(
	listCoursesUC listCoursesUseCase,
	getCourseUC getCourseUseCase,
	logger logger.Interface,
) *CourseHandler {
	return &CourseHandler{
		listCoursesUC: listCoursesUC,
		getCourseUC:   getCourseUC,
		logger:        logger,
	}
}

// ListCourses lists the catalog for one course type
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courseType := c.DefaultQuery("type", course.KindStandard.String())

	result, err := h.listCoursesUC.Execute(c.Request.Context(), catalogUsecases.ListCoursesQuery{
		CourseType: courseType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCourse returns one catalog entry with its rendered description
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseType := c.DefaultQuery("type", course.KindStandard.String())

	result, err := h.getCourseUC.Execute(c.Request.Context(), catalogUsecases.GetCourseQuery{
		CourseID:   c.Param("id"),
		CourseType: courseType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
