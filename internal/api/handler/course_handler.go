package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeCourseNotFound = 20301

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 课程列表
// GET /api/courses/
func (h *CourseHandler) ListCourses(c *gin.Context) {
	list, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.CourseResponse]{List: list})
}

// CreateCourse 创建课程
// POST /api/courses/
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.Created(c, course)
}

// GetCourse 课程详情
// GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := parseID(c, codeCourseNotFound, service.ErrCourseNotFound.Error())
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, course)
}

// ReplaceCourse 整体替换课程
// PUT /api/courses/:id
func (h *CourseHandler) ReplaceCourse(c *gin.Context) {
	id, ok := parseID(c, codeCourseNotFound, service.ErrCourseNotFound.Error())
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, course)
}

// DeleteCourse 删除课程（观察记录与报名级联删除）
// DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseID(c, codeCourseNotFound, service.ErrCourseNotFound.Error())
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.NoContent(c)
}

// handleCourseError 统一处理课程模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, codeCourseNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
