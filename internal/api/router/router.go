package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/config"
	"github.com/twistin/xestion-conservatorio-rsp/internal/api/handler"
	"github.com/twistin/xestion-conservatorio-rsp/internal/api/middleware"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil（不限流）；toggle 每次请求实时读取 IA 开关
func Setup(cfg *config.Config, h *handler.Handler, toggle middleware.IAToggle, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 欢迎页与健康检查 ──
	r.GET("/", handler.Welcome)
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/", handler.Welcome)
		api.GET("/hello/", handler.Hello)

		// 学生模块
		students := api.Group("/students")
		{
			students.GET("/", h.Student.ListStudents)
			students.POST("/", h.Student.CreateStudent)
			students.GET("/by_user/:user_id", h.Student.GetStudentByUser)
			students.GET("/:id", h.Student.GetStudent)
			students.PUT("/:id", h.Student.ReplaceStudent)
			students.DELETE("/:id", h.Student.DeleteStudent)
		}

		// 教师模块
		professors := api.Group("/professors")
		{
			professors.GET("/", h.Professor.ListProfessors)
			professors.POST("/", h.Professor.CreateProfessor)
			professors.GET("/:id", h.Professor.GetProfessor)
			professors.PUT("/:id", h.Professor.ReplaceProfessor)
			professors.DELETE("/:id", h.Professor.DeleteProfessor)
		}

		// 课程模块
		courses := api.Group("/courses")
		{
			courses.GET("/", h.Course.ListCourses)
			courses.POST("/", h.Course.CreateCourse)
			courses.GET("/calendar.ics", h.Export.ExportCourseCalendar)
			courses.GET("/:id", h.Course.GetCourse)
			courses.PUT("/:id", h.Course.ReplaceCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		// 缴费模块
		payments := api.Group("/payments")
		{
			payments.GET("/", h.Payment.ListPayments)
			payments.POST("/", h.Payment.CreatePayment)
			payments.GET("/:id", h.Payment.GetPayment)
			payments.PUT("/:id", h.Payment.ReplacePayment)
			payments.DELETE("/:id", h.Payment.DeletePayment)
		}

		// 乐器目录
		instruments := api.Group("/instruments")
		{
			instruments.GET("/", h.Instrument.ListInstruments)
			instruments.POST("/", h.Instrument.CreateInstrument)
		}

		// 观察记录模块
		observations := api.Group("/observations")
		{
			observations.GET("/", h.Observation.ListObservations)
			observations.POST("/", h.Observation.CreateObservation)
			observations.GET("/:id", h.Observation.GetObservation)
			observations.PUT("/:id", h.Observation.ReplaceObservation)
			observations.DELETE("/:id", h.Observation.DeleteObservation)
		}

		// 报名模块
		enrollments := api.Group("/enrollments")
		{
			enrollments.GET("/", h.Enrollment.ListEnrollments)
			enrollments.POST("/", h.Enrollment.CreateEnrollment)
			enrollments.GET("/:id", h.Enrollment.GetEnrollment)
			enrollments.PUT("/:id", h.Enrollment.ReplaceEnrollment)
			enrollments.DELETE("/:id", h.Enrollment.DeleteEnrollment)
		}

		// 通知模块
		notifications := api.Group("/notifications")
		{
			notifications.GET("/", h.Notification.ListNotifications)
			notifications.POST("/", h.Notification.CreateNotification)
			notifications.GET("/:id", h.Notification.GetNotification)
			notifications.PUT("/:id", h.Notification.ReplaceNotification)
			notifications.DELETE("/:id", h.Notification.DeleteNotification)
			notifications.POST("/:id/read", h.Notification.MarkRead)
		}

		// 全局开关（不受 IA 开关限制）
		cfgGroup := api.Group("/config")
		{
			cfgGroup.GET("/ia_enabled/", h.SystemConfig.GetIAEnabled)
			cfgGroup.POST("/ia_enabled/", h.SystemConfig.SetIAEnabled)
		}

		// 助手模块：开关关闭时 503，按 IP 限流
		ia := api.Group("/ia",
			middleware.IAGate(toggle),
			middleware.RateLimit(rdb, cfg.Feature.IARateLimit, cfg.Feature.IARateWindow, logger),
		)
		{
			ia.GET("/enrollment-analysis/", h.IA.EnrollmentAnalysis)
			ia.GET("/schedule-optimization/", h.IA.ScheduleOptimization)
			ia.GET("/demand-prediction/", h.IA.DemandPrediction)
			ia.POST("/professor-faq/", h.IA.ProfessorFAQ)
			ia.POST("/document-review/", h.IA.DocumentReview)
			ia.GET("/generate-report/", h.IA.GenerateReport)
			ia.POST("/resources-suggestions/", h.IA.ResourceSuggestions)
			ia.POST("/generate-family-message/", h.IA.FamilyMessage)
		}
	}

	return r
}
