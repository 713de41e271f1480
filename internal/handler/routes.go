package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/middleware"
	"github.com/ajs-hub/placement-api/internal/models"
)

// Handlers bundles every HTTP handler mounted under the API prefix.
type Handlers struct {
	Auth          *AuthHandler
	Students      *StudentHandler
	Drives        *DriveHandler
	Eligibility   *EligibilityHandler
	Jobs          *JobHandler
	Notifications *NotificationHandler
	Colleges      *CollegeHandler
	Departments   *DepartmentHandler
	Announcements *AnnouncementHandler
	Events        *EventHandler
	Meetings      *MeetingHandler
	Courses       *CourseHandler
	Dashboard     *DashboardHandler
	Metrics       *MetricsHandler
}

var (
	admin      = string(models.RoleAdmin)
	department = string(models.RoleDepartment)
	student    = string(models.RoleStudent)
)

// RegisterRoutes mounts the API on group. authenticate runs before every
// route except login.
func RegisterRoutes(group *gin.RouterGroup, h Handlers, authenticate gin.HandlerFunc, logger *zap.Logger) {
	staff := middleware.RBAC(admin, department)
	adminOnly := middleware.RBAC(admin)
	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(logger, action, resource)
	}

	group.POST("/auth/login", h.Auth.Login)

	secured := group.Group("")
	secured.Use(authenticate)
	secured.GET("/auth/me", h.Auth.Me)

	students := secured.Group("/students")
	students.GET("", staff, h.Students.List)
	students.POST("", staff, audit("create", "student"), h.Students.Create)
	students.POST("/import", staff, audit("import", "student"), h.Students.Import)
	students.GET("/enrollment/:enrollment", staff, h.Students.GetByEnrollment)
	students.GET("/:id", middleware.RBAC(admin, department, middleware.Self), h.Students.Get)
	students.PUT("/:id", staff, audit("update", "student"), h.Students.Update)

	drives := secured.Group("/drives")
	drives.GET("", h.Drives.List)
	drives.POST("", staff, audit("create", "drive"), h.Drives.Create)
	drives.GET("/:id", h.Drives.Get)
	drives.PUT("/:id", staff, audit("update", "drive"), h.Drives.Update)
	drives.DELETE("/:id", staff, audit("delete", "drive"), h.Drives.Delete)
	drives.GET("/:id/eligibility", staff, h.Drives.Eligibility)
	drives.GET("/:id/eligibility/export", staff, h.Drives.Export)

	secured.POST("/eligibility/check", h.Eligibility.Check)

	jobs := secured.Group("/jobs")
	jobs.GET("", h.Jobs.List)
	jobs.POST("", staff, audit("create", "job"), h.Jobs.Create)
	jobs.GET("/:id", h.Jobs.Get)
	jobs.GET("/:id/eligibility/:studentId", h.Jobs.CheckStudent)
	jobs.POST("/:id/enroll", middleware.RBAC(admin, student), audit("enroll", "job"), h.Jobs.Enroll)

	notifications := secured.Group("/notifications")
	notifications.GET("", h.Notifications.List)
	notifications.POST("/read-all", h.Notifications.MarkAllRead)
	notifications.POST("/:id/read", h.Notifications.MarkRead)
	notifications.DELETE("", staff, audit("clear", "notification"), h.Notifications.Clear)

	colleges := secured.Group("/colleges", adminOnly)
	colleges.GET("", h.Colleges.List)
	colleges.POST("", audit("create", "college"), h.Colleges.Create)
	colleges.GET("/:id", h.Colleges.Get)
	colleges.PUT("/:id", audit("update", "college"), h.Colleges.Update)
	colleges.DELETE("/:id", audit("delete", "college"), h.Colleges.Delete)

	departments := secured.Group("/departments", adminOnly)
	departments.GET("", h.Departments.List)
	departments.POST("", audit("create", "department"), h.Departments.Create)
	departments.GET("/:id", h.Departments.Get)
	departments.PUT("/:id", audit("update", "department"), h.Departments.Update)
	departments.DELETE("/:id", audit("delete", "department"), h.Departments.Delete)

	announcements := secured.Group("/announcements")
	announcements.GET("", h.Announcements.List)
	announcements.POST("", staff, audit("create", "announcement"), h.Announcements.Create)
	announcements.GET("/:id", h.Announcements.Get)
	announcements.PUT("/:id", staff, audit("update", "announcement"), h.Announcements.Update)
	announcements.DELETE("/:id", staff, audit("delete", "announcement"), h.Announcements.Delete)

	events := secured.Group("/events")
	events.GET("", h.Events.List)
	events.POST("", staff, audit("create", "event"), h.Events.Create)
	events.GET("/:id", h.Events.Get)
	events.PUT("/:id", staff, audit("update", "event"), h.Events.Update)
	events.DELETE("/:id", staff, audit("delete", "event"), h.Events.Delete)
	events.POST("/:id/register", middleware.RBAC(admin, student), audit("register", "event"), h.Events.Register)
	events.PUT("/:id/registrations/:studentId", staff, audit("attendance", "event"), h.Events.MarkAttendance)

	meetings := secured.Group("/meetings")
	meetings.GET("", h.Meetings.List)
	meetings.POST("", staff, audit("create", "meeting"), h.Meetings.Schedule)
	meetings.DELETE("/:id", staff, audit("delete", "meeting"), h.Meetings.Cancel)

	courses := secured.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", staff, audit("create", "course"), h.Courses.Create)
	courses.GET("/:id", h.Courses.Get)
	courses.PUT("/:id", staff, audit("update", "course"), h.Courses.Update)
	courses.PUT("/:id/progress/:studentId", staff, audit("progress", "course"), h.Courses.UpdateProgress)

	secured.GET("/dashboard/admin", adminOnly, h.Dashboard.Admin)
	if h.Metrics != nil {
		secured.GET("/metrics/summary", adminOnly, h.Metrics.Summary)
	}
}

// RegisterOps mounts unauthenticated operational endpoints on the root router.
func RegisterOps(router gin.IRoutes, metrics *MetricsHandler) {
	router.GET("/health", metrics.Health)
	router.GET("/ready", metrics.Ready)
	router.GET("/metrics", metrics.Prometheus)
}
