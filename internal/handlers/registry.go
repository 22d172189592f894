package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	NotificationHandler *NotificationHandler
	SkillHandler        *SkillHandler
	FileHandler         *FileHandler
}
