package handler

import "github.com/hrms/backend/internal/interfaces/http/router"

// ImportRoutes creates the route group for bulk CSV import endpoints
func ImportRoutes(
	importHandler *ImportHandler,
	employeeImportHandler *EmployeeImportHandler,
	historyHandler *ImportHistoryHandler,
) *router.DomainGroup {
	group := router.NewDomainGroup("import", "/import")

	// Generic validation and session inspection
	group.POST("/validate", importHandler.Validate)
	group.GET("/sessions/:id", importHandler.GetSession)

	// Employee import
	group.POST("/employees/validate", employeeImportHandler.ValidateEmployees)
	group.POST("/employees", employeeImportHandler.ImportEmployees)

	// Import history
	group.GET("/history", historyHandler.ListHistory)
	group.GET("/history/:id", historyHandler.GetHistory)
	group.GET("/history/:id/errors", historyHandler.GetErrors)
	group.DELETE("/history/:id", historyHandler.DeleteHistory)

	return group
}
