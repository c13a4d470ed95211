package handler

import (
	"github.com/hrms/backend/internal/interfaces/http/router"
)

// PrintRoutes creates the route group for print-related endpoints
func PrintRoutes(handler *PrintHandler) *router.DomainGroup {
	group := router.NewDomainGroup("print", "/print")

	// Template queries
	group.GET("/templates/by-doc-type/:doc_type", handler.GetTemplatesByDocType)

	// Preview and PDF generation
	group.POST("/preview", handler.PreviewDocument)
	group.POST("/generate", handler.GeneratePDF)

	// Print jobs
	group.GET("/jobs", handler.ListJobs)
	group.GET("/jobs/:id", handler.GetJob)
	group.GET("/jobs/:id/download", handler.DownloadPDF)
	group.GET("/jobs/by-document/:doc_type/:document_id", handler.GetJobsByDocument)

	// Reference data
	group.GET("/document-types", handler.GetDocumentTypes)
	group.GET("/paper-sizes", handler.GetPaperSizes)

	return group
}

// PrintFileRoutes creates the route group for serving generated PDF files
func PrintFileRoutes(handler *PrintHandler) *router.DomainGroup {
	group := router.NewDomainGroup("print-files", "/prints")
	group.GET("/:tenant_id/:year/:month/:filename", handler.ServePDF)
	return group
}
