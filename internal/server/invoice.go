package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypePDF = "application/pdf"

// InvoiceDocument renders the invoice to PDF, stores the copy and streams it.
func (s *Server) InvoiceDocument(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.documents.Render(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename))
	c.Data(http.StatusOK, contentTypePDF, doc.Content)
}
