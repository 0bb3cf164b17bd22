// controllers/export.go
package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"pawcare-backend/logger"

	"github.com/gin-gonic/gin"
)

// ExportExcel streams the whole database as a spreadsheet attachment.
func (h *Handler) ExportExcel(c *gin.Context) {
	snap, err := h.Store.Snapshot(c.Request.Context())
	if err != nil {
		h.serverError(c, "read export snapshot", err)
		return
	}

	var buf bytes.Buffer
	if err := h.Exporter.Export(&buf, snap); err != nil {
		h.serverError(c, "build export", err)
		return
	}

	filename := h.Exporter.Filename(h.now())
	h.Log.Info("data exported", logger.Fields{"file": filename, "bytes": buf.Len()})
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, h.Exporter.ContentType(), buf.Bytes())
}
