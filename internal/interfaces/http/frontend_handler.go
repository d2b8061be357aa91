package http

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain"
)

// FrontendHandler sirve la página de entrada del frontend si está desplegada junto al servicio.
type FrontendHandler struct {
	dir string
}

// NewFrontendHandler construye el handler para el directorio dado.
func NewFrontendHandler(dir string) *FrontendHandler {
	return &FrontendHandler{dir: dir}
}

// IndexFile ruta de index.html; domain.ErrNotFound si no está desplegado.
func (h *FrontendHandler) IndexFile() (string, error) {
	index := filepath.Join(h.dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return "", fmt.Errorf("frontend: %s: %w", index, domain.ErrNotFound)
	}
	return index, nil
}

// Index GET /
func (h *FrontendHandler) Index(c *fiber.Ctx) error {
	index, err := h.IndexFile()
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Frontend not found"})
	}
	return c.SendFile(index)
}

// Available indica si el directorio del frontend existe (para montar /static).
func (h *FrontendHandler) Available() bool {
	info, err := os.Stat(h.dir)
	return err == nil && info.IsDir()
}
