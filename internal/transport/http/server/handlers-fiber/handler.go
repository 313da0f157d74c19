// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/usecase"
	"go.uber.org/zap"
)

// Handler exposes the application over fiber using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
