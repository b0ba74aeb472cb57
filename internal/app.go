package internal

import (
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// AppInternal holds the wired application controllers.
type AppInternal struct {
	controllers *[]entities.Controller
}

func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
