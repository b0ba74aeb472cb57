package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewAddController); err != nil {
		return err
	}
	if err := container.Provide(NewUpdateController); err != nil {
		return err
	}
	if err := container.Provide(NewRemoveController); err != nil {
		return err
	}
	if err := container.Provide(NewGenerateController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	addController *AddController,
	updateController *UpdateController,
	removeController *RemoveController,
	generateController *GenerateController,
) *[]entities.Controller {
	return &[]entities.Controller{
		addController,
		updateController,
		removeController,
		generateController,
	}
}
