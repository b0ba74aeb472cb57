//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/reposync/internal"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should wire the full dependency graph", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()

		// when
		err := internal.RegisterProviders(container)

		// then
		require.NoError(t, err)
		var app *internal.AppInternal
		require.NoError(t, container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		}))
		assert.Len(t, app.GetControllers(), 4)
	})

	t.Run("should expose distinct binds per controller", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))
		var app *internal.AppInternal
		require.NoError(t, container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		}))

		// when
		uses := map[string]struct{}{}
		for _, controller := range app.GetControllers() {
			uses[controller.GetBind().Use] = struct{}{}
		}

		// then
		assert.Len(t, uses, 4)
	})
}
