package commands_test

import (
	"testing"
	"time"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWaterBoxCommand(t *testing.T) {
	installDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateWaterBoxCommand(id, "org-1", "WB-001", waterbox.BoxTypeDomestic, installDate)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.WaterBoxID().IsEqual(id))
		assert.Equal(t, "org-1", cmd.OrganizationID())
		assert.Equal(t, "WB-001", cmd.BoxCode())
		assert.Equal(t, waterbox.BoxTypeDomestic, cmd.BoxType())
		assert.Equal(t, installDate, cmd.InstallationDate())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateWaterBoxCommand(invalidID, "org-1", "WB-001", waterbox.BoxTypeDomestic, installDate)

		require.Error(t, err)
	})

	t.Run("should fail with empty organization", func(t *testing.T) {
		_, err := commands.NewCreateWaterBoxCommand(kernel.NewUUID(), "", "WB-001", waterbox.BoxTypeDomestic, installDate)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrOrganizationIsRequired)
	})

	t.Run("should fail with empty box code", func(t *testing.T) {
		_, err := commands.NewCreateWaterBoxCommand(kernel.NewUUID(), "org-1", "", waterbox.BoxTypeDomestic, installDate)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrBoxCodeIsRequired)
	})

	t.Run("should fail with unknown box type", func(t *testing.T) {
		_, err := commands.NewCreateWaterBoxCommand(kernel.NewUUID(), "org-1", "WB-001", waterbox.BoxTypeUnknown, installDate)

		require.Error(t, err)
	})

	t.Run("should fail with zero installation date", func(t *testing.T) {
		_, err := commands.NewCreateWaterBoxCommand(kernel.NewUUID(), "org-1", "WB-001", waterbox.BoxTypeDomestic, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrInstallationDateIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CreateWaterBoxCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateWaterBoxCommandIsNotConstructed)
	})
}
