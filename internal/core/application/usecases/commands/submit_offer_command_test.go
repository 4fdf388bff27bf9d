package commands_test

import (
	"testing"
	"time"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOfferCommand(t *testing.T) {
	tenderID, carrierID := kernel.NewUUID(), kernel.NewUUID()
	validUntil := time.Now().Add(48 * time.Hour)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewSubmitOfferCommand(tenderID, carrierID, mustMoney(t, 99000),
			validUntil, []string{"tail lift required"})
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.TenderID().IsEqual(tenderID))
		assert.True(t, cmd.CarrierID().IsEqual(carrierID))
		assert.Equal(t, int64(99000), cmd.Price().Amount())
		assert.Equal(t, validUntil, cmd.ValidUntil())
		assert.Equal(t, []string{"tail lift required"}, cmd.Conditions())
	})

	t.Run("conditions are optional", func(t *testing.T) {
		cmd, err := commands.NewSubmitOfferCommand(tenderID, carrierID, mustMoney(t, 99000), validUntil, nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.Conditions())
	})

	t.Run("invalid price", func(t *testing.T) {
		_, err := commands.NewSubmitOfferCommand(tenderID, carrierID, kernel.Money{}, validUntil, nil)
		require.Error(t, err)
	})

	t.Run("zero validity bound", func(t *testing.T) {
		_, err := commands.NewSubmitOfferCommand(tenderID, carrierID, mustMoney(t, 99000), time.Time{}, nil)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.SubmitOfferCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOfferCommandIsNotConstructed)
	})
}
