package converters

import (
	"errors"
	"testing"

	"user-service/internal/adapters/client"
	"user-service/internal/adapters/persistence/models"
	"user-service/internal/core/domain"
	"user-service/internal/core/dto"
	"user-service/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func assertEnumFailure(t *testing.T, err error) {
	t.Helper()
	var convErr *domain.ConversionError
	require.True(t, errors.As(err, &convErr))
	f, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindService, f.Kind)
	assert.Equal(t, domain.StatusFailedToConvertValueToEnum, f.Status)
}

func TestCreateUserRequestToCommand(t *testing.T) {
	req := &dto.CreateUserRequest{
		CardID:       strPtr("cardId"),
		FirstName:    strPtr("firstName"),
		SecondName:   strPtr("secondName"),
		Type:         strPtr("admin"),
		Status:       intPtr(2),
		DateOfBirth:  strPtr("11-11-1991"),
		Age:          intPtr(30),
		MobileNumber: strPtr("12345678901"),
		MobileBrand:  strPtr("Apple"),
	}

	cmd, err := CreateUserRequestToCommand(req)
	require.NoError(t, err)
	assert.Equal(t, "cardId", cmd.CardID)
	assert.Equal(t, domain.UserTypeAdmin, cmd.Type)
	assert.Equal(t, domain.UserStatusInactive, cmd.Status)
	assert.Equal(t, 30, cmd.Age)
	assert.Equal(t, "Apple", cmd.MobileBrand)
	assert.Zero(t, cmd.Level)

	req.Type = strPtr("guest")
	_, err = CreateUserRequestToCommand(req)
	assertEnumFailure(t, err)
}

func TestApplyUpdate(t *testing.T) {
	base := func() *domain.UserCommand {
		return &domain.UserCommand{
			ID:          1,
			CardID:      "cardId",
			FirstName:   "firstName",
			SecondName:  "secondName",
			Type:        domain.UserTypeUser,
			Status:      domain.UserStatusActive,
			Level:       domain.UserLevel1,
			DateOfBirth: "11-11-1991",
			Age:         20,
		}
	}

	t.Run("blank and absent fields are kept", func(t *testing.T) {
		cmd := base()
		err := ApplyUpdate(cmd, &dto.UpdateUserRequest{
			FirstName: strPtr("  "),
			Age:       intPtr(40),
		})
		require.NoError(t, err)
		assert.Equal(t, "firstName", cmd.FirstName)
		assert.Equal(t, 40, cmd.Age)
		assert.Equal(t, domain.UserLevel1, cmd.Level)
	})

	t.Run("enum fields are converted", func(t *testing.T) {
		cmd := base()
		err := ApplyUpdate(cmd, &dto.UpdateUserRequest{
			Type:   strPtr("admin"),
			Status: intPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.UserTypeAdmin, cmd.Type)
		assert.Equal(t, domain.UserStatusBlocked, cmd.Status)
	})

	t.Run("unknown enum value fails", func(t *testing.T) {
		err := ApplyUpdate(base(), &dto.UpdateUserRequest{Type: strPtr("guest")})
		assertEnumFailure(t, err)

		err = ApplyUpdate(base(), &dto.UpdateUserRequest{Status: intPtr(9)})
		assertEnumFailure(t, err)
	})
}

func TestEntityRoundTrip(t *testing.T) {
	cmd := &domain.UserCommand{
		ID:           7,
		CardID:       "cardId",
		FirstName:    "firstName",
		SecondName:   "secondName",
		Type:         domain.UserTypeUser,
		Status:       domain.UserStatusActive,
		Level:        domain.UserLevel2,
		DateOfBirth:  "11-11-1991",
		Age:          33,
		MobileNumber: "12345678901",
		MobileBrand:  "Apple",
	}

	entity := CommandToEntity(cmd)
	assert.Equal(t, "user", entity.Type)
	assert.Equal(t, 1, entity.Status)
	assert.Equal(t, 2, entity.Level)

	back, err := EntityToCommand(entity)
	require.NoError(t, err)
	assert.Equal(t, cmd, back)
}

func TestEntityToCommandRejectsUnknownValues(t *testing.T) {
	_, err := EntityToCommand(&models.User{Type: "user", Status: 1, Level: 9})
	assertEnumFailure(t, err)

	_, err = EntityToCommand(&models.User{Type: "root", Status: 1, Level: 1})
	assertEnumFailure(t, err)
}

func TestResponses(t *testing.T) {
	cmd := &domain.UserCommand{
		ID:         3,
		CardID:     "cardId",
		FirstName:  "firstName",
		SecondName: "secondName",
		Type:       domain.UserTypeAdmin,
		Status:     domain.UserStatusBlocked,
		Level:      domain.UserLevel3,
		Age:        25,
	}

	full := CommandToResponse(cmd)
	assert.Equal(t, uint(3), full.ID)
	assert.Equal(t, "admin", full.Type)
	assert.Equal(t, 3, full.Status)
	assert.Equal(t, 3, full.Level)
	assert.Nil(t, full.Activity)

	short := CommandToShortResponse(cmd)
	assert.Equal(t, &dto.UserShortResponse{
		ID: 3, CardID: "cardId", FirstName: "firstName", SecondName: "secondName", Type: "admin", Status: 3,
	}, short)

	page := pagination.NewPage([]*domain.UserCommand{cmd}, pagination.NewParams(1, 10), 1)
	mapped := CommandPageToShortResponsePage(page)
	require.Len(t, mapped.Content, 1)
	assert.Equal(t, short, mapped.Content[0])
	assert.Equal(t, int64(1), mapped.TotalElements)
}

func TestActivityAndKeyPairResponses(t *testing.T) {
	cmd := ActivityExternalToCommand(&client.ActivityExternal{
		Activity:      "Learn Go",
		Type:          "education",
		Participants:  1,
		Price:         0.1,
		Link:          "https://go.dev",
		Key:           "42",
		Accessibility: 0.5,
	})
	assert.Equal(t, "education", cmd.Type)

	a := ActivityCommandToResponse(cmd)
	assert.Equal(t, "Learn Go", a.Activity)
	assert.Equal(t, 0.5, a.Accessibility)

	k := KeyPairToResponse(&domain.KeyPair{PrivateKey: "priv", PublicKey: "pub"})
	assert.Equal(t, "priv", k.PrivateKey)
	assert.Equal(t, "pub", k.PublicKey)
}
