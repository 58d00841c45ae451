package validator

import (
	"errors"
	"testing"

	"user-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRequired(t *testing.T) {
	status := domain.StatusCardIDIsRequired

	assert.NotNil(t, Required[string](nil, status))
	assert.NotNil(t, Required(ptr(""), status))
	assert.NotNil(t, Required(ptr("   "), status))
	assert.Nil(t, Required(ptr("card"), status))

	assert.NotNil(t, Required[int](nil, domain.StatusAgeIsRequired))
	assert.Nil(t, Required(ptr(0), domain.StatusAgeIsRequired))

	f := Required[string](nil, status)
	assert.Equal(t, domain.KindInvalidRequest, f.Kind)
	assert.Equal(t, status, f.Status)
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		age   *int
		valid bool
	}{
		{nil, true},
		{ptr(17), false},
		{ptr(18), true},
		{ptr(30), true},
		{ptr(54), true},
		{ptr(55), false},
		{ptr(-1), false},
	}

	for _, tt := range tests {
		f := New().
			Check(Min(tt.age, 18, domain.StatusAgeIsInvalid)).
			Check(Max(tt.age, 54, domain.StatusAgeIsInvalid)).
			Err()
		if tt.valid {
			assert.NoError(t, f)
			continue
		}
		require.Error(t, f)
		failure, ok := domain.AsFailure(f)
		require.True(t, ok)
		assert.Equal(t, domain.StatusAgeIsInvalid, failure.Status)
	}

	var big int64 = 1 << 40
	assert.NotNil(t, Max(&big, 54, domain.StatusAgeIsInvalid))
}

func TestIsEnum(t *testing.T) {
	types := domain.UserTypeValues()
	assert.Nil(t, IsEnum[string](nil, types, domain.StatusTypeIsInvalid))
	assert.Nil(t, IsEnum(ptr("user"), types, domain.StatusTypeIsInvalid))
	assert.NotNil(t, IsEnum(ptr("wrong"), types, domain.StatusTypeIsInvalid))

	statuses := domain.UserStatusValues()
	assert.Nil(t, IsEnum(ptr(1), statuses, domain.StatusStatusIsInvalid))
	assert.NotNil(t, IsEnum(ptr(99), statuses, domain.StatusStatusIsInvalid))
}

func TestIsDate(t *testing.T) {
	status := domain.StatusDateOfBirthIsInvalid

	valid := []string{"11-11-1991", "29-02-2000", "01-01-1970"}
	for _, v := range valid {
		assert.Nil(t, IsDate(ptr(v), DateLayout, status), v)
	}

	invalid := []string{"11/11/1991", "1991-11-11", "31-02-2001", "29-02-2001", "1-1-1991", "11-11-91", "", "abc"}
	for _, v := range invalid {
		assert.NotNil(t, IsDate(ptr(v), DateLayout, status), v)
	}

	assert.Nil(t, IsDate(nil, DateLayout, status))
}

func TestBuilderAggregates(t *testing.T) {
	err := New().
		Check(Required[string](nil, domain.StatusCardIDIsRequired)).
		Check(nil).
		Check(Required[string](nil, domain.StatusFirstNameIsRequired)).
		Err()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Failures, 2)

	first, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCardIDIsRequired, first.Status)

	assert.NoError(t, New().Err())
}
