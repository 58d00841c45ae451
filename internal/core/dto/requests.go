package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"user-service/internal/core/domain"
	"user-service/internal/pkg/validator"
)

const (
	MinAge = 18
	MaxAge = 54
)

// CreateUserRequest is the body of POST /v1/users. Every field is required.
type CreateUserRequest struct {
	CardID       *string `json:"card_id"`
	FirstName    *string `json:"first_name"`
	SecondName   *string `json:"second_name"`
	Type         *string `json:"type"`
	Status       *int    `json:"status"`
	DateOfBirth  *string `json:"date_of_birth"`
	Age          *int    `json:"age"`
	MobileNumber *string `json:"mobile_number"`
	MobileBrand  *string `json:"mobile_brand"`
}

// Validate evaluates every field rule in declaration order
func (r *CreateUserRequest) Validate() error {
	return validator.New().
		Check(validator.Required(r.CardID, domain.StatusCardIDIsRequired)).
		Check(validator.Required(r.FirstName, domain.StatusFirstNameIsRequired)).
		Check(validator.Required(r.SecondName, domain.StatusSecondNameIsRequired)).
		Check(validator.Required(r.Type, domain.StatusTypeIsRequired)).
		Check(validator.IsEnum(r.Type, domain.UserTypeValues(), domain.StatusTypeIsInvalid)).
		Check(validator.Required(r.Status, domain.StatusStatusIsRequired)).
		Check(validator.IsEnum(r.Status, domain.UserStatusValues(), domain.StatusStatusIsInvalid)).
		Check(validator.Required(r.DateOfBirth, domain.StatusDateOfBirthIsRequired)).
		Check(validator.IsDate(r.DateOfBirth, validator.DateLayout, domain.StatusDateOfBirthIsInvalid)).
		Check(validator.Required(r.Age, domain.StatusAgeIsRequired)).
		Check(validator.Min(r.Age, MinAge, domain.StatusAgeIsInvalid)).
		Check(validator.Max(r.Age, MaxAge, domain.StatusAgeIsInvalid)).
		Check(validator.Required(r.MobileNumber, domain.StatusMobileNumberIsRequired)).
		Check(validator.Required(r.MobileBrand, domain.StatusMobileBrandIsRequired)).
		Err()
}

type createUserFields CreateUserRequest

// UnmarshalJSON accepts status and age as JSON numbers or quoted integers
func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	var aux struct {
		createUserFields
		Status *flexInt `json:"status"`
		Age    *flexInt `json:"age"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = CreateUserRequest(aux.createUserFields)
	r.Status = aux.Status.intPtr()
	r.Age = aux.Age.intPtr()
	return nil
}

// UpdateUserRequest is the body of PATCH /v1/users/{id}. Every field is optional.
type UpdateUserRequest struct {
	CardID       *string `json:"card_id"`
	FirstName    *string `json:"first_name"`
	SecondName   *string `json:"second_name"`
	Type         *string `json:"type"`
	Status       *int    `json:"status"`
	DateOfBirth  *string `json:"date_of_birth"`
	Age          *int    `json:"age"`
	MobileNumber *string `json:"mobile_number"`
	MobileBrand  *string `json:"mobile_brand"`
}

// Validate checks the format of the fields that are present.
// Blank type and date values mean "leave unchanged" and are not checked.
func (r *UpdateUserRequest) Validate() error {
	return validator.New().
		Check(validator.IsEnum(nonBlank(r.Type), domain.UserTypeValues(), domain.StatusTypeIsInvalid)).
		Check(validator.IsEnum(r.Status, domain.UserStatusValues(), domain.StatusStatusIsInvalid)).
		Check(validator.IsDate(nonBlank(r.DateOfBirth), validator.DateLayout, domain.StatusDateOfBirthIsInvalid)).
		Check(validator.Min(r.Age, MinAge, domain.StatusAgeIsInvalid)).
		Check(validator.Max(r.Age, MaxAge, domain.StatusAgeIsInvalid)).
		Err()
}

type updateUserFields UpdateUserRequest

// UnmarshalJSON accepts status and age as JSON numbers or quoted integers
func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	var aux struct {
		updateUserFields
		Status *flexInt `json:"status"`
		Age    *flexInt `json:"age"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = UpdateUserRequest(aux.updateUserFields)
	r.Status = aux.Status.intPtr()
	r.Age = aux.Age.intPtr()
	return nil
}

// IsEmpty reports whether the request would leave a record unchanged
func (r *UpdateUserRequest) IsEmpty() bool {
	return nonBlank(r.CardID) == nil &&
		nonBlank(r.FirstName) == nil &&
		nonBlank(r.SecondName) == nil &&
		nonBlank(r.Type) == nil &&
		r.Status == nil &&
		nonBlank(r.DateOfBirth) == nil &&
		r.Age == nil &&
		nonBlank(r.MobileNumber) == nil &&
		nonBlank(r.MobileBrand) == nil
}

func nonBlank(s *string) *string {
	if s == nil || isBlank(*s) {
		return nil
	}
	return s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// flexInt decodes an integer written either as a number or as a string
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("cannot decode %q as an integer: %w", s, err)
		}
		*n = flexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

func (n *flexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
