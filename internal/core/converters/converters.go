// Package converters maps users and activities between their wire, command,
// storage and response shapes. Enum lookups that miss fail with a Service
// failure wrapped in a ConversionError.
package converters

import (
	"strings"

	"user-service/internal/adapters/client"
	"user-service/internal/adapters/persistence/models"
	"user-service/internal/core/domain"
	"user-service/internal/core/dto"
	"user-service/internal/pkg/pagination"
)

func conversionFailure(from, to string) error {
	return &domain.ConversionError{
		From: from,
		To:   to,
		Err:  domain.Service(domain.StatusFailedToConvertValueToEnum),
	}
}

// ToUserType resolves a wire type value
func ToUserType(value string) (domain.UserType, error) {
	t, ok := domain.FindUserType(value)
	if !ok {
		return "", conversionFailure("string", "UserType")
	}
	return t, nil
}

// ToUserStatus resolves a wire status value
func ToUserStatus(value int) (domain.UserStatus, error) {
	s, ok := domain.FindUserStatus(value)
	if !ok {
		return 0, conversionFailure("int", "UserStatus")
	}
	return s, nil
}

// ToUserLevel resolves a wire level value
func ToUserLevel(value int) (domain.UserLevel, error) {
	l, ok := domain.FindUserLevel(value)
	if !ok {
		return 0, conversionFailure("int", "UserLevel")
	}
	return l, nil
}

// CreateUserRequestToCommand copies a validated create request into a command.
// Level is left unset; the create flow assigns it.
func CreateUserRequestToCommand(req *dto.CreateUserRequest) (*domain.UserCommand, error) {
	cmd := &domain.UserCommand{
		CardID:       deref(req.CardID),
		FirstName:    deref(req.FirstName),
		SecondName:   deref(req.SecondName),
		DateOfBirth:  deref(req.DateOfBirth),
		Age:          deref(req.Age),
		MobileNumber: deref(req.MobileNumber),
		MobileBrand:  deref(req.MobileBrand),
	}

	var err error
	if cmd.Type, err = ToUserType(deref(req.Type)); err != nil {
		return nil, err
	}
	if cmd.Status, err = ToUserStatus(deref(req.Status)); err != nil {
		return nil, err
	}

	return cmd, nil
}

// ApplyUpdate overwrites the fields of cmd that req carries with a non-blank
// value. Absent and blank fields keep their stored value.
func ApplyUpdate(cmd *domain.UserCommand, req *dto.UpdateUserRequest) error {
	if present(req.CardID) {
		cmd.CardID = *req.CardID
	}
	if present(req.FirstName) {
		cmd.FirstName = *req.FirstName
	}
	if present(req.SecondName) {
		cmd.SecondName = *req.SecondName
	}
	if present(req.Type) {
		t, err := ToUserType(*req.Type)
		if err != nil {
			return err
		}
		cmd.Type = t
	}
	if req.Status != nil {
		s, err := ToUserStatus(*req.Status)
		if err != nil {
			return err
		}
		cmd.Status = s
	}
	if present(req.DateOfBirth) {
		cmd.DateOfBirth = *req.DateOfBirth
	}
	if req.Age != nil {
		cmd.Age = *req.Age
	}
	if present(req.MobileNumber) {
		cmd.MobileNumber = *req.MobileNumber
	}
	if present(req.MobileBrand) {
		cmd.MobileBrand = *req.MobileBrand
	}
	return nil
}

// CommandToEntity converts a command to its storage row
func CommandToEntity(cmd *domain.UserCommand) *models.User {
	return &models.User{
		ID:           cmd.ID,
		CardID:       cmd.CardID,
		FirstName:    cmd.FirstName,
		SecondName:   cmd.SecondName,
		Type:         cmd.Type.Value(),
		Status:       cmd.Status.Value(),
		Level:        cmd.Level.Value(),
		DateOfBirth:  cmd.DateOfBirth,
		Age:          cmd.Age,
		MobileNumber: cmd.MobileNumber,
		MobileBrand:  cmd.MobileBrand,
	}
}

// EntityToCommand converts a storage row to a command
func EntityToCommand(u *models.User) (*domain.UserCommand, error) {
	t, err := ToUserType(u.Type)
	if err != nil {
		return nil, err
	}
	s, err := ToUserStatus(u.Status)
	if err != nil {
		return nil, err
	}
	l, err := ToUserLevel(u.Level)
	if err != nil {
		return nil, err
	}

	return &domain.UserCommand{
		ID:           u.ID,
		CardID:       u.CardID,
		FirstName:    u.FirstName,
		SecondName:   u.SecondName,
		Type:         t,
		Status:       s,
		Level:        l,
		DateOfBirth:  u.DateOfBirth,
		Age:          u.Age,
		MobileNumber: u.MobileNumber,
		MobileBrand:  u.MobileBrand,
	}, nil
}

// CommandToResponse projects a command to the full response
func CommandToResponse(cmd *domain.UserCommand) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           cmd.ID,
		CardID:       cmd.CardID,
		FirstName:    cmd.FirstName,
		SecondName:   cmd.SecondName,
		Type:         cmd.Type.Value(),
		Status:       cmd.Status.Value(),
		Level:        cmd.Level.Value(),
		DateOfBirth:  cmd.DateOfBirth,
		Age:          cmd.Age,
		MobileNumber: cmd.MobileNumber,
		MobileBrand:  cmd.MobileBrand,
	}
}

// CommandToShortResponse projects a command to the listing response
func CommandToShortResponse(cmd *domain.UserCommand) *dto.UserShortResponse {
	return &dto.UserShortResponse{
		ID:         cmd.ID,
		CardID:     cmd.CardID,
		FirstName:  cmd.FirstName,
		SecondName: cmd.SecondName,
		Type:       cmd.Type.Value(),
		Status:     cmd.Status.Value(),
	}
}

// CommandPageToShortResponsePage projects every command on a page
func CommandPageToShortResponsePage(p *pagination.Page[*domain.UserCommand]) *pagination.Page[*dto.UserShortResponse] {
	return pagination.Map(p, CommandToShortResponse)
}

// ActivityExternalToCommand copies the activity API payload
func ActivityExternalToCommand(a *client.ActivityExternal) *domain.ActivityCommand {
	return &domain.ActivityCommand{
		Activity:      a.Activity,
		Type:          a.Type,
		Participants:  a.Participants,
		Price:         a.Price,
		Link:          a.Link,
		Key:           a.Key,
		Accessibility: a.Accessibility,
	}
}

// ActivityCommandToResponse projects an activity to its response
func ActivityCommandToResponse(a *domain.ActivityCommand) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		Activity:      a.Activity,
		Type:          a.Type,
		Participants:  a.Participants,
		Price:         a.Price,
		Link:          a.Link,
		Key:           a.Key,
		Accessibility: a.Accessibility,
	}
}

// KeyPairToResponse projects an encoded key pair
func KeyPairToResponse(k *domain.KeyPair) *dto.KeyPairResponse {
	return &dto.KeyPairResponse{
		PrivateKey: k.PrivateKey,
		PublicKey:  k.PublicKey,
	}
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
