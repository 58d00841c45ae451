package domain

// Status is a (code, description) pair returned in every response envelope.
type Status struct {
	Code        string
	Description string
}

// Status catalog
var (
	StatusSuccess = Status{"0000", "Success"}

	StatusUserNotFound = Status{"1001", "User not found"}

	StatusCardIDIsRequired       = Status{"2001", "card_id is required"}
	StatusFirstNameIsRequired    = Status{"2002", "first_name is required"}
	StatusSecondNameIsRequired   = Status{"2003", "second_name is required"}
	StatusTypeIsRequired         = Status{"2004", "type is required"}
	StatusStatusIsRequired       = Status{"2005", "status is required"}
	StatusDateOfBirthIsRequired  = Status{"2006", "date_of_birth is required"}
	StatusAgeIsRequired          = Status{"2007", "age is required"}
	StatusMobileNumberIsRequired = Status{"2008", "mobile_number is required"}
	StatusMobileBrandIsRequired  = Status{"2009", "mobile_brand is required"}

	StatusTypeIsInvalid        = Status{"3001", "type is invalid"}
	StatusStatusIsInvalid      = Status{"3002", "status is invalid"}
	StatusDateOfBirthIsInvalid = Status{"3003", "date_of_birth is invalid"}
	StatusAgeIsInvalid         = Status{"3004", "age is invalid"}
	StatusUserIDIsInvalid      = Status{"3005", "user id is invalid"}

	StatusMethodNotAllowed           = Status{"9001", "Method not allowed"}
	StatusNoMatchingHandler          = Status{"9002", "No matching handler"}
	StatusJSONDecodingError          = Status{"9003", "Failed to decode request body"}
	StatusFailedToConvertValueToEnum = Status{"9004", "Failed to convert value to enum"}
	StatusTooManyRequests            = Status{"9005", "Too many requests"}
	StatusInternalServerError        = Status{"9999", "Internal server error"}
)

var statusCatalog = map[string]Status{
	"SUCCESS":                         StatusSuccess,
	"USER_NOT_FOUND":                  StatusUserNotFound,
	"CARD_ID_IS_REQUIRED":             StatusCardIDIsRequired,
	"FIRST_NAME_IS_REQUIRED":          StatusFirstNameIsRequired,
	"SECOND_NAME_IS_REQUIRED":         StatusSecondNameIsRequired,
	"TYPE_IS_REQUIRED":                StatusTypeIsRequired,
	"STATUS_IS_REQUIRED":              StatusStatusIsRequired,
	"DATE_OF_BIRTH_IS_REQUIRED":       StatusDateOfBirthIsRequired,
	"AGE_IS_REQUIRED":                 StatusAgeIsRequired,
	"MOBILE_NUMBER_IS_REQUIRED":       StatusMobileNumberIsRequired,
	"MOBILE_BRAND_IS_REQUIRED":        StatusMobileBrandIsRequired,
	"TYPE_IS_INVALID":                 StatusTypeIsInvalid,
	"STATUS_IS_INVALID":               StatusStatusIsInvalid,
	"DATE_OF_BIRTH_IS_INVALID":        StatusDateOfBirthIsInvalid,
	"AGE_IS_INVALID":                  StatusAgeIsInvalid,
	"USER_ID_IS_INVALID":              StatusUserIDIsInvalid,
	"METHOD_NOT_ALLOWED":              StatusMethodNotAllowed,
	"NO_MATCHING_HANDLER":             StatusNoMatchingHandler,
	"JSON_DECODING_ERROR":             StatusJSONDecodingError,
	"FAILED_TO_CONVERT_VALUE_TO_ENUM": StatusFailedToConvertValueToEnum,
	"TOO_MANY_REQUESTS":               StatusTooManyRequests,
	"INTERNAL_SERVER_ERROR":           StatusInternalServerError,
}

func lookupStatus(name string) (Status, bool) {
	s, ok := statusCatalog[name]
	return s, ok
}
