package dto

// UserResponse is the full projection of a user
type UserResponse struct {
	ID           uint              `json:"id"`
	CardID       string            `json:"card_id"`
	FirstName    string            `json:"first_name"`
	SecondName   string            `json:"second_name"`
	Type         string            `json:"type"`
	Status       int               `json:"status"`
	Level        int               `json:"level"`
	DateOfBirth  string            `json:"date_of_birth"`
	Age          int               `json:"age"`
	MobileNumber string            `json:"mobile_number"`
	MobileBrand  string            `json:"mobile_brand"`
	Activity     *ActivityResponse `json:"activity,omitempty"`
}

// UserShortResponse is the listing projection of a user
type UserShortResponse struct {
	ID         uint   `json:"id"`
	CardID     string `json:"card_id"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Type       string `json:"type"`
	Status     int    `json:"status"`
}

// ActivityResponse is the enrichment attached to GET /v1/users/{id}
type ActivityResponse struct {
	Activity      string  `json:"activity"`
	Type          string  `json:"type"`
	Participants  int     `json:"participants"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility"`
}

// KeyPairResponse carries a generated RSA key pair
type KeyPairResponse struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}
