package domain

// UserType represents the kind of account, keyed by its wire value
type UserType string

const (
	UserTypeUser  UserType = "user"
	UserTypeAdmin UserType = "admin"
)

var userTypeLabels = map[UserType]string{
	UserTypeUser:  "USER",
	UserTypeAdmin: "ADMIN",
}

// FindUserType resolves a wire value into a UserType
func FindUserType(value string) (UserType, bool) {
	t := UserType(value)
	_, ok := userTypeLabels[t]
	return t, ok
}

// UserTypeValues returns every allowed wire value
func UserTypeValues() []string {
	return []string{string(UserTypeUser), string(UserTypeAdmin)}
}

func (t UserType) Value() string { return string(t) }
func (t UserType) Label() string { return userTypeLabels[t] }

// UserStatus represents account state, keyed by its wire value
type UserStatus int

const (
	UserStatusActive   UserStatus = 1
	UserStatusInactive UserStatus = 2
	UserStatusBlocked  UserStatus = 3
)

var userStatusLabels = map[UserStatus]string{
	UserStatusActive:   "ACTIVE",
	UserStatusInactive: "INACTIVE",
	UserStatusBlocked:  "BLOCKED",
}

// FindUserStatus resolves a wire value into a UserStatus
func FindUserStatus(value int) (UserStatus, bool) {
	s := UserStatus(value)
	_, ok := userStatusLabels[s]
	return s, ok
}

// UserStatusValues returns every allowed wire value
func UserStatusValues() []int {
	return []int{int(UserStatusActive), int(UserStatusInactive), int(UserStatusBlocked)}
}

func (s UserStatus) Value() int    { return int(s) }
func (s UserStatus) Label() string { return userStatusLabels[s] }

// UserLevel represents the account tier, keyed by its wire value
type UserLevel int

const (
	UserLevel1 UserLevel = 1
	UserLevel2 UserLevel = 2
	UserLevel3 UserLevel = 3
)

var userLevelLabels = map[UserLevel]string{
	UserLevel1: "LEVEL_1",
	UserLevel2: "LEVEL_2",
	UserLevel3: "LEVEL_3",
}

// FindUserLevel resolves a wire value into a UserLevel
func FindUserLevel(value int) (UserLevel, bool) {
	l := UserLevel(value)
	_, ok := userLevelLabels[l]
	return l, ok
}

func (l UserLevel) Value() int    { return int(l) }
func (l UserLevel) Label() string { return userLevelLabels[l] }

// InitialUserLevel is assigned to every newly created user
const InitialUserLevel = UserLevel1

// UserCommand is the validated internal representation of a user
type UserCommand struct {
	ID           uint
	CardID       string
	FirstName    string
	SecondName   string
	Type         UserType
	Status       UserStatus
	Level        UserLevel
	DateOfBirth  string
	Age          int
	MobileNumber string
	MobileBrand  string
}

// ActivityCommand is the internal representation of an activity suggestion
type ActivityCommand struct {
	Activity      string
	Type          string
	Participants  int
	Price         float64
	Link          string
	Key           string
	Accessibility float64
}

// KeyPair holds an encoded RSA key pair
type KeyPair struct {
	PrivateKey string
	PublicKey  string
}
