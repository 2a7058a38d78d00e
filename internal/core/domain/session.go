package domain

// Role identifies what area of the application a user may enter.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleCleaner         Role = "CLEANER"
	RoleCustomer        Role = "CUSTOMER"
)

// AdminRoles lists the roles granted access to the admin area. SERVICE_PROVIDER
// and ADMIN are kept as distinct values; both open the admin routes but they are
// never treated as aliases anywhere else.
var AdminRoles = []Role{RoleServiceProvider, RoleAdmin}

// User is the client-held identity of the person currently logged in.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Mobile            string `json:"mobile"`
	Role              Role   `json:"role"`
	ServiceProviderID int    `json:"serviceProviderId,omitempty"`
	CustomerID        string `json:"customerId,omitempty"`
}

// Session is the full client-side authentication state. User, Token and
// IsAuthenticated survive process restarts; IsLoading and Error are transient
// UI flags and always start zeroed.
type Session struct {
	User            *User   `json:"user"`
	Token           string  `json:"token"`
	IsAuthenticated bool    `json:"isAuthenticated"`
	IsLoading       bool    `json:"-"`
	Error           *string `json:"-"`
}

// StorageName is the fixed key under which the persisted session lives,
// regardless of which slot backend (file or Redis) holds it.
const StorageName = "auth-storage"

// PersistedSession is the durable subset of Session written to the slot.
type PersistedSession struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
