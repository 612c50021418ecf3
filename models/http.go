package models

// Credentials is the request body accepted by the register and login
// endpoints. Both fields are required; validation happens in the auth
// service before any persistence or hashing work is done.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ItemRequest is the request body accepted by the item create and update
// endpoints. It deliberately has no id field: the database assigns ids on
// create, and updates take the id from the URL path only.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
