package models

// Identity is the signed-in user as reported by the auth provider. The
// storefront never owns this record; it only reacts to its presence or
// absence.
type Identity struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// UserDoc is the users/{uid} document provisioned on first sign-in.
type UserDoc struct {
	UID       string   `json:"uid" firestore:"uid"`
	Name      string   `json:"name" firestore:"name"`
	Email     string   `json:"email" firestore:"email"`
	PhotoURL  string   `json:"photoURL" firestore:"photoURL"`
	CreatedAt string   `json:"createdAt" firestore:"createdAt"`
	Favorites []string `json:"favorites" firestore:"favorites"`
	Orders    []string `json:"orders" firestore:"orders"`
}
