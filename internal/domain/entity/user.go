package entity

// User identity is the (email, role) pair: the same email may hold several
// roles, each stored as its own record.
type User struct {
	Email     string `json:"email" firestore:"email"`
	Role      Role   `json:"role" firestore:"role"`
	Name      string `json:"name" firestore:"name"`
	CreatedAt string `json:"created_at" firestore:"createdAt"`
	UpdatedAt string `json:"updated_at" firestore:"updatedAt"`
}
