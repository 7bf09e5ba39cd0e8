package entity

type ChatParticipant struct {
	Email string `json:"email" firestore:"email"`
	Role  Role   `json:"role" firestore:"role"`
	Name  string `json:"name,omitempty" firestore:"name,omitempty"`
}

// ChatMessage is immutable once appended. The sender name is a snapshot taken
// at posting time, not re-resolved against the user directory.
type ChatMessage struct {
	SenderEmail string `json:"sender_email" firestore:"senderEmail"`
	SenderRole  Role   `json:"sender_role" firestore:"senderRole"`
	SenderName  string `json:"sender_name" firestore:"senderName"`
	Text        string `json:"text" firestore:"text"`
	Timestamp   string `json:"timestamp" firestore:"timestamp"`
}

// ChatRoom is a single document keyed by its order id: participants plus the
// append-only message log. It is a peer aggregate of Order, not an embedded
// child, so the growing log never inflates order reads and writes.
type ChatRoom struct {
	OrderID      string            `json:"order_id" firestore:"orderId"`
	Participants []ChatParticipant `json:"participants" firestore:"participants"`
	Messages     []ChatMessage     `json:"messages" firestore:"messages"`
	CreatedAt    string            `json:"created_at" firestore:"createdAt"`
	UpdatedAt    string            `json:"updated_at" firestore:"updatedAt"`
}
