package entity

import (
	"strings"
	"time"
)

// Message is plain request/response mail between two users about a listing.
// Threads are keyed by the sorted pair of participant IDs.
type Message struct {
	ID          string    `json:"id" firestore:"id"`
	ThreadID    string    `json:"thread_id" firestore:"threadId"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	ProductID   string    `json:"product_id,omitempty" firestore:"productId,omitempty"`
	Body        string    `json:"body" firestore:"body"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// ThreadID is order-independent: both participants resolve the same thread.
func ThreadID(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "_" + userB
}
