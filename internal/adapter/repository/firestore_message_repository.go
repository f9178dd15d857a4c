package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return classifyStoreError("create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListThread(ctx context.Context, threadID string, limit, offset int) ([]*entity.Message, int64, error) {
	q := r.client.Collection("messages").Query.
		Where("threadId", "==", threadID).
		OrderBy("createdAt", firestore.Asc)

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, classifyStoreError("list thread", err)
	}
	total := int64(len(docs))

	var messages []*entity.Message
	for i, doc := range docs {
		if i < offset {
			continue
		}
		if limit > 0 && len(messages) >= limit {
			break
		}
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreMessageRepository) ListInbox(ctx context.Context, userID string) ([]*entity.Message, error) {
	// Two equality queries (sender side, recipient side), reduced to the
	// latest message per thread in memory.
	latest := make(map[string]*entity.Message)

	for _, field := range []string{"senderId", "recipientId"} {
		docs, err := r.client.Collection("messages").
			Where(field, "==", userID).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, classifyStoreError("list inbox", err)
		}

		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				continue
			}
			current, ok := latest[message.ThreadID]
			if !ok || message.CreatedAt.After(current.CreatedAt) {
				msg := message
				latest[message.ThreadID] = &msg
			}
		}
	}

	inbox := make([]*entity.Message, 0, len(latest))
	for _, message := range latest {
		inbox = append(inbox, message)
	}

	// Newest thread first.
	sort.Slice(inbox, func(i, j int) bool {
		return inbox[i].CreatedAt.After(inbox[j].CreatedAt)
	})

	return inbox, nil
}
