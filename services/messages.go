package services

import (
	"go.uber.org/zap"

	"lms/store"
)

// MessageService handles the mentor message inbox.
type MessageService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewMessageService(st *store.Store, log *zap.SugaredLogger) *MessageService {
	return &MessageService{store: st, log: log}
}

// MarkRead flags a message as read. Marking an already-read message is a
// silent no-op, not an error.
func (ms *MessageService) MarkRead(messageID string) error {
	msg, err := ms.store.GetMessage(messageID)
	if err != nil {
		return err
	}
	if msg.Read {
		return nil
	}
	msg.Read = true
	if err := ms.store.PutMessage(msg); err != nil {
		return err
	}
	ms.log.Debugw("message read", "message", messageID)
	return nil
}

// UnreadCount reports how many mentor messages are still unread.
func (ms *MessageService) UnreadCount() (int, error) {
	unread, err := ms.store.ListMessages(true)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}
