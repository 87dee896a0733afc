package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deveshjagdale07/ConnectHire/internal/model"
)

// FindConversation returns the conversation for the unordered pair (a, b),
// matching either column order. gorm.ErrRecordNotFound when none exists.
func (d *DBinstanceStruct) FindConversation(a, b uuid.UUID) (model.Conversation, error) {
	var conv model.Conversation
	err := d.
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", a, b, b, a).
		First(&conv).Error
	return conv, err
}

// FindOrCreateConversation resolves the single conversation for the pair,
// inserting it on first contact. The default path is lookup, insert,
// re-query; with STRICT_CONVERSATION_PAIRS the insert normalizes the pair
// order and rides the unique index with ON CONFLICT DO NOTHING, so a lost
// race still resolves to the surviving row on the re-query.
func (d *DBinstanceStruct) FindOrCreateConversation(a, b uuid.UUID) (model.Conversation, error) {
	conv, err := d.FindConversation(a, b)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Conversation{}, err
	}

	fresh := model.Conversation{User1ID: a, User2ID: b}
	tx := d.DB
	if StrictConversationPairs() {
		if b.String() < a.String() {
			fresh.User1ID, fresh.User2ID = b, a
		}
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
	}
	if err := tx.Create(&fresh).Error; err != nil {
		return model.Conversation{}, err
	}

	return d.FindConversation(a, b)
}
