// Package messaging provides HTTP handlers for conversations and messages.
package messaging

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// MessagingController handles conversation and message endpoints
type MessagingController struct {
	DB *database.DBinstanceStruct
}

// NewMessagingController creates a new instance of MessagingController
func NewMessagingController(db *database.DBinstanceStruct) *MessagingController {
	return &MessagingController{
		DB: db,
	}
}

// ListConversations returns the caller's conversations, newest activity
// first, with the partner's display identity resolved from whichever profile
// kind the partner owns.
// @Summary List the caller's conversations
// @Tags Messaging
// @Produce json
// @Success 200 {array} model.ConversationRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /messages [get]
func (mc *MessagingController) ListConversations(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rows []model.ConversationRow
	err = mc.DB.Table("conversations AS c").
		Select(`c.id, c.last_updated, u.id AS partner_id,
			COALESCE(NULLIF(jsp.name, ''), NULLIF(cp.company_name, ''), u.email) AS partner_name,
			COALESCE(NULLIF(jsp.profile_picture, ''), cp.company_logo, '') AS partner_picture`).
		Joins("JOIN users AS u ON u.id = CASE WHEN c.user1_id = ? THEN c.user2_id ELSE c.user1_id END", principal.UserID).
		Joins("LEFT JOIN job_seeker_profiles AS jsp ON jsp.user_id = u.id").
		Joins("LEFT JOIN company_profiles AS cp ON cp.user_id = u.id").
		Where("c.user1_id = ? OR c.user2_id = ?", principal.UserID, principal.UserID).
		Order("c.last_updated DESC").
		Scan(&rows).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch conversations")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ViewConversation resolves the single conversation with the partner,
// creating it on first contact, and returns the full message history in
// ascending creation order.
// @Summary View the conversation with one partner
// @Tags Messaging
// @Produce json
// @Param partnerId path string true "Partner user id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utilities.ErrorResponse "Invalid partner id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /messages/{partnerId} [get]
func (mc *MessagingController) ViewConversation(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid partner id."})
		return
	}

	conversation, err := mc.DB.FindOrCreateConversation(principal.UserID, partnerID)
	if err != nil {
		logging.Log.WithError(err).Error("failed to resolve conversation")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	var messages []model.Message
	err = mc.DB.Where("conversation_id = ?", conversation.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch messages")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	partnerName := mc.partnerName(partnerID)

	c.JSON(http.StatusOK, gin.H{
		"title":           "Chat with " + partnerName,
		"conversation_id": conversation.ID,
		"partner_id":      partnerID,
		"partner_name":    partnerName,
		"user_id":         principal.UserID,
		"messages":        messages,
	})
}

// SendMessage appends one message to the pre-existing conversation with the
// partner and bumps its last_updated stamp.
// @Summary Send a message to one partner
// @Tags Messaging
// @Accept x-www-form-urlencoded
// @Produce json
// @Param partnerId path string true "Partner user id"
// @Param messageBody formData string true "Message body"
// @Success 302 "Redirect back to the conversation"
// @Failure 400 {object} utilities.ErrorResponse "Invalid partner id or empty body"
// @Failure 404 {object} utilities.ErrorResponse "Conversation not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /messages/{partnerId} [post]
func (mc *MessagingController) SendMessage(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid partner id."})
		return
	}

	body := c.PostForm("messageBody")
	if body == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A message body must be provided."})
		return
	}

	conversation, err := mc.DB.FindConversation(principal.UserID, partnerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Conversation not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to look up conversation")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		message := model.Message{
			ConversationID: conversation.ID,
			SenderID:       principal.UserID,
			Body:           body,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&conversation).
			Update("last_updated", gorm.Expr("CURRENT_TIMESTAMP")).Error
	})
	if err != nil {
		logging.Log.WithError(err).Error("failed to send message")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to send message."})
		return
	}

	c.Redirect(http.StatusFound, "/messages/"+partnerID.String())
}

// partnerName resolves a display name for the partner from either profile
// kind, falling back to the account email.
func (mc *MessagingController) partnerName(partnerID uuid.UUID) string {
	var seeker model.JobSeekerProfile
	if err := mc.DB.First(&seeker, "user_id = ?", partnerID).Error; err == nil && seeker.Name != "" {
		return seeker.Name
	}

	var company model.CompanyProfile
	if err := mc.DB.First(&company, "user_id = ?", partnerID).Error; err == nil && company.CompanyName != "" {
		return company.CompanyName
	}

	var user model.User
	if err := mc.DB.First(&user, "id = ?", partnerID).Error; err == nil {
		return user.Email
	}
	return "Unknown"
}
