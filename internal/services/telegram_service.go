package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifyPriceQuery tells the admin chat about a new multi-product price request.
func (s *TelegramService) NotifyPriceQuery(query models.PriceQuery, items []models.QuoteItem) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range items {
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b> x %d\n", i+1, item.Name, item.Quantity))
	}

	company := query.CustomerCompany
	if company == "" {
		company = "-"
	}
	phone := query.CustomerPhone
	if phone == "" {
		phone = "-"
	}

	message := fmt.Sprintf(`<b>📋 NEW PRICE REQUEST</b>
<b>👤 Customer:</b> %s
<b>🏢 Company:</b> %s
<b>✉️ Email:</b> %s
<b>📞 Phone:</b> %s
<b>📦 Parts:</b>
%s
<b>💬 Message:</b> %s
━━━━━━━━━━━━━━━━━━`,
		query.CustomerName,
		company,
		query.CustomerEmail,
		phone,
		itemsList.String(),
		query.Message,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyGeneralQuery tells the admin chat about a new contact-form message.
func (s *TelegramService) NotifyGeneralQuery(query models.GeneralQuery) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>📨 NEW CONTACT MESSAGE</b>
<b>👤 Name:</b> %s
<b>✉️ Email:</b> %s
<b>📞 Phone:</b> %s
<b>💬 Message:</b>
%s
━━━━━━━━━━━━━━━━━━`,
		query.Name,
		query.Email,
		query.Phone,
		query.Message,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
