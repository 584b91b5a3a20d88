// Package notify pushes search results to a Telegram chat.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hfariborzi/aiCarFinder/models"
	"github.com/hfariborzi/aiCarFinder/summary"
)

// telegramMessageLimit is the hard cap Telegram places on message length.
const telegramMessageLimit = 4096

// Notifier sends result summaries to a single chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a Notifier for the given bot token and chat.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// SendResults formats the result set and sends it, splitting into
// multiple messages when it exceeds Telegram's length limit.
func (n *Notifier) SendResults(listings []models.Listing, stats summary.Summary) error {
	text := FormatResults(listings, stats)
	for _, part := range splitMessage(text, telegramMessageLimit) {
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, part)); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}

// FormatResults renders a result set as a plain-text report.
func FormatResults(listings []models.Listing, stats summary.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Found %d listings\n", stats.Count))
	if stats.MaxPrice > 0 {
		sb.WriteString(fmt.Sprintf("Price: $%.0f - $%.0f (avg $%.0f)\n", stats.MinPrice, stats.MaxPrice, stats.AvgPrice))
	}
	if stats.MaxMileage > 0 {
		sb.WriteString(fmt.Sprintf("Mileage: %d - %d km (avg %.0f km)\n", stats.MinMileage, stats.MaxMileage, stats.AvgMileage))
	}
	if stats.MaxYear > 0 {
		sb.WriteString(fmt.Sprintf("Year: %d - %d\n", stats.MinYear, stats.MaxYear))
	}
	sb.WriteString("\n")

	for i, listing := range listings {
		sb.WriteString(fmt.Sprintf("%d. %d %s %s\n", i+1, listing.Year, listing.Make, listing.Model))
		sb.WriteString(fmt.Sprintf("   Price: $%.2f\n", listing.Price))
		sb.WriteString(fmt.Sprintf("   Mileage: %d km\n", listing.Mileage))
		if listing.URL != "" {
			sb.WriteString(fmt.Sprintf("   Link: %s\n", listing.URL))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// splitMessage splits a message into chunks of at most maxLen characters,
// preferring line boundaries.
func splitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	var current strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if current.Len()+len(line)+1 > maxLen {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			// A single oversized line is split mid-line.
			for len(line) > maxLen {
				parts = append(parts, line[:maxLen])
				line = line[maxLen:]
			}
		}
		current.WriteString(line)
		current.WriteString("\n")
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
