package telegram

import "context"

// Notifier sends task notifications to a single chat.
type Notifier struct {
	bot    *Bot
	chatID int64
}

// NewNotifier binds bot to chatID.
func NewNotifier(bot *Bot, chatID int64) *Notifier {
	return &Notifier{bot: bot, chatID: chatID}
}

// Notify sends message as plain text.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	return n.bot.SendMessage(ctx, n.chatID, message)
}
