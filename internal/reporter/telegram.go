package reporter

import (
	"fmt"

	"go-club-recruit/internal/config"
	"go-club-recruit/internal/resume"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter pushes review-run notifications to the admin channel.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendReviewSummary reports the outcome of a bulk start-review run.
func (t *TelegramReporter) SendReviewSummary(attempted, succeeded int) error {
	text := fmt.Sprintf(
		"📋 <b>开始评审</b>\n"+
			"已提交: %d\n"+
			"进入评审: %d\n"+
			"失败: %d",
		attempted,
		succeeded,
		attempted-succeeded,
	)
	return t.SendMessage(text)
}

// SendDecision reports a single accept/reject decision.
func (t *TelegramReporter) SendDecision(r *resume.Resume, status resume.Status) error {
	icon := "✅"
	if status == resume.StatusRejected {
		icon = "❌"
	}
	text := fmt.Sprintf(
		"%s <b>%s</b>\n"+
			"专业: %s\n"+
			"简历 #%d → %s",
		icon,
		r.Name(),
		r.Major(),
		r.ResumeID,
		status,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Review Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
