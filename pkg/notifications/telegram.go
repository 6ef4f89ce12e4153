package notifications

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

// Telegram posts sync and cleanup reports to a single chat.
type Telegram struct {
	client   *req.Client
	apiToken string
	chatID   int64
}

func NewTelegram(
	apiToken string,
	chatID int64,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
		chatID:   chatID,
	}
}

func (t *Telegram) Enabled() bool {
	return t != nil && t.apiToken != "" && t.chatID != 0
}

// Notify sends text to the configured chat. It is a no-op when the bot is not configured.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	if !t.Enabled() {
		return nil
	}

	return t.SendMessage(ctx, t.chatID, text)
}

func (t *Telegram) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
) error {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		}).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/sendMessage", t.apiToken))

	if err != nil {
		return errors.Wrap(err, "failed to send telegram message")
	}

	if resp.IsErrorState() {
		return errors.Newf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}
