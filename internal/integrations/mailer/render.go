package mailer

import (
	"fmt"
	"html"
	"net/url"
)

// FrameEmail оборачивает тело письма в общий каркас с подписью сервиса
func (c *Client) FrameEmail(title, bodyHTML string) string {
	return fmt.Sprintf(`
    <div style="font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; padding:16px;">
      <h2 style="color:#14532d;">%s</h2>
      <div>%s</div>
      <hr style="margin:24px 0;">
      <p style="font-size:12px;color:#6b7280;">
        Sent by Multi-Group Tee Times &bull; <a href="%s" style="color:#2563eb;">Visit site</a>
      </p>
    </div>`,
		html.EscapeString(title), bodyHTML, c.siteURL)
}

// UnsubscribeFooter возвращает HTML-блок со ссылкой отписки для подписчика
func (c *Client) UnsubscribeFooter(token string) string {
	return fmt.Sprintf(`
      <p style="margin-top:16px;font-size:12px;">
        To unsubscribe, click
        <a href="%s/unsubscribe/%s">here</a>.
      </p>`,
		c.siteURL, url.PathEscape(token))
}
