package middleware

import (
	"crypto/subtle"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-dashboard/pkg/response"
)

// HeaderTelegramSecret carries the secret_token registered with setWebhook.
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// WebhookConfig restricts who may call a webhook route.
type WebhookConfig struct {
	// Secret must match the secret header. Empty disables the check.
	Secret string
	// AllowedIPs holds single addresses or CIDR ranges. Empty allows any source.
	AllowedIPs []string
}

type ipAllowlist struct {
	ips  map[string]struct{}
	nets []*net.IPNet
}

func newIPAllowlist(entries []string) ipAllowlist {
	al := ipAllowlist{ips: make(map[string]struct{})}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			if _, ipNet, err := net.ParseCIDR(e); err == nil {
				al.nets = append(al.nets, ipNet)
			}
			continue
		}
		al.ips[e] = struct{}{}
	}
	return al
}

func (al ipAllowlist) empty() bool {
	return len(al.ips) == 0 && len(al.nets) == 0
}

func (al ipAllowlist) allows(ip string) bool {
	if _, ok := al.ips[ip]; ok {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, n := range al.nets {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}

// WebhookGuard rejects webhook calls from sources outside the allowlist with 403
// and calls without the shared secret with 401.
func (m Middleware) WebhookGuard(cfg WebhookConfig) gin.HandlerFunc {
	allowlist := newIPAllowlist(cfg.AllowedIPs)
	secret := []byte(cfg.Secret)

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if !allowlist.empty() && !allowlist.allows(c.ClientIP()) {
			m.l.Warnf(ctx, "middleware.WebhookGuard: IP %s not whitelisted", c.ClientIP())
			response.Forbidden(c)
			return
		}

		if len(secret) > 0 {
			got := []byte(c.GetHeader(HeaderTelegramSecret))
			if subtle.ConstantTimeCompare(got, secret) != 1 {
				m.l.Warnf(ctx, "middleware.WebhookGuard: invalid secret token from %s", c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		c.Next()
	}
}
