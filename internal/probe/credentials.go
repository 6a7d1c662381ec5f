package probe

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ValidateEndpoint is the Pushover user/token validation API.
const ValidateEndpoint = "https://api.pushover.net/1/users/validate.json"

// CredentialChecker verifies the configured Pushover credentials against the
// validation endpoint without sending a real notification.
type CredentialChecker struct {
	UserKey  string
	APIToken string
	Endpoint string // defaults to ValidateEndpoint
	Client   *http.Client
}

func NewCredentialChecker(userKey, apiToken string) *CredentialChecker {
	return &CredentialChecker{
		UserKey:  userKey,
		APIToken: apiToken,
		Endpoint: ValidateEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *CredentialChecker) Check(ctx context.Context) CheckResult {
	form := url.Values{}
	form.Set("token", c.APIToken)
	form.Set("user", c.UserKey)

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = ValidateEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return CheckResult{Name: "credentials", Success: false, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Client.Do(req)
	if err != nil {
		return CheckResult{Name: "credentials", Success: false, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return CheckResult{
			Name:       "credentials",
			Success:    false,
			Message:    "rejected: " + strings.TrimSpace(string(body)),
			StatusCode: resp.StatusCode,
		}
	}
	return CheckResult{Name: "credentials", Success: true, Message: "user key and token accepted", StatusCode: resp.StatusCode}
}
