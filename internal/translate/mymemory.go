package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	myMemoryDirectURL = "https://api.mymemory.translated.net/get"
	myMemoryRapidURL  = "https://translated-mymemory---translation-memory.p.rapidapi.com/get"
	myMemoryRapidHost = "translated-mymemory---translation-memory.p.rapidapi.com"

	sourceLabel = "MyMemory API"
)

// MyMemoryConfig configures the MyMemory client.
type MyMemoryConfig struct {
	// APIKey selects the RapidAPI endpoint when set.
	APIKey string
	// Email is sent as the "de" parameter on the direct endpoint, which
	// raises the anonymous daily quota.
	Email string
	// BaseURL overrides the endpoint. Used by tests.
	BaseURL string
	// HTTPClient defaults to a client with a 15s timeout.
	HTTPClient *http.Client
}

// MyMemory is a Translator backed by the MyMemory translation memory API.
type MyMemory struct {
	cfg    MyMemoryConfig
	client *http.Client
}

// NewMyMemory creates a MyMemory client.
func NewMyMemory(cfg MyMemoryConfig) *MyMemory {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &MyMemory{cfg: cfg, client: client}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  flexInt `json:"responseStatus"`
	ResponseDetails string  `json:"responseDetails"`
	Matches         []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

// flexInt accepts both 200 and "200"; MyMemory quotes the status on some
// error responses.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid status %s: %w", b, err)
	}
	*f = flexInt(n)
	return nil
}

// Translate translates text from one language to another. Empty from/to fall
// back to en and es.
func (m *MyMemory) Translate(ctx context.Context, text, from, to string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}
	if from == "" {
		from = DefaultFrom
	}
	if to == "" {
		to = DefaultTo
	}

	req, err := m.newRequest(ctx, text, from, to)
	if err != nil {
		return Result{}, fmt.Errorf("build translation request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	var data myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if resp.StatusCode != http.StatusOK {
			return Result{}, &Error{Status: resp.StatusCode, Details: resp.Status}
		}
		return Result{}, fmt.Errorf("decode translation response: %w", err)
	}

	if int(data.ResponseStatus) != http.StatusOK || data.ResponseData.TranslatedText == "" {
		status := int(data.ResponseStatus)
		if status == 0 {
			status = resp.StatusCode
		}
		return Result{}, &Error{Status: status, Details: data.ResponseDetails}
	}

	var alternatives []string
	for _, match := range data.Matches {
		if match.Translation != "" && match.Translation != data.ResponseData.TranslatedText {
			alternatives = append(alternatives, match.Translation)
		}
	}

	return Result{
		Text:         data.ResponseData.TranslatedText,
		Match:        data.ResponseData.Match,
		From:         from,
		To:           to,
		Source:       sourceLabel,
		Alternatives: alternatives,
	}, nil
}

func (m *MyMemory) newRequest(ctx context.Context, text, from, to string) (*http.Request, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)

	endpoint := m.cfg.BaseURL
	if m.cfg.APIKey != "" {
		if endpoint == "" {
			endpoint = myMemoryRapidURL
		}
	} else {
		if endpoint == "" {
			endpoint = myMemoryDirectURL
		}
		if m.cfg.Email != "" {
			q.Set("de", m.cfg.Email)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if m.cfg.APIKey != "" {
		req.Header.Set("X-RapidAPI-Key", m.cfg.APIKey)
		req.Header.Set("X-RapidAPI-Host", myMemoryRapidHost)
	}
	return req, nil
}
