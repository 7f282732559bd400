package fees

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client 运费计算服务客户端
type Client struct {
	baseURL string
}

// NewClient 创建客户端
func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// QuoteRequest 询价请求
type QuoteRequest struct {
	SenderCityCode    string `json:"senderCityCode"`
	RecipientCityCode string `json:"recipientCityCode"`
	WeightGram        int64  `json:"weightGram"`
	ServiceType       string `json:"serviceType"`
	COD               int64  `json:"cod"`
	OrderValue        int64  `json:"orderValue"`
}

// QuoteResult 询价结果（金额为最小货币单位）
type QuoteResult struct {
	TotalFee       int64 `json:"totalFee"`
	DiscountAmount int64 `json:"discountAmount"`
}

// envelope 协作服务统一响应结构
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Quote 询价
func (c *Client) Quote(ctx context.Context, qr QuoteRequest) (*QuoteResult, error) {
	payload, err := json.Marshal(qr)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/quote"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("fee service: decode response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("fee service: %s", env.Message)
		}
		return nil, fmt.Errorf("fee service: status=%d", resp.StatusCode)
	}

	var result QuoteResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("fee service: decode data failed: %w", err)
	}

	return &result, nil
}
