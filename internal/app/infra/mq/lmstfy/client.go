package lmstfy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client Lmstfy 发布客户端，消费侧走官方 lmstfy Go 客户端
type Client struct {
	host      string
	namespace string
	token     string
}

// NewClient 创建 Lmstfy 客户端
func NewClient(host, namespace, token string) *Client {
	return &Client{
		host:      strings.TrimSuffix(host, "/"),
		namespace: namespace,
		token:     token,
	}
}

// Publish 发布消息到队列
// TTL: 消息存活时间（秒），Delay: 延迟时间（秒），Tries: 重试次数
func (c *Client) Publish(ctx context.Context, queue string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	// 使用 query 参数方式，直接将 JSON bytes 作为 body 发送，
	// 与官方 lmstfy Go 客户端保持一致
	endpoint := fmt.Sprintf("%s/api/%s/%s?ttl=3600&delay=0&tries=3", c.host, c.namespace, queue)

	req, err := http.NewRequestWithContext(ctx, "PUT", endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}

	if c.token != "" {
		req.Header.Set("X-Token", c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lmstfy publish failed: status=%d", resp.StatusCode)
	}

	return nil
}
