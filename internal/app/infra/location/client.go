package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	redisx "github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/redis"
)

// Client 行政区划查询服务客户端
// 每个接口一个方法，无重试无合并，非 2xx 透传服务端 message
type Client struct {
	baseURL string
	cache   *redisx.Cache // 可为 nil（测试或降级场景）
}

// NewClient 创建客户端，cache 传 nil 表示不启用缓存
func NewClient(baseURL string, cache *redisx.Cache) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cache:   cache,
	}
}

// envelope 协作服务统一响应结构
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// nameData 名称解析响应
type nameData struct {
	Name string `json:"name"`
}

// ResolveCity 城市编码解析为展示名称
func (c *Client) ResolveCity(ctx context.Context, cityCode string) (string, error) {
	return c.resolve(ctx,
		fmt.Sprintf("loc:city:%s", cityCode),
		fmt.Sprintf("%s/cities/%s", c.baseURL, url.PathEscape(cityCode)))
}

// ResolveWard 区划编码解析为展示名称
func (c *Client) ResolveWard(ctx context.Context, cityCode, wardCode string) (string, error) {
	return c.resolve(ctx,
		fmt.Sprintf("loc:ward:%s:%s", cityCode, wardCode),
		fmt.Sprintf("%s/cities/%s/wards/%s", c.baseURL, url.PathEscape(cityCode), url.PathEscape(wardCode)))
}

// resolve 读穿缓存：先查缓存，未命中回源并写回
func (c *Client) resolve(ctx context.Context, cacheKey, endpoint string) (string, error) {
	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, cacheKey); err == nil {
			var cached nameData
			if json.Unmarshal(raw, &cached) == nil && cached.Name != "" {
				return cached.Name, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("location service: decode response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		if env.Message != "" {
			return "", fmt.Errorf("location service: %s", env.Message)
		}
		return "", fmt.Errorf("location service: status=%d", resp.StatusCode)
	}

	var data nameData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("location service: decode data failed: %w", err)
	}

	if c.cache != nil {
		// 写缓存失败不影响主流程
		_ = c.cache.Set(ctx, cacheKey, data)
	}

	return data.Name, nil
}
