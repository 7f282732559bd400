package location

import (
	"net/url"
)

// DirectionsURL 构造地图服务的导航链接
// 地图能力通过 URL 跳转提供，不引入地图 SDK
func DirectionsURL(origin, destination string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin)
	q.Set("destination", destination)
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
