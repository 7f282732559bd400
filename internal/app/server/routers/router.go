package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/auth"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/account"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/locationproxy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/order"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/settlement"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/shippingrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// 角色常量（与账号实体一致）
const (
	roleUser    = "USER"
	roleManager = "MANAGER"
	roleAdmin   = "ADMIN"
	roleShipper = "SHIPPER"
	roleDriver  = "DRIVER"
)

// SetupRoutes 配置所有路由，按角色分组
func SetupRoutes(
	tokenIssuer *auth.TokenIssuer,
	log logger.Logger,
	orderHandler *order.OrderHandler,
	accountHandler *account.AccountHandler,
	requestHandler *shippingrequest.RequestHandler,
	settlementHandler *settlement.SettlementHandler,
	locationHandler *locationproxy.LocationHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "apiserver",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")

	// 公开接口
	{
		v1.POST("/auth/register", accountHandler.Register)
		v1.POST("/auth/login", accountHandler.Login)
		v1.GET("/tracking/:trackingNo", orderHandler.Track)
		v1.GET("/locations/cities/:cityCode", locationHandler.ResolveCity)
		v1.GET("/locations/cities/:cityCode/wards/:wardCode", locationHandler.ResolveWard)
	}

	authed := v1.Group("", middlewares.JWTAuth(tokenIssuer))

	// 用户（商家/散客）
	user := authed.Group("/user", middlewares.RequireRole(roleUser))
	{
		user.GET("/profile", accountHandler.Profile)
		user.GET("/notifications/wait", accountHandler.WaitNotification)

		user.POST("/orders", orderHandler.Create)
		user.GET("/orders", orderHandler.List)
		user.GET("/orders/:id", orderHandler.Get)
		user.PATCH("/orders/:id", orderHandler.Update)
		user.DELETE("/orders/:id", orderHandler.Delete)
		user.POST("/orders/:id/publish", orderHandler.Publish)
		user.POST("/orders/:id/cancel", orderHandler.Cancel)

		user.POST("/requests", requestHandler.Create)
		user.GET("/requests", requestHandler.List)
		user.GET("/requests/:id", requestHandler.Get)
		user.POST("/requests/:id/cancel", requestHandler.Cancel)

		user.GET("/settlements", settlementHandler.ListMine)
	}

	// 网点经理
	manager := authed.Group("/manager", middlewares.RequireRole(roleManager, roleAdmin))
	{
		manager.POST("/orders", orderHandler.CreateByManager)
		manager.GET("/orders", orderHandler.ListOffice)
		manager.GET("/orders/:id", orderHandler.GetOffice)
		manager.GET("/orders/:id/print", orderHandler.Print)
		manager.PATCH("/orders/:id", orderHandler.UpdateByManager)
		manager.POST("/orders/:id/confirm", orderHandler.Confirm)
		manager.POST("/orders/:id/ready", orderHandler.MarkReady)
		manager.POST("/orders/:id/receive", orderHandler.ReceiveAtOrigin)
		manager.POST("/orders/:id/return", orderHandler.Return)
		manager.POST("/orders/:id/cancel", orderHandler.CancelByManager)
		manager.POST("/orders/:id/assign-shipper", orderHandler.AssignShipper)
		manager.POST("/orders/:id/assign-driver", orderHandler.AssignDriver)

		manager.POST("/settlements/reconcile", settlementHandler.Reconcile)

		manager.GET("/requests", requestHandler.ListOffice)
		manager.GET("/requests/:id", requestHandler.GetOffice)
		manager.POST("/requests/:id/take", requestHandler.Take)
		manager.POST("/requests/:id/resolve", requestHandler.Resolve)
		manager.POST("/requests/:id/reject", requestHandler.Reject)
	}

	// 管理员
	admin := authed.Group("/admin", middlewares.RequireRole(roleAdmin))
	{
		admin.GET("/accounts", accountHandler.List)
		admin.GET("/orders", orderHandler.ListOffice)
		admin.GET("/orders/:id", orderHandler.GetOffice)
		admin.PATCH("/orders/:id", orderHandler.UpdateByAdmin)

		admin.POST("/settlements/reconcile", settlementHandler.Reconcile)
		admin.GET("/settlements", settlementHandler.List)
		admin.GET("/settlements/:id", settlementHandler.Get)
		admin.POST("/settlements/:id/transfer", settlementHandler.Transfer)
	}

	// 快递员
	shipper := authed.Group("/shipper", middlewares.RequireRole(roleShipper))
	{
		shipper.GET("/orders", orderHandler.ListShipper)
		shipper.GET("/orders/:id", orderHandler.GetForDelivery)
		shipper.POST("/orders/:id/start-pickup", orderHandler.StartPickup)
		shipper.POST("/orders/:id/finish-pickup", orderHandler.FinishPickup)
		shipper.POST("/orders/:id/start-delivery", orderHandler.StartDelivery)
		shipper.POST("/orders/:id/finish-delivery", orderHandler.FinishDelivery)
		shipper.POST("/orders/:id/fail-delivery", orderHandler.FailDelivery)
		shipper.POST("/orders/:id/retry-delivery", orderHandler.RetryDelivery)
	}

	// 干线司机
	driver := authed.Group("/driver", middlewares.RequireRole(roleDriver))
	{
		driver.GET("/orders", orderHandler.ListDriver)
		driver.GET("/orders/:id", orderHandler.GetForDelivery)
		driver.POST("/orders/:id/depart", orderHandler.DepartOrigin)
		driver.POST("/orders/:id/arrive", orderHandler.ArriveDest)
	}

	return r
}
