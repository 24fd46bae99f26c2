package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/mkulima/duka/internal/cart"
	"github.com/mkulima/duka/internal/order"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	verificationHdl *verification.Handler,
	cartHdl *cart.Handler,
	orderHdl *order.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "mkulima.co.tz")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	verificationHdl.PublicRoutes(res.Engine)
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	cartHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	return res
}
