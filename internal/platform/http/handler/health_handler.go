// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serviceName は/healthzレスポンスで自身を識別するための名前です。
const serviceName = "fibidy-api"

// Health はロードバランサーと死活監視向けの /healthz エンドポイントを処理します。
// プロセスが起動してルーティング可能であることのみを報告します。
// DBやRedisへの到達性はスコープ外です（依存が落ちていてもauthエンドポイントは
// 自身のエラーを返せるため、ここで連鎖的にunhealthyにはしません）。
func Health(c *gin.Context) {
	// 監視系が古い結果を使い回さないようにする
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	}
}
