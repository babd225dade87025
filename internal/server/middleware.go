package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// クロスオリジン分離ヘッダー
// ブラウザでSharedArrayBufferなどの共有メモリAPIを使うために必要
const (
	embedderPolicyHeader = "Cross-Origin-Embedder-Policy"
	embedderPolicyValue  = "require-corp"
	openerPolicyHeader   = "Cross-Origin-Opener-Policy"
	openerPolicyValue    = "same-origin"
)

// CrossOriginIsolation はすべてのレスポンスにクロスオリジン分離ヘッダーを
// 付与するミドルウェアを返す
// パスやステータスコードにかかわらず無条件に付与する
func CrossOriginIsolation() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(embedderPolicyHeader, embedderPolicyValue)
		c.Header(openerPolicyHeader, openerPolicyValue)
		c.Next()
	}
}

// RequestLogger はリクエストごとに1行のログを出力するミドルウェアを返す
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// 静的ファイルハンドラがURLパスを書き換えるため、先に控えておく
		path := c.Request.URL.Path

		c.Next()

		log.Printf("%s %s %d %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
