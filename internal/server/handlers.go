package server

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// handleHealth はヘルスチェックエンドポイントの実装
func (s *Server) handleHealth(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

const indexPage = "/index.html"

// staticHandler は配信ディレクトリをルートとする静的ファイルハンドラを返す
// ファイルの解決は標準ライブラリのhttp.FileServerに委譲する
// 存在しないファイルは404、ルートの外へ出ようとするパスは正規化で拒否される
func (s *Server) staticHandler() gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(s.config.Static.Root))

	return func(c *gin.Context) {
		cleaned := path.Clean("/" + c.Request.URL.Path)

		// http.FileServerは/index.htmlで終わるパスを./への301に正規化するため、
		// index.htmlを直接指定された場合はリダイレクトせずそのファイルを配信する
		// http.ServeFileも同じ正規化をURLパスで判定するので、判定前にパスを落とす
		if strings.HasSuffix(cleaned, indexPage) {
			c.Request.URL.Path = strings.TrimSuffix(cleaned, "index.html")
			http.ServeFile(c.Writer, c.Request,
				filepath.Join(s.config.Static.Root, filepath.FromSlash(cleaned)))
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
