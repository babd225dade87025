package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"kakuri/internal/config"
	"kakuri/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 省略可能な位置引数でポート番号を上書きする
	// 不正な値はデフォルトに戻さず、即座にエラー終了する
	if len(os.Args) > 1 {
		port, err := config.ParsePort(os.Args[1])
		if err != nil {
			log.Fatalf("ポート番号の解析に失敗しました: %v", err)
		}
		cfg.Server.Port = port
	}

	fmt.Printf("サーバーを起動します: http://localhost:%d\n", cfg.Server.Port)
	fmt.Println("Ctrl+C で停止します")

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
