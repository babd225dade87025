// Package main はKakuriサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"kakuri/internal/config"
	"kakuri/internal/server"

	"github.com/fatih/color"
)

func main() {
	// コマンドラインオプション
	var (
		host = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port = flag.Int("port", 0, "サーバーのポート (デフォルト: 8000)")
		dir  = flag.String("dir", "", "配信するディレクトリ (デフォルト: 実行ファイルのディレクトリ)")
		help = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// フラグが明示的に指定されたかどうかを記録する
	// ゼロ値を番兵にすると -port 0 のような不正な指定を黙って無視してしまう
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	// ヘルプ表示
	if *help {
		color.New(color.Bold).Println("Kakuri")
		fmt.Println()
		fmt.Println("クロスオリジン分離ヘッダー付きの静的ファイルサーバー")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if setFlags["host"] {
		cfg.Server.Host = *host
	}
	if setFlags["port"] {
		cfg.Server.Port = *port
	}
	if setFlags["dir"] {
		cfg.Static.Root = *dir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定の検証に失敗しました: %v", err)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	color.Green("サーバーを起動します: http://%s", cfg.ServerAddress())
	color.Green("配信ディレクトリ: %s", cfg.Static.Root)
	fmt.Println("Ctrl+C で停止します")
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
